package mongo

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jhoicas/bikeshop-api/internal/domain"
	"github.com/jhoicas/bikeshop-api/internal/domain/entity"
	"github.com/jhoicas/bikeshop-api/pkg/config"
)

func TestBikesValidator_EnumDelCatalogo(t *testing.T) {
	schema := bikesValidator()["$jsonSchema"].(bson.M)
	props := schema["properties"].(bson.M)
	typeRule := props["type"].(bson.M)

	assert.Equal(t, bson.A{"standard", "electric"}, typeRule["enum"])
	assert.Equal(t, bson.A{"type", "color"}, schema["required"])
}

func TestOrdersValidator_Estados(t *testing.T) {
	schema := ordersValidator()["$jsonSchema"].(bson.M)
	status := schema["properties"].(bson.M)["status"].(bson.M)
	assert.Equal(t, bson.A{"pending", "completed"}, status["enum"])
}

func TestOrderRepo_IDInvalidoNoLlegaAlServidor(t *testing.T) {
	// coll nil: si Create intentara insertar, el test entraría en pánico.
	repo := &OrderRepo{}
	err := repo.Create(context.Background(), entity.NewOrder("no-es-objectid", nil))
	assert.Error(t, err)

	err = repo.Create(context.Background(), entity.NewOrder(bson.NewObjectID().Hex(), []string{"x"}))
	assert.Error(t, err)
}

// Integración: requiere MONGO_TEST_URI (ej. mongodb://localhost:27017).
func TestRepositories_Integracion(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI no definido")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := Connect(ctx, config.MongoConfig{URI: uri, Timeout: 5 * time.Second})
	require.NoError(t, err)
	defer func() { _ = client.Disconnect(context.Background()) }()

	db := client.Database("bikeshop_test_" + bson.NewObjectID().Hex())
	defer func() { _ = db.Drop(context.Background()) }()
	require.NoError(t, EnsureSchema(ctx, db))
	require.NoError(t, EnsureSchema(ctx, db), "EnsureSchema debe ser idempotente")

	users := NewUserRepository(db)
	u := &entity.User{Name: "John", Email: "john@example.com", PasswordHash: "hash", CreatedAt: time.Now().UTC()}
	require.NoError(t, users.Create(ctx, u))
	assert.NotEmpty(t, u.ID)

	err = users.Create(ctx, &entity.User{Name: "J2", Email: "john@example.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)

	found, err := users.FindByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	missing, err := users.FindByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	bikes := NewBikeRepository(db)
	assert.Error(t, bikes.Create(ctx, &entity.Bike{Type: "Mountain", Color: "red"}), "el validador debe rechazar el tipo")
	b := &entity.Bike{Type: entity.BikeTypeStandard, Color: "red"}
	require.NoError(t, bikes.Create(ctx, b))

	orders := NewOrderRepository(db)
	o := entity.NewOrder(u.ID, []string{b.ID, b.ID})
	require.NoError(t, orders.Create(ctx, o))

	got, err := orders.GetByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.UserID)
	assert.Equal(t, []string{b.ID, b.ID}, got.BikeIDs)
	assert.Equal(t, entity.OrderStatusPending, got.Status)
}
