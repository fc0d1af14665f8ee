package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bikeshop-api/internal/domain"
	"github.com/jhoicas/bikeshop-api/internal/domain/entity"
	"github.com/jhoicas/bikeshop-api/pkg/config"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23514"}))
	assert.False(t, isUniqueViolation(errors.New("otro error")))
}

func TestIsInvalidUUID(t *testing.T) {
	assert.True(t, isInvalidUUID(&pgconn.PgError{Code: "22P02"}))
	assert.False(t, isInvalidUUID(errors.New("22P02")))
}

// Integración: requiere POSTGRES_TEST_URL.
func TestRepositories_Integracion(t *testing.T) {
	url := os.Getenv("POSTGRES_TEST_URL")
	if url == "" {
		t.Skip("POSTGRES_TEST_URL no definido")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: url})
	require.NoError(t, err)
	defer pool.Close()
	require.NoError(t, EnsureSchema(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE users, bikes, orders`)
	require.NoError(t, err)

	users := NewUserRepository(pool)
	u := &entity.User{Name: "John", Email: "john@example.com", PasswordHash: "hash", CreatedAt: time.Now().UTC()}
	require.NoError(t, users.Create(ctx, u))
	err = users.Create(ctx, &entity.User{Name: "J2", Email: "john@example.com", PasswordHash: "h", CreatedAt: time.Now()})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)

	found, err := users.FindByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	notUUID, err := users.FindByID(ctx, "no-es-uuid")
	require.NoError(t, err)
	assert.Nil(t, notUUID)

	bikes := NewBikeRepository(pool)
	assert.Error(t, bikes.Create(ctx, &entity.Bike{Type: "Mountain", Color: "red", CreatedAt: time.Now()}))
	b := &entity.Bike{Type: entity.BikeTypeElectric, Color: "black", CreatedAt: time.Now()}
	require.NoError(t, bikes.Create(ctx, b))

	orders := NewOrderRepository(pool)
	o := entity.NewOrder(u.ID, []string{b.ID, b.ID})
	o.CreatedAt = time.Now()
	require.NoError(t, orders.Create(ctx, o))

	got, err := orders.GetByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{b.ID, b.ID}, got.BikeIDs)
	assert.Equal(t, entity.OrderStatusPending, got.Status)
}
