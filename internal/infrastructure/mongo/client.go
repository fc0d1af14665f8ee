// Package mongo implementa los puertos de persistencia sobre MongoDB (almacén por defecto).
package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/bikeshop-api/internal/domain/entity"
	"github.com/jhoicas/bikeshop-api/pkg/config"
)

// Nombres de colecciones.
const (
	UsersCollection  = "users"
	BikesCollection  = "bikes"
	OrdersCollection = "orders"
)

// codeNamespaceExists error de servidor al crear una colección que ya existe.
const codeNamespaceExists = 48

// Connect abre el cliente y verifica la conexión con un ping.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.Timeout > 0 {
		opts.SetConnectTimeout(cfg.Timeout)
	}
	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("conectar MongoDB: %w", err)
	}
	pingCtx := ctx
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}
	return client, nil
}

// EnsureSchema crea las colecciones con su validador y el índice único de email.
// El validador de bikes es quien rechaza tipos fuera del catálogo.
func EnsureSchema(ctx context.Context, db *mongo.Database) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ensureCollection(ctx, db, UsersCollection, usersValidator()); err != nil {
			return err
		}
		_, err := db.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("email_unique"),
		})
		if err != nil {
			return fmt.Errorf("índice único de email: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return ensureCollection(ctx, db, BikesCollection, bikesValidator())
	})
	g.Go(func() error {
		return ensureCollection(ctx, db, OrdersCollection, ordersValidator())
	})
	return g.Wait()
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	err := db.CreateCollection(ctx, name, options.CreateCollection().SetValidator(validator))
	if err == nil {
		return nil
	}
	var ce mongo.CommandError
	if !errors.As(err, &ce) || ce.Code != codeNamespaceExists {
		return fmt.Errorf("crear colección %s: %w", name, err)
	}
	// La colección ya existe: se actualiza el validador.
	cmd := bson.D{{Key: "collMod", Value: name}, {Key: "validator", Value: validator}}
	if err := db.RunCommand(ctx, cmd).Err(); err != nil {
		return fmt.Errorf("actualizar validador de %s: %w", name, err)
	}
	return nil
}

func usersValidator() bson.M {
	return bson.M{"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": bson.A{"name", "email", "password"},
		"properties": bson.M{
			"name":     bson.M{"bsonType": "string"},
			"email":    bson.M{"bsonType": "string"},
			"password": bson.M{"bsonType": "string"},
		},
	}}
}

func bikesValidator() bson.M {
	return bson.M{"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": bson.A{"type", "color"},
		"properties": bson.M{
			"type":  bson.M{"enum": bson.A{string(entity.BikeTypeStandard), string(entity.BikeTypeElectric)}},
			"color": bson.M{"bsonType": "string"},
		},
	}}
}

func ordersValidator() bson.M {
	return bson.M{"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": bson.A{"status"},
		"properties": bson.M{
			"bikes":  bson.M{"bsonType": "array", "items": bson.M{"bsonType": "objectId"}},
			"status": bson.M{"enum": bson.A{string(entity.OrderStatusPending), string(entity.OrderStatusCompleted)}},
		},
	}}
}
