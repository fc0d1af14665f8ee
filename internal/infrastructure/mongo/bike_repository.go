package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/jhoicas/bikeshop-api/internal/domain/entity"
	"github.com/jhoicas/bikeshop-api/internal/domain/repository"
)

var _ repository.BikeRepository = (*BikeRepo)(nil)

type bikeDoc struct {
	ID        bson.ObjectID `bson:"_id"`
	Type      string        `bson:"type"`
	Color     string        `bson:"color"`
	CreatedAt time.Time     `bson:"created_at"`
}

// BikeRepo implementación de BikeRepository sobre la colección bikes.
type BikeRepo struct {
	coll *mongo.Collection
}

// NewBikeRepository construye el adaptador del catálogo.
func NewBikeRepository(db *mongo.Database) *BikeRepo {
	return &BikeRepo{coll: db.Collection(BikesCollection)}
}

// Create inserta la bicicleta; el validador de la colección rechaza tipos inválidos.
func (r *BikeRepo) Create(ctx context.Context, bike *entity.Bike) error {
	doc := bikeDoc{
		ID:        bson.NewObjectID(),
		Type:      string(bike.Type),
		Color:     bike.Color,
		CreatedAt: bike.CreatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert bike: %w", err)
	}
	bike.ID = doc.ID.Hex()
	return nil
}

// GetByID devuelve (nil, nil) si no existe o si id no es un ObjectID.
func (r *BikeRepo) GetByID(ctx context.Context, id string) (*entity.Bike, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var doc bikeDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find bike: %w", err)
	}
	return &entity.Bike{
		ID:        doc.ID.Hex(),
		Type:      entity.BikeType(doc.Type),
		Color:     doc.Color,
		CreatedAt: doc.CreatedAt,
	}, nil
}
