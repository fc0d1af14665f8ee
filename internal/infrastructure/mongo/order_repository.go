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

var _ repository.OrderRepository = (*OrderRepo)(nil)

type orderDoc struct {
	ID        bson.ObjectID   `bson:"_id"`
	User      bson.ObjectID   `bson:"user"`
	Bikes     []bson.ObjectID `bson:"bikes"`
	Status    string          `bson:"status"`
	CreatedAt time.Time       `bson:"created_at"`
}

// OrderRepo implementación de OrderRepository sobre la colección orders.
type OrderRepo struct {
	coll *mongo.Collection
}

// NewOrderRepository construye el adaptador de pedidos.
func NewOrderRepository(db *mongo.Database) *OrderRepo {
	return &OrderRepo{coll: db.Collection(OrdersCollection)}
}

// Create inserta el pedido. Las referencias se guardan como ObjectID; un ID con
// formato inválido es un error de persistencia (no se verifica su existencia).
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	user, err := bson.ObjectIDFromHex(order.UserID)
	if err != nil {
		return fmt.Errorf("user id %q: %w", order.UserID, err)
	}
	bikes := make([]bson.ObjectID, 0, len(order.BikeIDs))
	for _, id := range order.BikeIDs {
		oid, err := bson.ObjectIDFromHex(id)
		if err != nil {
			return fmt.Errorf("bike id %q: %w", id, err)
		}
		bikes = append(bikes, oid)
	}
	if order.Status == "" {
		order.Status = entity.OrderStatusPending
	}
	doc := orderDoc{
		ID:        bson.NewObjectID(),
		User:      user,
		Bikes:     bikes,
		Status:    string(order.Status),
		CreatedAt: order.CreatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	order.ID = doc.ID.Hex()
	return nil
}

// GetByID devuelve (nil, nil) si no existe o si id no es un ObjectID.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var doc orderDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	bikes := make([]string, 0, len(doc.Bikes))
	for _, b := range doc.Bikes {
		bikes = append(bikes, b.Hex())
	}
	return &entity.Order{
		ID:        doc.ID.Hex(),
		UserID:    doc.User.Hex(),
		BikeIDs:   bikes,
		Status:    entity.OrderStatus(doc.Status),
		CreatedAt: doc.CreatedAt,
	}, nil
}
