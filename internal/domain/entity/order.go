package entity

import "time"

// OrderStatus estado del pedido.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
)

// Order enlaza un usuario con una lista de bicicletas (por ID, se permiten repetidos).
// No se verifica que los IDs referenciados existan.
type Order struct {
	ID        string
	UserID    string
	BikeIDs   []string
	Status    OrderStatus // pending por defecto
	CreatedAt time.Time
}

// NewOrder construye un pedido pendiente.
func NewOrder(userID string, bikeIDs []string) *Order {
	ids := make([]string, len(bikeIDs))
	copy(ids, bikeIDs)
	return &Order{
		UserID:  userID,
		BikeIDs: ids,
		Status:  OrderStatusPending,
	}
}
