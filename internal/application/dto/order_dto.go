package dto

import "time"

// CreateOrderRequest entrada para crear un pedido.
type CreateOrderRequest struct {
	UserID  string   `json:"userId" example:"60c72b2f5f1b2c001f8e4f20"`
	BikeIDs []string `json:"bikeIds" example:"60c72b2f5f1b2c001f8e4f22"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Bikes     []string  `json:"bikes"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
