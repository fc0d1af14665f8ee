package dto

import "time"

// CreateBikeRequest entrada para crear una bicicleta.
type CreateBikeRequest struct {
	Type  string `json:"type" example:"electric"`
	Color string `json:"color" example:"black"`
}

// BikeResponse salida de una bicicleta.
type BikeResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}
