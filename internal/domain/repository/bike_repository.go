package repository

import (
	"context"

	"github.com/jhoicas/bikeshop-api/internal/domain/entity"
)

// BikeRepository puerto de persistencia del catálogo.
type BikeRepository interface {
	// Create asigna ID y persiste. El almacenamiento rechaza tipos fuera del catálogo.
	Create(ctx context.Context, bike *entity.Bike) error
	GetByID(ctx context.Context, id string) (*entity.Bike, error)
}
