package repository

import (
	"context"

	"github.com/jhoicas/bikeshop-api/internal/domain/entity"
)

// OrderRepository puerto de persistencia de pedidos.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
}
