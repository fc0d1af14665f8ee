package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/bikeshop-api/internal/domain/entity"
	"github.com/jhoicas/bikeshop-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL.
// Las referencias se guardan como texto, sin claves foráneas.
type OrderRepo struct {
	pool *pgxpool.Pool
}

// NewOrderRepository construye el adaptador de pedidos.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// Create persiste el pedido.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if order.Status == "" {
		order.Status = entity.OrderStatusPending
	}
	bikes := order.BikeIDs
	if bikes == nil {
		bikes = []string{}
	}
	id := uuid.New().String()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO orders (id, user_id, bike_ids, status, created_at) VALUES ($1, $2, $3, $4, $5)`,
		id, order.UserID, bikes, string(order.Status), order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	order.ID = id
	return nil
}

// GetByID obtiene un pedido por ID.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	var o entity.Order
	var status string
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, bike_ids, status, created_at FROM orders WHERE id = $1`, id,
	).Scan(&o.ID, &o.UserID, &o.BikeIDs, &status, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	o.Status = entity.OrderStatus(status)
	return &o, nil
}
