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

var _ repository.BikeRepository = (*BikeRepo)(nil)

// BikeRepo implementación de BikeRepository sobre PostgreSQL.
type BikeRepo struct {
	pool *pgxpool.Pool
}

// NewBikeRepository construye el adaptador del catálogo.
func NewBikeRepository(pool *pgxpool.Pool) *BikeRepo {
	return &BikeRepo{pool: pool}
}

// Create persiste la bicicleta; el CHECK de la tabla rechaza tipos inválidos.
func (r *BikeRepo) Create(ctx context.Context, bike *entity.Bike) error {
	id := uuid.New().String()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO bikes (id, type, color, created_at) VALUES ($1, $2, $3, $4)`,
		id, string(bike.Type), bike.Color, bike.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bike: %w", err)
	}
	bike.ID = id
	return nil
}

// GetByID obtiene una bicicleta por ID.
func (r *BikeRepo) GetByID(ctx context.Context, id string) (*entity.Bike, error) {
	var b entity.Bike
	var bikeType string
	err := r.pool.QueryRow(ctx,
		`SELECT id, type, color, created_at FROM bikes WHERE id = $1`, id,
	).Scan(&b.ID, &bikeType, &b.Color, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bike: %w", err)
	}
	b.Type = entity.BikeType(bikeType)
	return &b, nil
}
