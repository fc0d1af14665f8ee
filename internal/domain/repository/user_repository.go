package repository

import (
	"context"

	"github.com/jhoicas/bikeshop-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// FindByEmail y FindByID devuelven (nil, nil) si no existe.
type UserRepository interface {
	// Create asigna ID al usuario y lo persiste. Si el email ya existe devuelve domain.ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
}
