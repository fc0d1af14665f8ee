// Package memory implementa los puertos de persistencia en memoria.
// Se usa en tests y con STORE_DRIVER=memory; aplica las mismas restricciones
// que el almacenamiento real (email único, tipo de bicicleta del catálogo).
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/bikeshop-api/internal/domain"
	"github.com/jhoicas/bikeshop-api/internal/domain/entity"
	"github.com/jhoicas/bikeshop-api/internal/domain/repository"
)

var (
	_ repository.UserRepository  = (*UserRepo)(nil)
	_ repository.BikeRepository  = (*BikeRepo)(nil)
	_ repository.OrderRepository = (*OrderRepo)(nil)
)

// UserRepo usuarios indexados por ID y por email.
type UserRepo struct {
	mu      sync.RWMutex
	byID    map[string]*entity.User
	byEmail map[string]string
}

// NewUserRepository construye un repositorio vacío.
func NewUserRepository() *UserRepo {
	return &UserRepo{byID: map[string]*entity.User{}, byEmail: map[string]string{}}
}

// Create asigna ID y guarda una copia. Email duplicado -> domain.ErrUserAlreadyExists.
func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[user.Email]; ok {
		return domain.ErrUserAlreadyExists
	}
	user.ID = uuid.New().String()
	u := *user
	r.byID[u.ID] = &u
	r.byEmail[u.Email] = u.ID
	return nil
}

// FindByEmail devuelve (nil, nil) si no existe.
func (r *UserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	u := *r.byID[id]
	return &u, nil
}

// FindByID devuelve (nil, nil) si no existe.
func (r *UserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

// Count número de usuarios guardados.
func (r *UserRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// BikeRepo catálogo en memoria.
type BikeRepo struct {
	mu    sync.RWMutex
	bikes map[string]*entity.Bike
}

// NewBikeRepository construye un repositorio vacío.
func NewBikeRepository() *BikeRepo {
	return &BikeRepo{bikes: map[string]*entity.Bike{}}
}

// Create rechaza tipos fuera del catálogo, igual que el validador de la colección.
func (r *BikeRepo) Create(_ context.Context, bike *entity.Bike) error {
	if !bike.Type.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidBikeType, bike.Type)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	bike.ID = uuid.New().String()
	b := *bike
	r.bikes[b.ID] = &b
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *BikeRepo) GetByID(_ context.Context, id string) (*entity.Bike, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bikes[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

// OrderRepo pedidos en memoria.
type OrderRepo struct {
	mu     sync.RWMutex
	orders map[string]*entity.Order
}

// NewOrderRepository construye un repositorio vacío.
func NewOrderRepository() *OrderRepo {
	return &OrderRepo{orders: map[string]*entity.Order{}}
}

// Create asigna ID y guarda una copia (status vacío -> pending).
func (r *OrderRepo) Create(_ context.Context, order *entity.Order) error {
	if order.Status == "" {
		order.Status = entity.OrderStatusPending
	}
	if order.Status != entity.OrderStatusPending && order.Status != entity.OrderStatusCompleted {
		return fmt.Errorf("estado de pedido inválido: %q", order.Status)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	order.ID = uuid.New().String()
	r.orders[order.ID] = cloneOrder(order)
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *OrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return cloneOrder(o), nil
}

func cloneOrder(o *entity.Order) *entity.Order {
	cp := *o
	cp.BikeIDs = append([]string(nil), o.BikeIDs...)
	return &cp
}
