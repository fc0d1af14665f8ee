package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/bikeshop-api/internal/application/dto"
	"github.com/jhoicas/bikeshop-api/internal/domain"
	"github.com/jhoicas/bikeshop-api/internal/domain/entity"
	"github.com/jhoicas/bikeshop-api/internal/domain/repository"
	"github.com/jhoicas/bikeshop-api/pkg/logger"
)

// OrderUseCase casos de uso de pedidos.
type OrderUseCase struct {
	repo repository.OrderRepository
	log  *logger.Logger
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository, log *logger.Logger) *OrderUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &OrderUseCase{repo: repo, log: log.Named("orders")}
}

// CreateOrder persiste un pedido pendiente para el usuario con las bicicletas indicadas.
// No verifica que el usuario ni las bicicletas existan.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	order := entity.NewOrder(in.UserID, in.BikeIDs)
	order.CreatedAt = time.Now().UTC()
	if err := uc.repo.Create(ctx, order); err != nil {
		uc.log.Error().Err(err).Str("user", in.UserID).Msg("persistir pedido")
		return nil, domain.NewPersistenceError(domain.MsgCreateOrder, err)
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene un pedido por ID. Devuelve nil si no existe.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	bikes := o.BikeIDs
	if bikes == nil {
		bikes = []string{}
	}
	return &dto.OrderResponse{
		ID:        o.ID,
		User:      o.UserID,
		Bikes:     bikes,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
	}
}
