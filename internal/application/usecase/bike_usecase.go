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

// BikeUseCase casos de uso del catálogo de bicicletas.
type BikeUseCase struct {
	repo repository.BikeRepository
	log  *logger.Logger
}

// NewBikeUseCase construye el caso de uso.
func NewBikeUseCase(repo repository.BikeRepository, log *logger.Logger) *BikeUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &BikeUseCase{repo: repo, log: log.Named("bikes")}
}

// CreateBike construye la bicicleta con BikeBuilder y la persiste.
// Devuelve domain.ErrMissingBikeFields si falta tipo o color; cualquier fallo del
// almacenamiento (incluido un tipo fuera del catálogo) se devuelve como "Error creating bike".
func (uc *BikeUseCase) CreateBike(ctx context.Context, in dto.CreateBikeRequest) (*dto.BikeResponse, error) {
	bike, err := entity.NewBikeBuilder().
		WithType(entity.BikeType(in.Type)).
		WithColor(in.Color).
		Build()
	if err != nil {
		return nil, err
	}
	bike.CreatedAt = time.Now().UTC()
	if err := uc.repo.Create(ctx, bike); err != nil {
		uc.log.Error().Err(err).Str("type", in.Type).Msg("persistir bicicleta")
		return nil, domain.NewPersistenceError(domain.MsgCreateBike, err)
	}
	return toBikeResponse(bike), nil
}

// GetByID obtiene una bicicleta por ID. Devuelve nil si no existe.
func (uc *BikeUseCase) GetByID(ctx context.Context, id string) (*dto.BikeResponse, error) {
	bike, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bike == nil {
		return nil, nil
	}
	return toBikeResponse(bike), nil
}

func toBikeResponse(b *entity.Bike) *dto.BikeResponse {
	if b == nil {
		return nil
	}
	return &dto.BikeResponse{
		ID:        b.ID,
		Type:      string(b.Type),
		Color:     b.Color,
		CreatedAt: b.CreatedAt,
	}
}
