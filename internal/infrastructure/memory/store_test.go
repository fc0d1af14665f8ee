package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bikeshop-api/internal/domain"
	"github.com/jhoicas/bikeshop-api/internal/domain/entity"
	"github.com/jhoicas/bikeshop-api/internal/infrastructure/memory"
)

func TestUserRepo_EmailUnico(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()

	u := &entity.User{Name: "John", Email: "john@example.com", PasswordHash: "h"}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotEmpty(t, u.ID)

	err := repo.Create(ctx, &entity.User{Name: "Other", Email: "john@example.com"})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	assert.Equal(t, 1, repo.Count())

	found, err := repo.FindByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	missing, err := repo.FindByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepo_RegistroConcurrente(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Create(ctx, &entity.User{Email: "same@example.com"})
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, repo.Count())
}

func TestBikeRepo_RechazaTipoInvalido(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewBikeRepository()

	err := repo.Create(ctx, &entity.Bike{Type: "Mountain", Color: "red"})
	assert.ErrorIs(t, err, domain.ErrInvalidBikeType)

	b := &entity.Bike{Type: entity.BikeTypeElectric, Color: "black"}
	require.NoError(t, repo.Create(ctx, b))

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestOrderRepo_CopiaDefensiva(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewOrderRepository()

	o := entity.NewOrder("u1", []string{"b1", "b2"})
	require.NoError(t, repo.Create(ctx, o))

	o.BikeIDs[0] = "mutado"
	got, err := repo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"b1", "b2"}, got.BikeIDs)
	assert.Equal(t, entity.OrderStatusPending, got.Status)
}
