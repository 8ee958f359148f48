package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"beautyhub/config"
	"beautyhub/internal/domains/cart/model"
	"beautyhub/internal/domains/cart/repository"
	"beautyhub/shared/cache"
	cacheMocks "beautyhub/shared/cache/mocks"
	gRepo "beautyhub/shared/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*cacheMocks.MockRedisCache, repository.Store) {
	t.Helper()

	redis := cacheMocks.NewMockRedisCache(gomock.NewController(t))
	cfg := config.Config{}

	return redis, repository.New(redis, cfg.WithBookingDefaults())
}

func TestCart_Save(t *testing.T) {
	redis, repo := setup(t)
	cart := model.Cart{ID: "c-1", TenantID: "shop-a"}

	redis.EXPECT().Save(gomock.Any(), "cart:shop-a:c-1", cart, 3600).Return(nil)

	require.NoError(t, repo.Save(context.Background(), "shop-a", cart))

	assert.ErrorIs(t, repo.Save(context.Background(), "", cart), gRepo.ErrMissingTenant)
	assert.ErrorIs(t, repo.Save(context.Background(), "shop-b", cart), gRepo.ErrTenantMismatch)
}

func TestCart_Get(t *testing.T) {
	t.Run("hit", func(t *testing.T) {
		redis, repo := setup(t)

		redis.EXPECT().Get(gomock.Any(), "cart:shop-a:c-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*model.Cart) = model.Cart{ID: "c-1", TenantID: "shop-a", StaffID: "staff-1"}

				return nil
			})

		cart, err := repo.Get(context.Background(), "shop-a", "c-1")
		require.NoError(t, err)
		assert.Equal(t, "staff-1", cart.StaffID)
	})

	t.Run("expired or unknown", func(t *testing.T) {
		redis, repo := setup(t)

		redis.EXPECT().Get(gomock.Any(), "cart:shop-a:c-1", gomock.Any()).Return(fmt.Errorf("failed to get cache value: %w", cache.Nil))

		cart, err := repo.Get(context.Background(), "shop-a", "c-1")
		require.NoError(t, err)
		assert.True(t, cart.IsZero())
	})

	t.Run("redis failure", func(t *testing.T) {
		redis, repo := setup(t)

		redis.EXPECT().Get(gomock.Any(), "cart:shop-a:c-1", gomock.Any()).Return(errors.New("connection refused"))

		_, err := repo.Get(context.Background(), "shop-a", "c-1")
		assert.Error(t, err)
	})

	t.Run("missing tenant", func(t *testing.T) {
		_, repo := setup(t)

		_, err := repo.Get(context.Background(), "", "c-1")
		assert.ErrorIs(t, err, gRepo.ErrMissingTenant)
	})
}

func TestCart_Delete(t *testing.T) {
	redis, repo := setup(t)

	redis.EXPECT().Delete(gomock.Any(), "cart:shop-a:c-1").Return(nil)

	require.NoError(t, repo.Delete(context.Background(), "shop-a", "c-1"))
}
