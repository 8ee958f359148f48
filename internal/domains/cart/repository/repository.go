package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"beautyhub/config"
	"beautyhub/internal/domains/cart/model"
	"beautyhub/shared"
	"beautyhub/shared/cache"
	"beautyhub/shared/constant"
	gRepo "beautyhub/shared/repository"
)

const keyPrefix = "cart"

// Store keeps carts in redis until they are checked out, abandoned or expire.
type Store interface {
	Save(ctx context.Context, tenantID string, cart model.Cart) error
	Get(ctx context.Context, tenantID, id string) (model.Cart, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type repositoryImpl struct {
	cache cache.RedisCache
	cfg   *config.Config
}

func New(cache cache.RedisCache, cfg *config.Config) Store {
	return &repositoryImpl{cache: cache, cfg: cfg}
}

func key(tenantID, id string) string {
	return shared.BuildCacheKey(keyPrefix, tenantID, id)
}

func (r *repositoryImpl) Save(ctx context.Context, tenantID string, cart model.Cart) error {
	if tenantID == constant.Empty {
		return gRepo.ErrMissingTenant
	}

	if cart.TenantID != tenantID {
		return gRepo.ErrTenantMismatch
	}

	if err := r.cache.Save(ctx, key(tenantID, cart.ID), cart, r.cfg.App.Booking.CartTTLSeconds); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	return nil
}

// Get returns a zero cart when nothing is stored under id for the tenant.
func (r *repositoryImpl) Get(ctx context.Context, tenantID, id string) (model.Cart, error) {
	var cart model.Cart

	if tenantID == constant.Empty {
		return cart, gRepo.ErrMissingTenant
	}

	err := r.cache.Get(ctx, key(tenantID, id), &cart)
	if errors.Is(err, cache.Nil) {
		return model.Cart{}, nil
	}

	if err != nil {
		return model.Cart{}, fmt.Errorf("failed to get cart: %w", err)
	}

	if cart.TenantID != tenantID {
		return model.Cart{}, nil
	}

	return cart, nil
}

func (r *repositoryImpl) Delete(ctx context.Context, tenantID, id string) error {
	if tenantID == constant.Empty {
		return gRepo.ErrMissingTenant
	}

	if err := r.cache.Delete(ctx, key(tenantID, id)); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}

	return nil
}
