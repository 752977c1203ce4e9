package repository

import (
	"context"
	"log/slog"

	"storefront-cart/internal/domain/cart"
	"storefront-cart/internal/infra"
	"storefront-cart/internal/infra/converter"
	"storefront-cart/internal/infra/kvstore"
)

// CartRepository stores carts as JSON envelopes in a key-value store.
type CartRepository struct {
	store  kvstore.Store
	policy cart.PricingPolicy
	logger *slog.Logger
}

func NewCartRepository(store kvstore.Store, policy cart.PricingPolicy, logger *slog.Logger) *CartRepository {
	return &CartRepository{
		store:  store,
		policy: policy,
		logger: logger,
	}
}

func (r *CartRepository) Load(ctx context.Context, key string) (*cart.Cart, error) {
	data, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	c, err := converter.UnmarshalCart(data, r.policy)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindCorruptData, "failed to decode stored cart", err)
	}
	return c, nil
}

func (r *CartRepository) Save(ctx context.Context, key string, c *cart.Cart) error {
	data, err := converter.MarshalCart(c)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindCorruptData, "failed to encode cart", err)
	}
	return r.store.Put(ctx, key, data)
}
