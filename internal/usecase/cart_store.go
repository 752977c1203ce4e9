package usecase

import (
	"context"
	"log/slog"
	"sync"

	"storefront-cart/internal/domain/cart"
	"storefront-cart/internal/domain/catalog"
	"storefront-cart/internal/infra"

	"github.com/google/uuid"
)

const CartStorageName = "cart-storage"

// StorageKey scopes the persisted cart of one session.
func StorageKey(cartKey string) string {
	return CartStorageName + ":" + cartKey
}

// CartStore holds the live cart of one session. Operations are serialised and
// each one recomputes totals and saves before the next can observe the cart.
// Save failures are logged; the in-memory cart stays authoritative.
type CartStore struct {
	mu       sync.Mutex
	key      string
	restored bool
	cart     *cart.Cart
	repo     CartRepository
	resolver cart.DiscountResolver
	logger   *slog.Logger
}

// OpenCartStore restores the cart saved under cartKey, or starts an empty one.
// When the load fails for any reason other than a missing entry the store
// still serves an empty cart but never saves, so the stored cart survives.
func OpenCartStore(
	ctx context.Context,
	cartKey string,
	repo CartRepository,
	resolver cart.DiscountResolver,
	policy cart.PricingPolicy,
	logger *slog.Logger,
) *CartStore {
	s := &CartStore{
		key:      StorageKey(cartKey),
		repo:     repo,
		resolver: resolver,
		logger:   logger,
	}

	restored, err := repo.Load(ctx, s.key)
	switch {
	case err == nil && restored != nil:
		s.cart = restored
		s.restored = true
	case err == nil || infra.IsKind(err, infra.KindNotFound):
		s.cart = cart.New(policy)
		s.restored = true
	default:
		logger.Warn("Failed to restore cart, serving an unsaved empty cart",
			slog.String("key", s.key),
			slog.Any("error", err))
		s.cart = cart.New(policy)
	}
	return s
}

// Restored reports whether the store reflects what the repository holds.
func (s *CartStore) Restored() bool {
	return s.restored
}

func (s *CartStore) Snapshot() *cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Clone()
}

func (s *CartStore) AddItem(ctx context.Context, product catalog.Product, quantity cart.Quantity, variant *catalog.Variant) *cart.Cart {
	return s.mutate(ctx, func(c *cart.Cart) {
		c.AddItem(product, quantity, variant)
	})
}

func (s *CartStore) RemoveItem(ctx context.Context, itemID uuid.UUID) *cart.Cart {
	return s.mutate(ctx, func(c *cart.Cart) {
		c.RemoveItem(itemID)
	})
}

func (s *CartStore) UpdateQuantity(ctx context.Context, itemID uuid.UUID, quantity cart.Quantity) *cart.Cart {
	return s.mutate(ctx, func(c *cart.Cart) {
		c.UpdateQuantity(itemID, quantity)
	})
}

func (s *CartStore) ClearCart(ctx context.Context) *cart.Cart {
	return s.mutate(ctx, func(c *cart.Cart) {
		c.Clear()
	})
}

// ApplyDiscount reports whether the code was accepted. A rejected code
// leaves the cart untouched and skips the save.
func (s *CartStore) ApplyDiscount(ctx context.Context, code string) (*cart.Cart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cart.ApplyDiscount(s.resolver, code) {
		return s.cart.Clone(), false
	}
	s.persist(ctx)
	return s.cart.Clone(), true
}

func (s *CartStore) mutate(ctx context.Context, fn func(*cart.Cart)) *cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(s.cart)
	s.persist(ctx)
	return s.cart.Clone()
}

func (s *CartStore) persist(ctx context.Context) {
	if !s.restored {
		s.logger.Warn("Skipping cart save, stored cart was never restored",
			slog.String("key", s.key))
		return
	}
	if err := s.repo.Save(ctx, s.key, s.cart); err != nil {
		s.logger.Error("Failed to persist cart",
			slog.String("key", s.key),
			slog.String("cart_id", s.cart.ID().String()),
			slog.Any("error", err))
	}
}
