package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront-cart/internal/domain/cart"
	"storefront-cart/internal/pkg/clock"
	"storefront-cart/internal/pkg/config"
)

// CartSessions owns one CartStore per cart key. Each store is restored from
// the repository the first time its key is seen and dropped again once it
// has been idle longer than the configured TTL. The repository keeps the
// durable copy, so an evicted key is simply restored on its next use.
type CartSessions struct {
	mu        sync.Mutex
	entries   map[string]*sessionEntry
	lastSweep time.Time
	idleTTL   time.Duration
	repo      CartRepository
	resolver  cart.DiscountResolver
	policy    cart.PricingPolicy
	clock     clock.Clock
	logger    *slog.Logger
}

type sessionEntry struct {
	store    *CartStore
	lastUsed time.Time
	refs     int
}

func NewCartSessions(
	repo CartRepository,
	resolver cart.DiscountResolver,
	policy cart.PricingPolicy,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) *CartSessions {
	return &CartSessions{
		entries:  make(map[string]*sessionEntry),
		idleTTL:  cfg.Cart.SessionIdleTTL,
		repo:     repo,
		resolver: resolver,
		policy:   policy,
		clock:    clk,
		logger:   logger,
	}
}

// Acquire returns the store for cartKey and a release func the caller must
// run when done. A store is never evicted while acquired.
//
// A store whose restore failed is handed out but not kept, so the next
// request retries the load instead of serving an empty cart for good.
func (s *CartSessions) Acquire(ctx context.Context, cartKey string) (*CartStore, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	s.evictIdleLocked(now)

	if e, ok := s.entries[cartKey]; ok {
		e.refs++
		e.lastUsed = now
		return e.store, s.releaser(e)
	}

	store := OpenCartStore(ctx, cartKey, s.repo, s.resolver, s.policy, s.logger)
	if !store.Restored() {
		return store, func() {}
	}
	e := &sessionEntry{store: store, lastUsed: now, refs: 1}
	s.entries[cartKey] = e
	return store, s.releaser(e)
}

// Store is Acquire for callers that do not hold on to the store.
func (s *CartSessions) Store(ctx context.Context, cartKey string) *CartStore {
	store, release := s.Acquire(ctx, cartKey)
	release()
	return store
}

// Active reports how many stores are currently held in memory.
func (s *CartSessions) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *CartSessions) releaser(e *sessionEntry) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			e.refs--
			e.lastUsed = s.clock.Now()
		})
	}
}

// evictIdleLocked sweeps at most twice per TTL. A zero TTL keeps every store.
func (s *CartSessions) evictIdleLocked(now time.Time) {
	if s.idleTTL <= 0 || now.Sub(s.lastSweep) < s.idleTTL/2 {
		return
	}
	s.lastSweep = now

	for key, e := range s.entries {
		if e.refs == 0 && now.Sub(e.lastUsed) > s.idleTTL {
			delete(s.entries, key)
			s.logger.Debug("Evicted idle cart session", slog.String("key", StorageKey(key)))
		}
	}
}
