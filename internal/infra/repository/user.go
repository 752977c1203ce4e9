package repository

import (
	"context"
	"log/slog"
	"sync"

	"storefront-cart/internal/domain/user"
	"storefront-cart/internal/infra"

	"github.com/google/uuid"
)

// UserRepository keeps registered users in memory for the memory and sqlite drivers.
// Accounts do not survive a restart.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*user.User
	byEmail map[string]uuid.UUID
	logger  *slog.Logger
}

func NewUserRepository(logger *slog.Logger) *UserRepository {
	return &UserRepository{
		byID:    make(map[uuid.UUID]*user.User),
		byEmail: make(map[string]uuid.UUID),
		logger:  logger,
	}
}

func (r *UserRepository) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[u.Email().Value()]; exists {
		return infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "email already registered", nil)
	}
	r.byID[u.ID()] = u
	r.byEmail[u.Email().Value()] = u.ID()
	return nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email user.Email) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email.Value()]
	if !ok {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "user not found", nil)
	}
	return r.byID[id], nil
}

func (r *UserRepository) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "user not found", nil)
	}
	return u, nil
}
