package usecase

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/ports_mock.go -package=usecasemock

import (
	"context"

	"storefront-cart/internal/domain/cart"
	"storefront-cart/internal/domain/catalog"
	"storefront-cart/internal/domain/user"

	"github.com/google/uuid"
)

// CartRepository persists one cart per storage key. Load returns an
// infra.KindNotFound error when nothing has been saved yet.
type CartRepository interface {
	Load(ctx context.Context, key string) (*cart.Cart, error)
	Save(ctx context.Context, key string, c *cart.Cart) error
}

type ProductCatalog interface {
	FindProduct(ctx context.Context, id uuid.UUID) (catalog.Product, error)
	ListProducts(ctx context.Context, filter catalog.Filter) (catalog.Page, error)
	ListCategories(ctx context.Context) ([]catalog.Category, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}
