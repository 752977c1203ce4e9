package usecase

//go:generate mockgen -source=cart.go -destination=../../tests/mock/usecase/cart_mock.go -package=usecasemock

import (
	"context"

	"storefront-cart/internal/domain/cart"
	"storefront-cart/internal/domain/catalog"
	"storefront-cart/internal/infra"
	"storefront-cart/internal/pkg/errs"

	"github.com/google/uuid"
)

type AddItemParams struct {
	ProductID uuid.UUID
	VariantID *uuid.UUID
	Quantity  int
}

type CartUseCase interface {
	GetCart(ctx context.Context, cartKey string) (*cart.Cart, error)
	AddItem(ctx context.Context, cartKey string, params AddItemParams) (*cart.Cart, error)
	UpdateQuantity(ctx context.Context, cartKey string, itemID uuid.UUID, quantity int) (*cart.Cart, error)
	RemoveItem(ctx context.Context, cartKey string, itemID uuid.UUID) (*cart.Cart, error)
	ClearCart(ctx context.Context, cartKey string) (*cart.Cart, error)
	// ApplyDiscount returns the unchanged cart together with
	// errs.ErrInvalidDiscountCode when the code is rejected.
	ApplyDiscount(ctx context.Context, cartKey string, code string) (*cart.Cart, error)
}

type cartUseCaseImpl struct {
	sessions *CartSessions
	catalog  ProductCatalog
}

func NewCartUseCase(sessions *CartSessions, productCatalog ProductCatalog) CartUseCase {
	return &cartUseCaseImpl{
		sessions: sessions,
		catalog:  productCatalog,
	}
}

func (u *cartUseCaseImpl) GetCart(ctx context.Context, cartKey string) (*cart.Cart, error) {
	store, release := u.sessions.Acquire(ctx, cartKey)
	defer release()
	return store.Snapshot(), nil
}

func (u *cartUseCaseImpl) AddItem(ctx context.Context, cartKey string, params AddItemParams) (*cart.Cart, error) {
	product, err := u.catalog.FindProduct(ctx, params.ProductID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrProductNotFound
		}
		return nil, errs.Mark(errs.Wrap(err, "failed to find product"), errs.ErrCatalogUnavailable)
	}

	var variant *catalog.Variant
	if params.VariantID != nil {
		v, ok := product.FindVariant(*params.VariantID)
		if !ok {
			return nil, errs.ErrVariantNotFound
		}
		variant = &v
	}

	store, release := u.sessions.Acquire(ctx, cartKey)
	defer release()
	return store.AddItem(ctx, product, cart.Quantity(params.Quantity), variant), nil
}

func (u *cartUseCaseImpl) UpdateQuantity(ctx context.Context, cartKey string, itemID uuid.UUID, quantity int) (*cart.Cart, error) {
	store, release := u.sessions.Acquire(ctx, cartKey)
	defer release()
	return store.UpdateQuantity(ctx, itemID, cart.Quantity(quantity)), nil
}

func (u *cartUseCaseImpl) RemoveItem(ctx context.Context, cartKey string, itemID uuid.UUID) (*cart.Cart, error) {
	store, release := u.sessions.Acquire(ctx, cartKey)
	defer release()
	return store.RemoveItem(ctx, itemID), nil
}

func (u *cartUseCaseImpl) ClearCart(ctx context.Context, cartKey string) (*cart.Cart, error) {
	store, release := u.sessions.Acquire(ctx, cartKey)
	defer release()
	return store.ClearCart(ctx), nil
}

func (u *cartUseCaseImpl) ApplyDiscount(ctx context.Context, cartKey string, code string) (*cart.Cart, error) {
	store, release := u.sessions.Acquire(ctx, cartKey)
	defer release()

	snapshot, ok := store.ApplyDiscount(ctx, code)
	if !ok {
		return snapshot, errs.ErrInvalidDiscountCode
	}
	return snapshot, nil
}
