package usecase

//go:generate mockgen -source=catalog.go -destination=../../tests/mock/usecase/catalog_mock.go -package=usecasemock

import (
	"context"

	"storefront-cart/internal/domain/catalog"
	"storefront-cart/internal/infra"
	"storefront-cart/internal/pkg/errs"

	"github.com/google/uuid"
)

type CatalogUseCase interface {
	GetProduct(ctx context.Context, id uuid.UUID) (catalog.Product, error)
	ListProducts(ctx context.Context, filter catalog.Filter) (catalog.Page, error)
	ListCategories(ctx context.Context) ([]catalog.Category, error)
}

type catalogUseCaseImpl struct {
	catalog ProductCatalog
}

func NewCatalogUseCase(productCatalog ProductCatalog) CatalogUseCase {
	return &catalogUseCaseImpl{catalog: productCatalog}
}

func (u *catalogUseCaseImpl) GetProduct(ctx context.Context, id uuid.UUID) (catalog.Product, error) {
	product, err := u.catalog.FindProduct(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return catalog.Product{}, errs.ErrProductNotFound
		}
		return catalog.Product{}, errs.Mark(errs.Wrap(err, "failed to find product"), errs.ErrCatalogUnavailable)
	}
	return product, nil
}

func (u *catalogUseCaseImpl) ListProducts(ctx context.Context, filter catalog.Filter) (catalog.Page, error) {
	page, err := u.catalog.ListProducts(ctx, filter)
	if err != nil {
		return catalog.Page{}, errs.Mark(errs.Wrap(err, "failed to list products"), errs.ErrCatalogUnavailable)
	}
	return page, nil
}

func (u *catalogUseCaseImpl) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	categories, err := u.catalog.ListCategories(ctx)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to list categories"), errs.ErrCatalogUnavailable)
	}
	return categories, nil
}
