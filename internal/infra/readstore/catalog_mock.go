package readstore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront-cart/internal/domain/catalog"
	"storefront-cart/internal/domain/money"
	"storefront-cart/internal/infra"

	"github.com/google/uuid"
)

const mockProductCount = 24

var (
	mockNamespace   = uuid.MustParse("6f1f7c8e-2a4b-4c1d-9d3e-5b7a9c0e1f23")
	mockCategories  = []string{"Electronics", "Fashion", "Home", "Sports"}
	mockSlugs       = []string{"electronics", "fashion", "home", "sports"}
	mockBrands      = []string{"AudioTech", "SportStyle", "TechPro", "HomeStyle"}
	mockSeedCreated = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
)

// MockCatalog serves a fixed set of 24 products in four categories. Ids are
// derived from product numbers so they are stable across restarts.
type MockCatalog struct {
	products   []catalog.Product
	byID       map[uuid.UUID]catalog.Product
	categories []catalog.Category
	logger     *slog.Logger
}

func NewMockCatalog(logger *slog.Logger) *MockCatalog {
	categories := make([]catalog.Category, len(mockCategories))
	for i, name := range mockCategories {
		categories[i] = catalog.Category{
			ID:   MockCategoryID(i + 1),
			Name: name,
			Slug: mockSlugs[i],
		}
	}

	m := &MockCatalog{
		products:   make([]catalog.Product, 0, mockProductCount),
		byID:       make(map[uuid.UUID]catalog.Product, mockProductCount),
		categories: categories,
		logger:     logger,
	}
	for i := range mockProductCount {
		p := mockProduct(i, categories[i/6])
		m.products = append(m.products, p)
		m.byID[p.ID()] = p
	}
	return m
}

func MockProductID(n int) uuid.UUID {
	return uuid.NewSHA1(mockNamespace, []byte(fmt.Sprintf("product-%d", n)))
}

func MockCategoryID(n int) uuid.UUID {
	return uuid.NewSHA1(mockNamespace, []byte(fmt.Sprintf("category-%d", n)))
}

func mockProduct(i int, category catalog.Category) catalog.Product {
	n := i + 1
	price := money.FromCents(int64(50+(i*37)%450) * 100)
	var original *money.Money
	if i%2 == 0 {
		o := price.Add(money.FromCents(5000))
		original = &o
	}

	var variants []catalog.Variant
	switch category.Slug {
	case "electronics":
		variants = []catalog.Variant{
			mockVariant(n, 0, "Storage", "128GB", 0),
			mockVariant(n, 1, "Storage", "256GB", 5000),
		}
	case "fashion":
		variants = []catalog.Variant{
			mockVariant(n, 0, "Size", "S", 0),
			mockVariant(n, 1, "Size", "M", 0),
			mockVariant(n, 2, "Size", "L", 0),
			mockVariant(n, 3, "Size", "XL", 500),
		}
	}

	p, err := catalog.NewProduct(catalog.ProductSpec{
		ID:            MockProductID(n),
		Name:          fmt.Sprintf("Product %d", n),
		Description:   "This is a great product with amazing features and excellent quality. Perfect for your needs.",
		Price:         price,
		OriginalPrice: original,
		Category:      category,
		Brand:         mockBrands[i%4],
		Stock:         1 + (i*17)%100,
		Rating:        3.5 + float64(i%3)*0.5,
		ReviewCount:   10 + (i*53)%200,
		Tags:          []string{"tag1", "tag2"},
		Variants:      variants,
		OnSale:        i%4 == 0,
		Featured:      i%5 == 0,
		CreatedAt:     mockSeedCreated.AddDate(0, 0, -i),
	})
	if err != nil {
		panic(fmt.Sprintf("invalid mock product %d: %v", n, err))
	}
	return p
}

func mockVariant(product, pos int, name, value string, modifierCents int64) catalog.Variant {
	id := uuid.NewSHA1(mockNamespace, []byte(fmt.Sprintf("variant-%d-%d", product, pos)))
	return catalog.NewVariant(id, name, value, money.FromCents(modifierCents))
}

func (m *MockCatalog) FindProduct(_ context.Context, id uuid.UUID) (catalog.Product, error) {
	p, ok := m.byID[id]
	if !ok {
		return catalog.Product{}, infra.WrapRepoErr(m.logger, infra.KindNotFound, "product not found", nil)
	}
	return p, nil
}

func (m *MockCatalog) ListProducts(_ context.Context, filter catalog.Filter) (catalog.Page, error) {
	return catalog.Apply(m.products, filter), nil
}

func (m *MockCatalog) ListCategories(_ context.Context) ([]catalog.Category, error) {
	return append([]catalog.Category(nil), m.categories...), nil
}
