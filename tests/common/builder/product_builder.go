//go:build unit || e2e

package builder

import (
	"time"

	"storefront-cart/internal/domain/catalog"
	"storefront-cart/internal/domain/money"

	"github.com/google/uuid"
)

type ProductBuilder struct {
	ID            uuid.UUID
	Name          string
	Description   string
	Price         string
	OriginalPrice *string
	Category      catalog.Category
	Brand         string
	Stock         int
	Rating        float64
	ReviewCount   int
	Variants      []catalog.Variant
	CreatedAt     time.Time
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:          uuid.New(),
		Name:        "Wireless Headphones",
		Description: "Over-ear headphones with noise cancelling",
		Price:       "50.00",
		Category: catalog.Category{
			ID:   uuid.New(),
			Name: "Electronics",
			Slug: "electronics",
		},
		Brand:       "AudioTech",
		Stock:       10,
		Rating:      4.5,
		ReviewCount: 120,
		CreatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (p *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *ProductBuilder) BuildDomain() (catalog.Product, error) {
	price, err := money.Parse(p.Price)
	if err != nil {
		return catalog.Product{}, err
	}
	var original *money.Money
	if p.OriginalPrice != nil {
		o, err := money.Parse(*p.OriginalPrice)
		if err != nil {
			return catalog.Product{}, err
		}
		original = &o
	}

	return catalog.NewProduct(catalog.ProductSpec{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         price,
		OriginalPrice: original,
		Category:      p.Category,
		Brand:         p.Brand,
		Stock:         p.Stock,
		Rating:        p.Rating,
		ReviewCount:   p.ReviewCount,
		Variants:      p.Variants,
		CreatedAt:     p.CreatedAt,
	})
}

// MustBuild panics on invalid input. Intended for fixtures.
func (p *ProductBuilder) MustBuild() catalog.Product {
	product, err := p.BuildDomain()
	if err != nil {
		panic(err)
	}
	return product
}

// Fluent builder methods
func (p *ProductBuilder) WithName(name string) *ProductBuilder {
	p.Name = name
	return p
}

func (p *ProductBuilder) WithPrice(price string) *ProductBuilder {
	p.Price = price
	return p
}

func (p *ProductBuilder) WithOriginalPrice(price string) *ProductBuilder {
	p.OriginalPrice = &price
	return p
}

func (p *ProductBuilder) WithCategory(name, slug string) *ProductBuilder {
	p.Category = catalog.Category{ID: uuid.New(), Name: name, Slug: slug}
	return p
}

func (p *ProductBuilder) WithBrand(brand string) *ProductBuilder {
	p.Brand = brand
	return p
}

func (p *ProductBuilder) WithRating(rating float64) *ProductBuilder {
	p.Rating = rating
	return p
}

func (p *ProductBuilder) WithStock(stock int) *ProductBuilder {
	p.Stock = stock
	return p
}

func (p *ProductBuilder) WithVariant(name, value, modifier string) *ProductBuilder {
	p.Variants = append(p.Variants, catalog.NewVariant(uuid.New(), name, value, money.MustParse(modifier)))
	return p
}
