package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"storefront-cart/internal/domain/money"
)

var (
	ErrEmptyProductName = errors.New("product name is required")
	ErrNegativePrice    = errors.New("product price cannot be negative")
	ErrNegativeStock    = errors.New("product stock cannot be negative")
	ErrInvalidRating    = errors.New("product rating must be between 0 and 5")
)

type Category struct {
	ID   uuid.UUID
	Name string
	Slug string
}

type Variant struct {
	id            uuid.UUID
	name          string
	value         string
	priceModifier money.Money
}

// NewVariant builds a priced option such as a size or color. The modifier is
// added to the product price and may be negative.
func NewVariant(id uuid.UUID, name, value string, priceModifier money.Money) Variant {
	return Variant{id: id, name: name, value: value, priceModifier: priceModifier}
}

func (v Variant) ID() uuid.UUID              { return v.id }
func (v Variant) Name() string               { return v.name }
func (v Variant) Value() string              { return v.value }
func (v Variant) PriceModifier() money.Money { return v.priceModifier }

type ProductSpec struct {
	ID            uuid.UUID
	Name          string
	Description   string
	Price         money.Money
	OriginalPrice *money.Money
	Category      Category
	Brand         string
	Stock         int
	Rating        float64
	ReviewCount   int
	Tags          []string
	Variants      []Variant
	OnSale        bool
	Featured      bool
	CreatedAt     time.Time
}

// Product is an immutable catalog entry. Carts capture it by value.
type Product struct {
	id            uuid.UUID
	name          string
	description   string
	price         money.Money
	originalPrice *money.Money
	category      Category
	brand         string
	stock         int
	rating        float64
	reviewCount   int
	tags          []string
	variants      []Variant
	onSale        bool
	featured      bool
	createdAt     time.Time
}

func NewProduct(spec ProductSpec) (Product, error) {
	if strings.TrimSpace(spec.Name) == "" {
		return Product{}, ErrEmptyProductName
	}
	if spec.Price.IsNegative() {
		return Product{}, ErrNegativePrice
	}
	if spec.Stock < 0 {
		return Product{}, ErrNegativeStock
	}
	if spec.Rating < 0 || spec.Rating > 5 {
		return Product{}, ErrInvalidRating
	}

	id := spec.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	var original *money.Money
	if spec.OriginalPrice != nil {
		o := *spec.OriginalPrice
		original = &o
	}

	return Product{
		id:            id,
		name:          spec.Name,
		description:   spec.Description,
		price:         spec.Price,
		originalPrice: original,
		category:      spec.Category,
		brand:         spec.Brand,
		stock:         spec.Stock,
		rating:        spec.Rating,
		reviewCount:   spec.ReviewCount,
		tags:          append([]string(nil), spec.Tags...),
		variants:      append([]Variant(nil), spec.Variants...),
		onSale:        spec.OnSale,
		featured:      spec.Featured,
		createdAt:     spec.CreatedAt,
	}, nil
}

func (p Product) ID() uuid.UUID               { return p.id }
func (p Product) Name() string                { return p.name }
func (p Product) Description() string         { return p.description }
func (p Product) Price() money.Money          { return p.price }
func (p Product) OriginalPrice() *money.Money { return p.originalPrice }
func (p Product) Category() Category          { return p.category }
func (p Product) Brand() string               { return p.brand }
func (p Product) Stock() int                  { return p.stock }
func (p Product) Rating() float64             { return p.rating }
func (p Product) ReviewCount() int            { return p.reviewCount }
func (p Product) OnSale() bool                { return p.onSale }
func (p Product) Featured() bool              { return p.featured }
func (p Product) CreatedAt() time.Time        { return p.createdAt }

func (p Product) Tags() []string {
	return append([]string(nil), p.tags...)
}

func (p Product) Variants() []Variant {
	return append([]Variant(nil), p.variants...)
}

func (p Product) FindVariant(id uuid.UUID) (Variant, bool) {
	for _, v := range p.variants {
		if v.id == id {
			return v, true
		}
	}
	return Variant{}, false
}

// Spec returns the construction input of p, used when persisting or copying a product.
func (p Product) Spec() ProductSpec {
	return ProductSpec{
		ID:            p.id,
		Name:          p.name,
		Description:   p.description,
		Price:         p.price,
		OriginalPrice: p.originalPrice,
		Category:      p.category,
		Brand:         p.brand,
		Stock:         p.stock,
		Rating:        p.rating,
		ReviewCount:   p.reviewCount,
		Tags:          p.Tags(),
		Variants:      p.Variants(),
		OnSale:        p.onSale,
		Featured:      p.featured,
		CreatedAt:     p.createdAt,
	}
}
