package response

import (
	"time"

	"storefront-cart/internal/domain/catalog"

	"github.com/google/uuid"
)

type CategoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

type VariantResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Value         string    `json:"value"`
	PriceModifier string    `json:"priceModifier"`
}

type ProductResponse struct {
	ID            uuid.UUID         `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Price         string            `json:"price"`
	OriginalPrice *string           `json:"originalPrice,omitempty"`
	Category      CategoryResponse  `json:"category"`
	Brand         string            `json:"brand"`
	Stock         int               `json:"stock"`
	Rating        float64           `json:"rating"`
	ReviewCount   int               `json:"reviewCount"`
	Tags          []string          `json:"tags"`
	Variants      []VariantResponse `json:"variants,omitempty"`
	OnSale        bool              `json:"onSale"`
	Featured      bool              `json:"featured"`
	CreatedAt     time.Time         `json:"createdAt"`
}

type ProductListResponse struct {
	Items      []ProductResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
}

func FromCategory(c catalog.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Slug: c.Slug}
}

func FromCategories(cs []catalog.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(cs))
	for i, c := range cs {
		res[i] = FromCategory(c)
	}
	return res
}

func FromVariant(v catalog.Variant) VariantResponse {
	return VariantResponse{
		ID:            v.ID(),
		Name:          v.Name(),
		Value:         v.Value(),
		PriceModifier: v.PriceModifier().String(),
	}
}

func FromProduct(p catalog.Product) ProductResponse {
	res := ProductResponse{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price().String(),
		Category:    FromCategory(p.Category()),
		Brand:       p.Brand(),
		Stock:       p.Stock(),
		Rating:      p.Rating(),
		ReviewCount: p.ReviewCount(),
		Tags:        p.Tags(),
		OnSale:      p.OnSale(),
		Featured:    p.Featured(),
		CreatedAt:   p.CreatedAt(),
	}
	if res.Tags == nil {
		res.Tags = []string{}
	}
	if op := p.OriginalPrice(); op != nil {
		s := op.String()
		res.OriginalPrice = &s
	}
	for _, v := range p.Variants() {
		res.Variants = append(res.Variants, FromVariant(v))
	}
	return res
}

func FromPage(page catalog.Page) ProductListResponse {
	items := make([]ProductResponse, len(page.Items))
	for i, p := range page.Items {
		items[i] = FromProduct(p)
	}
	return ProductListResponse{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
}
