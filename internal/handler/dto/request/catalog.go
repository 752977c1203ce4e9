package request

import (
	"storefront-cart/internal/domain/catalog"
	"storefront-cart/internal/domain/money"
)

// ListProductsQuery is bound from the query string of GET /api/products.
type ListProductsQuery struct {
	Category string `form:"category"`
	Brand    string `form:"brand"`
	Query    string `form:"q"`
	MinPrice string `form:"minPrice"`
	MaxPrice string `form:"maxPrice"`
	Sort     string `form:"sort"`
	Page     int    `form:"page" binding:"omitempty,min=1,max=10000"`
	PageSize int    `form:"pageSize" binding:"omitempty,min=1,max=100"`
}

func (q ListProductsQuery) ToFilter() (catalog.Filter, error) {
	minPrice, err := optionalMoney(q.MinPrice)
	if err != nil {
		return catalog.Filter{}, err
	}
	maxPrice, err := optionalMoney(q.MaxPrice)
	if err != nil {
		return catalog.Filter{}, err
	}
	return catalog.Filter{
		CategorySlug: q.Category,
		Brand:        q.Brand,
		Query:        q.Query,
		MinPrice:     minPrice,
		MaxPrice:     maxPrice,
		Sort:         catalog.SortKey(q.Sort),
		Page:         q.Page,
		PageSize:     q.PageSize,
	}, nil
}

func optionalMoney(s string) (*money.Money, error) {
	if s == "" {
		return nil, nil
	}
	m, err := money.Parse(s)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
