package catalog

import (
	"sort"
	"strings"

	"storefront-cart/internal/domain/money"
)

const (
	DefaultPageSize = 12
	MaxPageSize     = 100
	MinSearchLength = 3
)

type SortKey string

const (
	SortNewest     SortKey = "newest"
	SortPopularity SortKey = "popularity"
	SortPriceLow   SortKey = "price-low"
	SortPriceHigh  SortKey = "price-high"
	SortRating     SortKey = "rating"
	SortName       SortKey = "name"
)

func (s SortKey) IsValid() bool {
	switch s {
	case SortNewest, SortPopularity, SortPriceLow, SortPriceHigh, SortRating, SortName:
		return true
	default:
		return false
	}
}

type Filter struct {
	CategorySlug string
	Brand        string
	Query        string
	MinPrice     *money.Money
	MaxPrice     *money.Money
	Sort         SortKey
	Page         int
	PageSize     int
}

type Page struct {
	Items      []Product
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

func (f Filter) normalized() Filter {
	if !f.Sort.IsValid() {
		f.Sort = SortNewest
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
	f.Query = strings.TrimSpace(f.Query)
	if len([]rune(f.Query)) < MinSearchLength {
		f.Query = ""
	}
	return f
}

// Matches reports whether p passes every criterion of f except paging.
func (f Filter) Matches(p Product) bool {
	f = f.normalized()
	if f.CategorySlug != "" && !strings.EqualFold(p.category.Slug, f.CategorySlug) {
		return false
	}
	if f.Brand != "" && !strings.EqualFold(p.brand, f.Brand) {
		return false
	}
	if f.MinPrice != nil && p.price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && f.MaxPrice.LessThan(p.price) {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(p.name), q) &&
			!strings.Contains(strings.ToLower(p.description), q) &&
			!strings.Contains(strings.ToLower(p.category.Name), q) {
			return false
		}
	}
	return true
}

// Apply filters, sorts and pages products in memory. The input slice is not modified.
func Apply(products []Product, f Filter) Page {
	f = f.normalized()

	matched := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			matched = append(matched, p)
		}
	}
	sort.SliceStable(matched, less(matched, f.Sort))

	total := len(matched)
	totalPages := (total + f.PageSize - 1) / f.PageSize
	// pages past the end are empty; the multiply stays bounded by total
	start := total
	if f.Page-1 < totalPages {
		start = (f.Page - 1) * f.PageSize
	}
	end := start + f.PageSize
	if end > total {
		end = total
	}

	return Page{
		Items:      matched[start:end],
		Total:      total,
		Page:       f.Page,
		PageSize:   f.PageSize,
		TotalPages: totalPages,
	}
}

func less(ps []Product, key SortKey) func(i, j int) bool {
	switch key {
	case SortPopularity:
		return func(i, j int) bool { return ps[i].reviewCount > ps[j].reviewCount }
	case SortPriceLow:
		return func(i, j int) bool { return ps[i].price.LessThan(ps[j].price) }
	case SortPriceHigh:
		return func(i, j int) bool { return ps[j].price.LessThan(ps[i].price) }
	case SortRating:
		return func(i, j int) bool { return ps[i].rating > ps[j].rating }
	case SortName:
		return func(i, j int) bool { return ps[i].name < ps[j].name }
	default:
		return func(i, j int) bool { return ps[i].createdAt.After(ps[j].createdAt) }
	}
}
