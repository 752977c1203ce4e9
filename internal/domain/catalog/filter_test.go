//go:build unit

package catalog_test

import (
	"math"
	"testing"
	"time"

	"storefront-cart/internal/domain/catalog"
	"storefront-cart/internal/domain/money"
	"storefront-cart/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureProducts() []catalog.Product {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []catalog.Product{
		builder.NewProductBuilder().WithName("Bluetooth Speaker").WithPrice("49.99").WithRating(4.1).
			With(func(b *builder.ProductBuilder) { b.ReviewCount = 10; b.CreatedAt = base }).MustBuild(),
		builder.NewProductBuilder().WithName("Running Shoes").WithPrice("89.00").WithRating(4.8).
			WithCategory("Sports", "sports").WithBrand("SportStyle").
			With(func(b *builder.ProductBuilder) { b.ReviewCount = 300; b.CreatedAt = base.Add(48 * time.Hour) }).MustBuild(),
		builder.NewProductBuilder().WithName("Desk Lamp").WithPrice("25.50").WithRating(3.9).
			WithCategory("Home", "home").WithBrand("HomeStyle").
			With(func(b *builder.ProductBuilder) { b.ReviewCount = 45; b.CreatedAt = base.Add(24 * time.Hour) }).MustBuild(),
	}
}

func names(ps []catalog.Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Name())
	}
	return out
}

func TestApply(t *testing.T) {
	products := fixtureProducts()
	lo := money.MustParse("30.00")
	hi := money.MustParse("60.00")

	tests := []struct {
		name   string
		filter catalog.Filter
		want   []string
	}{
		{
			name:   "デフォルトは新着順",
			filter: catalog.Filter{},
			want:   []string{"Running Shoes", "Desk Lamp", "Bluetooth Speaker"},
		},
		{
			name:   "カテゴリで絞り込み",
			filter: catalog.Filter{CategorySlug: "home"},
			want:   []string{"Desk Lamp"},
		},
		{
			name:   "ブランドは大文字小文字を区別しない",
			filter: catalog.Filter{Brand: "sportstyle"},
			want:   []string{"Running Shoes"},
		},
		{
			name:   "価格帯",
			filter: catalog.Filter{MinPrice: &lo, MaxPrice: &hi},
			want:   []string{"Bluetooth Speaker"},
		},
		{
			name:   "名前で検索",
			filter: catalog.Filter{Query: "lamp"},
			want:   []string{"Desk Lamp"},
		},
		{
			name:   "カテゴリ名で検索",
			filter: catalog.Filter{Query: "SPORTS"},
			want:   []string{"Running Shoes"},
		},
		{
			name:   "2文字以下の検索語は無視",
			filter: catalog.Filter{Query: "zz", Sort: catalog.SortName},
			want:   []string{"Bluetooth Speaker", "Desk Lamp", "Running Shoes"},
		},
		{
			name:   "価格の安い順",
			filter: catalog.Filter{Sort: catalog.SortPriceLow},
			want:   []string{"Desk Lamp", "Bluetooth Speaker", "Running Shoes"},
		},
		{
			name:   "価格の高い順",
			filter: catalog.Filter{Sort: catalog.SortPriceHigh},
			want:   []string{"Running Shoes", "Bluetooth Speaker", "Desk Lamp"},
		},
		{
			name:   "評価順",
			filter: catalog.Filter{Sort: catalog.SortRating},
			want:   []string{"Running Shoes", "Bluetooth Speaker", "Desk Lamp"},
		},
		{
			name:   "人気順",
			filter: catalog.Filter{Sort: catalog.SortPopularity},
			want:   []string{"Running Shoes", "Desk Lamp", "Bluetooth Speaker"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := catalog.Apply(products, tt.filter)

			assert.Equal(t, tt.want, names(page.Items))
			assert.Equal(t, len(tt.want), page.Total)
		})
	}
}

func TestApply_Paging(t *testing.T) {
	products := fixtureProducts()

	page := catalog.Apply(products, catalog.Filter{Sort: catalog.SortName, Page: 2, PageSize: 2})

	assert.Equal(t, []string{"Running Shoes"}, names(page.Items))
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.TotalPages)

	empty := catalog.Apply(products, catalog.Filter{Page: 5, PageSize: 2})
	assert.Empty(t, empty.Items)
	assert.Equal(t, catalog.DefaultPageSize, catalog.Apply(products, catalog.Filter{}).PageSize)
}

func TestApply_OutOfRangePaging(t *testing.T) {
	products := fixtureProducts()

	tests := []struct {
		name         string
		filter       catalog.Filter
		wantPageSize int
	}{
		{
			name:         "巨大なページ番号でも空ページを返すこと",
			filter:       catalog.Filter{Page: 1 << 62, PageSize: 12},
			wantPageSize: 12,
		},
		{
			name:         "最大のページ番号でも空ページを返すこと",
			filter:       catalog.Filter{Page: math.MaxInt, PageSize: 2},
			wantPageSize: 2,
		},
		{
			name:         "巨大なページサイズは上限に丸められること",
			filter:       catalog.Filter{Page: 2, PageSize: math.MaxInt},
			wantPageSize: catalog.MaxPageSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var page catalog.Page
			require.NotPanics(t, func() {
				page = catalog.Apply(products, tt.filter)
			})

			assert.Empty(t, page.Items)
			assert.Equal(t, 3, page.Total)
			assert.Equal(t, tt.wantPageSize, page.PageSize)
		})
	}
}

func TestProduct(t *testing.T) {
	t.Run("バリアント検索", func(t *testing.T) {
		p := builder.NewProductBuilder().WithVariant("Size", "M", "0.00").MustBuild()
		v := p.Variants()[0]

		got, ok := p.FindVariant(v.ID())
		require.True(t, ok)
		assert.Equal(t, "M", got.Value())
	})

	t.Run("入力検証", func(t *testing.T) {
		_, err := builder.NewProductBuilder().WithName(" ").BuildDomain()
		require.ErrorIs(t, err, catalog.ErrEmptyProductName)

		_, err = builder.NewProductBuilder().WithPrice("-1").BuildDomain()
		require.ErrorIs(t, err, catalog.ErrNegativePrice)

		_, err = builder.NewProductBuilder().WithRating(5.5).BuildDomain()
		require.ErrorIs(t, err, catalog.ErrInvalidRating)
	})
}
