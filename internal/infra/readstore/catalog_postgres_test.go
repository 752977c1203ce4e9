//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"storefront-cart/internal/domain/catalog"
	"storefront-cart/internal/infra"
	"storefront-cart/internal/infra/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errDBConnectionLost = errors.New("database connection lost")

	productCols = []string{
		"id", "name", "description", "price", "original_price",
		"brand", "stock", "rating", "review_count", "tags",
		"is_on_sale", "is_featured", "created_at",
		"category_id", "category_name", "category_slug",
	}
	variantCols = []string{"id", "product_id", "name", "value", "price_modifier"}
)

func productValues(id uuid.UUID, name, price string, original *string, slug string, created time.Time) []any {
	return []any{
		id, name, "desc", price, original,
		"AudioTech", int32(5), 4.5, int32(12), []string{"tag1"},
		false, true, created,
		uuid.New(), "Electronics", slug,
	}
}

func newCatalog(t *testing.T) (*readstore.PostgresCatalog, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return readstore.NewPostgresCatalog(mock, discardLogger()), mock
}

func TestPostgresCatalog_FindProduct(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()
	original := "199.00"

	t.Run("success: product with variants", func(t *testing.T) {
		store, mock := newCatalog(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE p.id = $1")).WithArgs(productID).
			WillReturnRows(pgxmock.NewRows(productCols).
				AddRow(productValues(productID, "Headphones", "149.00", &original, "electronics", time.Now())...))
		mock.ExpectQuery(regexp.QuoteMeta("FROM product_variants")).WithArgs([]uuid.UUID{productID}).
			WillReturnRows(pgxmock.NewRows(variantCols).
				AddRow(uuid.New(), productID, "Storage", "256GB", "50.00"))

		p, err := store.FindProduct(ctx, productID)

		require.NoError(t, err)
		assert.Equal(t, "Headphones", p.Name())
		assert.Equal(t, "149.00", p.Price().String())
		require.NotNil(t, p.OriginalPrice())
		assert.Equal(t, "199.00", p.OriginalPrice().String())
		assert.Equal(t, 5, p.Stock())
		assert.Equal(t, "electronics", p.Category().Slug)
		require.Len(t, p.Variants(), 1)
		assert.Equal(t, "50.00", p.Variants()[0].PriceModifier().String())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: not found", func(t *testing.T) {
		store, mock := newCatalog(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE p.id = $1")).WithArgs(productID).WillReturnError(pgx.ErrNoRows)

		_, err := store.FindProduct(ctx, productID)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: connection lost", func(t *testing.T) {
		store, mock := newCatalog(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE p.id = $1")).WithArgs(productID).WillReturnError(errDBConnectionLost)

		_, err := store.FindProduct(ctx, productID)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestPostgresCatalog_ListProducts(t *testing.T) {
	ctx := context.Background()
	store, mock := newCatalog(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a, b := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE ($1 = '' OR c.slug = $1)")).WithArgs("electronics").
		WillReturnRows(pgxmock.NewRows(productCols).
			AddRow(productValues(a, "Cheap", "10.00", nil, "electronics", base)...).
			AddRow(productValues(b, "Pricey", "90.00", nil, "electronics", base.Add(time.Hour))...))
	mock.ExpectQuery(regexp.QuoteMeta("FROM product_variants")).WithArgs([]uuid.UUID{a, b}).
		WillReturnRows(pgxmock.NewRows(variantCols))

	page, err := store.ListProducts(ctx, catalog.Filter{CategorySlug: "electronics", Sort: catalog.SortPriceHigh})

	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Pricey", page.Items[0].Name())
	assert.Nil(t, page.Items[1].OriginalPrice())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCatalog_ListCategories(t *testing.T) {
	store, mock := newCatalog(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM categories ORDER BY name")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "slug"}).
			AddRow(uuid.New(), "Electronics", "electronics").
			AddRow(uuid.New(), "Fashion", "fashion"))

	categories, err := store.ListCategories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "fashion", categories[1].Slug)
	require.NoError(t, mock.ExpectationsWereMet())
}
