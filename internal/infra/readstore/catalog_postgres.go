package readstore

import (
	"context"
	"log/slog"
	"time"

	"storefront-cart/internal/domain/catalog"
	"storefront-cart/internal/domain/money"
	"storefront-cart/internal/infra"
	"storefront-cart/internal/infra/db"
	"storefront-cart/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jinzhu/copier"
)

const productColumns = `
    p.id, p.name, p.description, p.price::text, p.original_price::text,
    p.brand, p.stock, p.rating, p.review_count, p.tags,
    p.is_on_sale, p.is_featured, p.created_at,
    c.id, c.name, c.slug
FROM products p
JOIN categories c ON c.id = p.category_id`

const (
	findProductSQL    = `SELECT` + productColumns + ` WHERE p.id = $1`
	listProductsSQL   = `SELECT` + productColumns + ` WHERE ($1 = '' OR c.slug = $1) ORDER BY p.created_at DESC`
	listVariantsSQL   = `SELECT id, product_id, name, value, price_modifier::text FROM product_variants WHERE product_id = ANY($1) ORDER BY product_id, position`
	listCategoriesSQL = `SELECT id, name, slug FROM categories ORDER BY name`
)

type productRow struct {
	ID                uuid.UUID
	Name              string
	Description       string
	Price             string
	OriginalPriceText *string
	Brand             string
	Stock             int32
	Rating            float64
	ReviewCount       int32
	Tags              []string
	OnSale            bool
	Featured          bool
	CreatedAt         time.Time
	CategoryID        uuid.UUID
	CategoryName      string
	CategorySlug      string
}

func (r *productRow) scanTargets() []any {
	return []any{
		&r.ID, &r.Name, &r.Description, &r.Price, &r.OriginalPriceText,
		&r.Brand, &r.Stock, &r.Rating, &r.ReviewCount, &r.Tags,
		&r.OnSale, &r.Featured, &r.CreatedAt,
		&r.CategoryID, &r.CategoryName, &r.CategorySlug,
	}
}

var rowConverters = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: copier.String,
			DstType: money.Money{},
			Fn: func(src any) (any, error) {
				return money.Parse(src.(string))
			},
		},
	},
}

// PostgresCatalog reads products from the catalog tables seeded by the migrations.
type PostgresCatalog struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewPostgresCatalog(conn db.DBTX, logger *slog.Logger) *PostgresCatalog {
	return &PostgresCatalog{db: conn, logger: logger}
}

func (s *PostgresCatalog) FindProduct(ctx context.Context, id uuid.UUID) (catalog.Product, error) {
	var row productRow
	if err := s.db.QueryRow(ctx, findProductSQL, id).Scan(row.scanTargets()...); err != nil {
		return catalog.Product{}, infra.WrapDBErr(s.logger, "failed to find product", err)
	}

	variants, err := s.loadVariants(ctx, []uuid.UUID{row.ID})
	if err != nil {
		return catalog.Product{}, err
	}
	return s.toDomain(row, variants[row.ID])
}

func (s *PostgresCatalog) ListProducts(ctx context.Context, filter catalog.Filter) (catalog.Page, error) {
	rows, err := s.db.Query(ctx, listProductsSQL, filter.CategorySlug)
	if err != nil {
		return catalog.Page{}, infra.WrapDBErr(s.logger, "failed to list products", err)
	}
	collected, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (productRow, error) {
		var row productRow
		err := r.Scan(row.scanTargets()...)
		return row, err
	})
	if err != nil {
		return catalog.Page{}, infra.WrapDBErr(s.logger, "failed to scan products", err)
	}

	ids := make([]uuid.UUID, len(collected))
	for i, row := range collected {
		ids[i] = row.ID
	}
	variants, err := s.loadVariants(ctx, ids)
	if err != nil {
		return catalog.Page{}, err
	}

	products := make([]catalog.Product, 0, len(collected))
	for _, row := range collected {
		p, err := s.toDomain(row, variants[row.ID])
		if err != nil {
			return catalog.Page{}, err
		}
		products = append(products, p)
	}
	return catalog.Apply(products, filter), nil
}

func (s *PostgresCatalog) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	rows, err := s.db.Query(ctx, listCategoriesSQL)
	if err != nil {
		return nil, infra.WrapDBErr(s.logger, "failed to list categories", err)
	}
	categories, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (catalog.Category, error) {
		var c catalog.Category
		err := r.Scan(&c.ID, &c.Name, &c.Slug)
		return c, err
	})
	if err != nil {
		return nil, infra.WrapDBErr(s.logger, "failed to scan categories", err)
	}
	return categories, nil
}

func (s *PostgresCatalog) loadVariants(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID][]catalog.Variant, error) {
	out := make(map[uuid.UUID][]catalog.Variant, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}

	rows, err := s.db.Query(ctx, listVariantsSQL, productIDs)
	if err != nil {
		return nil, infra.WrapDBErr(s.logger, "failed to list variants", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, productID uuid.UUID
			name, value   string
			modifier      string
		)
		if err := rows.Scan(&id, &productID, &name, &value, &modifier); err != nil {
			return nil, infra.WrapDBErr(s.logger, "failed to scan variant", err)
		}
		m, err := money.Parse(modifier)
		if err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindCorruptData, "invalid variant price modifier", err)
		}
		out[productID] = append(out[productID], catalog.NewVariant(id, name, value, m))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapDBErr(s.logger, "failed to iterate variants", err)
	}
	return out, nil
}

func (s *PostgresCatalog) toDomain(row productRow, variants []catalog.Variant) (catalog.Product, error) {
	var spec catalog.ProductSpec
	if err := copier.CopyWithOption(&spec, &row, rowConverters); err != nil {
		return catalog.Product{}, infra.WrapRepoErr(s.logger, infra.KindCorruptData, "failed to map product row", err)
	}
	if row.OriginalPriceText != nil {
		o, err := money.Parse(*row.OriginalPriceText)
		if err != nil {
			return catalog.Product{}, infra.WrapRepoErr(s.logger, infra.KindCorruptData, "invalid original price", err)
		}
		spec.OriginalPrice = &o
	}
	spec.Category = catalog.Category{ID: row.CategoryID, Name: row.CategoryName, Slug: row.CategorySlug}
	spec.Variants = variants

	p, err := catalog.NewProduct(spec)
	if err != nil {
		return catalog.Product{}, infra.WrapRepoErr(s.logger, infra.KindCorruptData, "invalid product row", errs.Wrapf(err, "product %s", row.ID))
	}
	return p, nil
}
