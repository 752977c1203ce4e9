package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront-cart/internal/infra/db"
	"storefront-cart/internal/infra/kvstore"
	"storefront-cart/internal/infra/readstore"
	"storefront-cart/internal/infra/repository"
	"storefront-cart/internal/pkg/clock"
	"storefront-cart/internal/pkg/config"
	"storefront-cart/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewDB,
		NewKVStore,
		NewProductCatalog,
		NewUserRepository,
	),
)

const connectTimeout = 10 * time.Second

// NewDB returns a nil pool when neither storage nor catalog use PostgreSQL.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	if !cfg.UsesPostgres() {
		return nil, nil
	}

	if cfg.DB.Migrate {
		if err := db.MigratePostgres(cfg.DB.BuildDSN(), logger); err != nil {
			return nil, err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func NewKVStore(lc fx.Lifecycle, cfg config.Config, pool *pgxpool.Pool, clk clock.Clock, logger *slog.Logger) (kvstore.Store, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		return kvstore.NewMemory(logger), nil
	case config.StorageDriverSQLite:
		conn, cleanup, err := db.OpenSQLite(cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		if err := db.MigrateSQLite(conn, logger); err != nil {
			cleanup()
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		return kvstore.NewSQLite(conn, clk, logger), nil
	case config.StorageDriverPostgres:
		return kvstore.NewPostgres(pool, clk, logger), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}

func NewProductCatalog(cfg config.Config, pool *pgxpool.Pool, logger *slog.Logger) (usecase.ProductCatalog, error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourceMock:
		return readstore.NewMockCatalog(logger), nil
	case config.CatalogSourcePostgres:
		return readstore.NewPostgresCatalog(pool, logger), nil
	default:
		return nil, fmt.Errorf("unsupported catalog source %q", cfg.Catalog.Source)
	}
}

// NewUserRepository keeps accounts in memory unless storage is PostgreSQL.
func NewUserRepository(cfg config.Config, pool *pgxpool.Pool, logger *slog.Logger) usecase.UserRepository {
	if cfg.Storage.Driver == config.StorageDriverPostgres {
		return repository.NewPostgresUserRepository(pool, logger)
	}
	return repository.NewUserRepository(logger)
}
