package kvstore

import (
	"context"
	"log/slog"

	"storefront-cart/internal/infra"
	"storefront-cart/internal/infra/db"
	"storefront-cart/internal/pkg/clock"
	"storefront-cart/internal/pkg/pgconv"
)

const (
	postgresGet    = `SELECT value FROM kv_entries WHERE key = $1`
	postgresUpsert = `INSERT INTO kv_entries (key, value, updated_at) VALUES ($1, $2, $3)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	postgresDelete = `DELETE FROM kv_entries WHERE key = $1`
)

type Postgres struct {
	db     db.DBTX
	clock  clock.Clock
	logger *slog.Logger
}

func NewPostgres(conn db.DBTX, clock clock.Clock, logger *slog.Logger) *Postgres {
	return &Postgres{db: conn, clock: clock, logger: logger}
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	if err := p.db.QueryRow(ctx, postgresGet, key).Scan(&value); err != nil {
		return nil, infra.WrapDBErr(p.logger, "failed to read kv entry", err)
	}
	return value, nil
}

func (p *Postgres) Put(ctx context.Context, key string, value []byte) error {
	if _, err := p.db.Exec(ctx, postgresUpsert, key, value, pgconv.TimeToPgtype(p.clock.Now())); err != nil {
		return infra.WrapDBErr(p.logger, "failed to write kv entry", err)
	}
	return nil
}

func (p *Postgres) Delete(ctx context.Context, key string) error {
	if _, err := p.db.Exec(ctx, postgresDelete, key); err != nil {
		return infra.WrapDBErr(p.logger, "failed to delete kv entry", err)
	}
	return nil
}
