package kvstore

import (
	"context"
	"database/sql"
	"log/slog"

	"storefront-cart/internal/infra"
	"storefront-cart/internal/pkg/clock"
)

const (
	sqliteGet    = `SELECT value FROM kv_entries WHERE key = ?`
	sqliteUpsert = `INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	sqliteDelete = `DELETE FROM kv_entries WHERE key = ?`
)

// SQLite stores entries in the kv_entries table created by db.MigrateSQLite.
type SQLite struct {
	db     *sql.DB
	clock  clock.Clock
	logger *slog.Logger
}

func NewSQLite(db *sql.DB, clock clock.Clock, logger *slog.Logger) *SQLite {
	return &SQLite{db: db, clock: clock, logger: logger}
}

func (s *SQLite) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	if err := s.db.QueryRowContext(ctx, sqliteGet, key).Scan(&value); err != nil {
		return nil, infra.WrapDBErr(s.logger, "failed to read kv entry", err)
	}
	return value, nil
}

func (s *SQLite) Put(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.ExecContext(ctx, sqliteUpsert, key, value, s.clock.Now().UTC()); err != nil {
		return infra.WrapDBErr(s.logger, "failed to write kv entry", err)
	}
	return nil
}

func (s *SQLite) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, sqliteDelete, key); err != nil {
		return infra.WrapDBErr(s.logger, "failed to delete kv entry", err)
	}
	return nil
}
