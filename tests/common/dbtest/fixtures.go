//go:build unit || e2e

package dbtest

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// ResetDB clears persisted carts and accounts. The catalog tables are seeded by migration
// and left untouched.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE kv_entries, users")
	return err
}

// StoredEnvelope returns the persisted cart envelope under key, or nil when
// nothing was saved.
func StoredEnvelope(t *testing.T, db DBLike, key string) map[string]any {
	t.Helper()

	var raw []byte
	err := db.QueryRow(context.Background(), "SELECT value FROM kv_entries WHERE key = $1", key).Scan(&raw)
	if err == pgx.ErrNoRows {
		return nil
	}
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return envelope
}

func CountEntries(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM kv_entries").Scan(&n)
	require.NoError(t, err)
	return n
}
