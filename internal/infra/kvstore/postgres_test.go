//go:build unit

package kvstore_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"storefront-cart/internal/infra"
	"storefront-cart/internal/infra/kvstore"
	"storefront-cart/internal/pkg/clock"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errConnectionLost = errors.New("connection lost")

func newPostgresStore(t *testing.T) (*kvstore.Postgres, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return kvstore.NewPostgres(mock, clock.NewMockClock(now), discardLogger()), mock
}

func TestPostgres_Get(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT value FROM kv_entries WHERE key = $1`)

	testCases := []struct {
		name       string
		setupMock  func(pgxmock.PgxPoolIface)
		want       string
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: entry found",
			setupMock: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(query).WithArgs("cart-storage:s1").
					WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow([]byte(`{"version":0}`)))
			},
			want: `{"version":0}`,
		},
		{
			name: "error: no rows maps to not found",
			setupMock: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(query).WithArgs("cart-storage:s1").WillReturnError(pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: connection failure maps to db failure",
			setupMock: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(query).WithArgs("cart-storage:s1").WillReturnError(errConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, mock := newPostgresStore(t)
			tc.setupMock(mock)

			got, err := store.Get(ctx, "cart-storage:s1")

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "kind: %v", err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.want, string(got))
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgres_Put(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO kv_entries (key, value, updated_at) VALUES ($1, $2, $3)`)

	t.Run("success: upsert", func(t *testing.T) {
		store, mock := newPostgresStore(t)
		mock.ExpectExec(query).
			WithArgs("cart-storage:s1", []byte(`{}`), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		require.NoError(t, store.Put(ctx, "cart-storage:s1", []byte(`{}`)))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: unique violation is classified", func(t *testing.T) {
		store, mock := newPostgresStore(t)
		mock.ExpectExec(query).
			WithArgs("cart-storage:s1", []byte(`{}`), pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		err := store.Put(ctx, "cart-storage:s1", []byte(`{}`))
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgres_Delete(t *testing.T) {
	store, mock := newPostgresStore(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM kv_entries WHERE key = $1`)).
		WithArgs("cart-storage:s1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, store.Delete(context.Background(), "cart-storage:s1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
