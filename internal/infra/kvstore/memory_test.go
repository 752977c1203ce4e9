//go:build unit

package kvstore_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront-cart/internal/infra"
	"storefront-cart/internal/infra/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// exerciseStore runs the contract every Store implementation must satisfy.
func exerciseStore(t *testing.T, store kvstore.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("未保存のキーはNotFound", func(t *testing.T) {
		_, err := store.Get(ctx, "cart-storage:missing")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("保存と取得", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "cart-storage:a", []byte(`{"version":0}`)))

		got, err := store.Get(ctx, "cart-storage:a")
		require.NoError(t, err)
		assert.JSONEq(t, `{"version":0}`, string(got))
	})

	t.Run("上書き", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "cart-storage:b", []byte(`{"version":0,"n":1}`)))
		require.NoError(t, store.Put(ctx, "cart-storage:b", []byte(`{"version":0,"n":2}`)))

		got, err := store.Get(ctx, "cart-storage:b")
		require.NoError(t, err)
		assert.JSONEq(t, `{"version":0,"n":2}`, string(got))
	})

	t.Run("削除", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "cart-storage:c", []byte(`{}`)))
		require.NoError(t, store.Delete(ctx, "cart-storage:c"))

		_, err := store.Get(ctx, "cart-storage:c")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("存在しないキーの削除はエラーにならない", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "cart-storage:never"))
	})
}

func TestMemory(t *testing.T) {
	exerciseStore(t, kvstore.NewMemory(discardLogger()))

	t.Run("返した値を変更しても保存値は変わらない", func(t *testing.T) {
		ctx := context.Background()
		store := kvstore.NewMemory(discardLogger())
		value := []byte("abc")
		require.NoError(t, store.Put(ctx, "k", value))
		value[0] = 'x'

		got, err := store.Get(ctx, "k")
		require.NoError(t, err)
		got[1] = 'y'

		again, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "abc", string(again))
	})
}
