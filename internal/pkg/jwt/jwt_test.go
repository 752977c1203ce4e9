//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"storefront-cart/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)

	t.Run("発行したトークンを検証できる", func(t *testing.T) {
		token, err := svc.GenerateToken("user-1", jwt.KindUser, "cart-1")
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.Subject)
		assert.Equal(t, string(jwt.KindUser), claims.Kind)
		assert.Equal(t, "cart-1", claims.CartKey)
	})

	t.Run("別の鍵で署名されたトークンは無効", func(t *testing.T) {
		other := jwt.NewService("other-secret", time.Hour)
		token, err := other.GenerateToken("guest-1", jwt.KindGuest, "cart-1")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("期限切れ", func(t *testing.T) {
		expired := jwt.NewService("test-secret", -time.Minute)
		token, err := expired.GenerateToken("guest-1", jwt.KindGuest, "cart-1")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("不正な種別は発行しない", func(t *testing.T) {
		_, err := svc.GenerateToken("x", jwt.SessionKind("admin"), "cart-1")
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("壊れたトークン", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
