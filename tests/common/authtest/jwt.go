//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"storefront-cart/internal/pkg/config"
	"storefront-cart/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

// GuestToken issues an anonymous session token whose cart key is cartKey.
func (h *JWTHelper) GuestToken(t *testing.T, cartKey string) string {
	t.Helper()
	return h.generate(t, h.cfg.Duration, uuid.NewString(), jwt.KindGuest, cartKey)
}

func (h *JWTHelper) UserToken(t *testing.T, userID uuid.UUID, cartKey string) string {
	t.Helper()
	return h.generate(t, h.cfg.Duration, userID.String(), jwt.KindUser, cartKey)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, cartKey string) string {
	t.Helper()
	token := h.generate(t, time.Millisecond, uuid.NewString(), jwt.KindGuest, cartKey)
	time.Sleep(10 * time.Millisecond)
	return token
}

func (h *JWTHelper) generate(t *testing.T, duration time.Duration, subject string, kind jwt.SessionKind, cartKey string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(subject, kind, cartKey)
	require.NoError(t, err)
	return token
}
