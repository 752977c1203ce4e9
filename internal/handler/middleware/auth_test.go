//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"storefront-cart/internal/handler/middleware"
	"storefront-cart/internal/pkg/cookie"
	"storefront-cart/internal/pkg/jwt"
	"storefront-cart/internal/usecase"
	"storefront-cart/tests/common/httptest"
	usecasemock "storefront-cart/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T, validator usecase.TokenValidator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())

	mw := middleware.NewAuthMiddleware(validator)
	echo := func(c *gin.Context) {
		session, ok := middleware.GetSession(c)
		_, isUser := middleware.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"present": ok, "cartKey": session.CartKey, "user": isUser})
	}
	r.GET("/session", mw.RequireSession(), echo)
	r.GET("/user", mw.RequireSession(), mw.RequireUser(), echo)
	r.GET("/optional", mw.OptionalSession(), echo)
	return r
}

type echoBody struct {
	Present bool   `json:"present"`
	CartKey string `json:"cartKey"`
	User    bool   `json:"user"`
}

func TestAuthMiddleware(t *testing.T) {
	guest := usecase.Session{Subject: uuid.NewString(), Kind: jwt.KindGuest, CartKey: "g-cart"}
	member := usecase.Session{Subject: uuid.NewString(), Kind: jwt.KindUser, CartKey: "u-cart"}

	t.Run("Bearerトークンでセッションを設定する", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)
		validator.EXPECT().ValidateToken("tok").Return(guest, nil)

		rec := httptest.PerformRequest(t, newRouter(t, validator), http.MethodGet, "/session", nil, "tok")

		var body echoBody
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.True(t, body.Present)
		assert.Equal(t, "g-cart", body.CartKey)
		assert.False(t, body.User)
	})

	t.Run("Cookieのトークンも受け付ける", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)
		validator.EXPECT().ValidateToken("cookie-tok").Return(member, nil)

		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "cookie-tok"}}
		rec := httptest.PerformRequestWithCookies(t, newRouter(t, validator), http.MethodGet, "/user", nil, cookies, "")

		var body echoBody
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.True(t, body.User)
	})

	t.Run("ヘッダーがCookieより優先される", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)
		validator.EXPECT().ValidateToken("header-tok").Return(member, nil)

		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "cookie-tok"}}
		rec := httptest.PerformRequestWithCookies(t, newRouter(t, validator), http.MethodGet, "/session", nil, cookies, "header-tok")

		var body echoBody
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "u-cart", body.CartKey)
	})

	t.Run("無効なトークンは401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)
		validator.EXPECT().ValidateToken("bad").Return(usecase.Session{}, jwt.ErrInvalidToken)

		rec := httptest.PerformRequest(t, newRouter(t, validator), http.MethodGet, "/session", nil, "bad")

		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("ゲストは会員専用ルートで401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)
		validator.EXPECT().ValidateToken("tok").Return(guest, nil)

		rec := httptest.PerformRequest(t, newRouter(t, validator), http.MethodGet, "/user", nil, "tok")

		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Login required")
	})

	t.Run("任意認証は失敗しても続行する", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)
		validator.EXPECT().ValidateToken("expired").Return(usecase.Session{}, errors.New("expired"))

		router := newRouter(t, validator)
		withBad := httptest.PerformRequest(t, router, http.MethodGet, "/optional", nil, "expired")
		without := httptest.PerformRequest(t, router, http.MethodGet, "/optional", nil, "")

		require.Equal(t, http.StatusOK, without.Code)
		var body echoBody
		httptest.AssertSuccessResponse(t, withBad, http.StatusOK, &body)
		assert.False(t, body.Present)
	})
}
