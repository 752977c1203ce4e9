//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"storefront-cart/internal/handler/dto/request"
	"storefront-cart/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	guestURL    = "/api/auth/guest"
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
)

// StartGuestSession asks the API for an anonymous session and returns its token.
func StartGuestSession(t *testing.T, router *gin.Engine) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, guestURL, nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return accessTokenFrom(t, w.Result().Cookies())
}

// RegisterUser registers through the API. A non-empty sessionToken carries the
// caller's cart over to the new account.
func RegisterUser(t *testing.T, router *gin.Engine, req request.RegisterRequest, sessionToken string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, registerURL, req, sessionToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return accessTokenFrom(t, w.Result().Cookies())
}

func LoginUser(t *testing.T, router *gin.Engine, email, password, sessionToken string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, loginURL,
		request.LoginRequest{Email: email, Password: password}, sessionToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return accessTokenFrom(t, w.Result().Cookies())
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, logoutURL, nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}

func accessTokenFrom(t *testing.T, cookies []*http.Cookie) string {
	t.Helper()
	for _, c := range cookies {
		if c.Name == "access_token" && c.Value != "" {
			return c.Value
		}
	}
	require.FailNow(t, "Access token not found in cookies")
	return ""
}
