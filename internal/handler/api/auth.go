package api

import (
	"errors"
	"net/http"

	reqdto "storefront-cart/internal/handler/dto/request"
	resdto "storefront-cart/internal/handler/dto/response"
	"storefront-cart/internal/handler/httperr"
	"storefront-cart/internal/handler/middleware"
	"storefront-cart/internal/pkg/config"
	"storefront-cart/internal/pkg/cookie"
	"storefront-cart/internal/usecase"

	"github.com/gin-gonic/gin"
)

var errNotAuthenticated = errors.New("user not authenticated")

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	cfg         config.Config
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cfg:         cfg,
	}
}

// @Summary Guest session
// @Description Issue an anonymous session token. An existing session keeps its cart.
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.AuthResponse
// @Router /api/auth/guest [post]
func (h *AuthHandler) Guest(c *gin.Context) {
	result, err := h.authUseCase.GuestSession(c.Request.Context(), currentCartKey(c))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondWithSession(c, result)
}

// @Summary Register
// @Description Create an account and log in. The current cart carries over.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}

	result, err := h.authUseCase.Register(c.Request.Context(), params, currentCartKey(c))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	cookie.SetAccessToken(c, h.cfg.Cookie, result.Token, h.cfg.JWT.Duration)
	c.JSON(http.StatusCreated, resdto.FromAuthResult(result))
}

// @Summary User login
// @Description Login with email and password. The current cart carries over.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), credentials, currentCartKey(c))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondWithSession(c, result)
}

// @Summary Logout
// @Description Clear the session cookie
// @Tags auth
// @Success 204 "No Content"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Tokens are stateless; the client drops its bearer token.
	cookie.ClearAccessToken(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNotAuthenticated, "User not authenticated", nil)
		return
	}

	user, err := h.authUseCase.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(user))
}

func (h *AuthHandler) respondWithSession(c *gin.Context, result *usecase.AuthResult) {
	cookie.SetAccessToken(c, h.cfg.Cookie, result.Token, h.cfg.JWT.Duration)
	c.JSON(http.StatusOK, resdto.FromAuthResult(result))
}

// currentCartKey is empty unless OptionalSession found a valid token.
func currentCartKey(c *gin.Context) string {
	if session, ok := middleware.GetSession(c); ok {
		return session.CartKey
	}
	return ""
}
