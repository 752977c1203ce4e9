package api

import (
	"errors"
	"net/http"

	reqdto "storefront-cart/internal/handler/dto/request"
	resdto "storefront-cart/internal/handler/dto/response"
	"storefront-cart/internal/handler/httperr"
	"storefront-cart/internal/handler/middleware"
	"storefront-cart/internal/pkg/errs"
	"storefront-cart/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errNoSession = errors.New("session missing from context")

type CartHandler struct {
	cartUseCase usecase.CartUseCase
}

func NewCartHandler(cartUseCase usecase.CartUseCase) *CartHandler {
	return &CartHandler{cartUseCase: cartUseCase}
}

// @Summary Get cart
// @Description Current cart snapshot of the session
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Failure 401 {object} httperr.Response
// @Router /api/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	cartKey, ok := cartKeyFrom(c)
	if !ok {
		return
	}
	snapshot, err := h.cartUseCase.GetCart(c.Request.Context(), cartKey)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCart(snapshot))
}

// @Summary Add item
// @Description Add a product to the cart. Quantity defaults to 1; a non-positive quantity changes nothing.
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddItemRequest true "Item to add"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	cartKey, ok := cartKeyFrom(c)
	if !ok {
		return
	}
	var req reqdto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	snapshot, err := h.cartUseCase.AddItem(c.Request.Context(), cartKey, req.ToParams())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCart(snapshot))
}

// @Summary Update quantity
// @Description Replace the quantity of a line item. Zero or less removes it.
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Line item ID"
// @Param request body reqdto.UpdateQuantityRequest true "New quantity"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/cart/items/{id} [patch]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	cartKey, ok := cartKeyFrom(c)
	if !ok {
		return
	}
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return
	}
	var req reqdto.UpdateQuantityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}
	snapshot, err := h.cartUseCase.UpdateQuantity(c.Request.Context(), cartKey, itemID, *req.Quantity)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCart(snapshot))
}

// @Summary Remove item
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param id path string true "Line item ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cartKey, ok := cartKeyFrom(c)
	if !ok {
		return
	}
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return
	}
	snapshot, err := h.cartUseCase.RemoveItem(c.Request.Context(), cartKey, itemID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCart(snapshot))
}

// @Summary Clear cart
// @Description Drop every item and the discount; the cart gets a new ID
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Failure 401 {object} httperr.Response
// @Router /api/cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	cartKey, ok := cartKeyFrom(c)
	if !ok {
		return
	}
	snapshot, err := h.cartUseCase.ClearCart(c.Request.Context(), cartKey)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCart(snapshot))
}

// @Summary Apply discount
// @Description Apply SAVE10, WELCOME20 or FREESHIP. The amount is fixed at apply time.
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ApplyDiscountRequest true "Discount code"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/cart/discount [post]
func (h *CartHandler) ApplyDiscount(c *gin.Context) {
	cartKey, ok := cartKeyFrom(c)
	if !ok {
		return
	}
	var req reqdto.ApplyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	snapshot, err := h.cartUseCase.ApplyDiscount(c.Request.Context(), cartKey, req.Code)
	if err != nil {
		if errs.Is(err, errs.ErrInvalidDiscountCode) && snapshot != nil {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid discount code", resdto.FromCart(snapshot))
			return
		}
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCart(snapshot))
}

func cartKeyFrom(c *gin.Context) (string, bool) {
	session, ok := middleware.GetSession(c)
	if !ok {
		// Unexpected error: route registered without RequireSession()
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoSession, "Internal server error", nil)
		return "", false
	}
	return session.CartKey, true
}
