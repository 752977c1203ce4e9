//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"storefront-cart/internal/domain/cart"
	"storefront-cart/internal/domain/discount"
	"storefront-cart/internal/handler/api"
	resdto "storefront-cart/internal/handler/dto/response"
	"storefront-cart/internal/handler/middleware"
	"storefront-cart/internal/pkg/errs"
	"storefront-cart/internal/pkg/jwt"
	"storefront-cart/internal/usecase"
	"storefront-cart/tests/common/builder"
	"storefront-cart/tests/common/httptest"
	usecasemock "storefront-cart/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCart      *usecasemock.MockCartUseCase
	mockValidator *usecasemock.MockTokenValidator
}

const cartKey = "cart-key-1"

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCart = usecasemock.NewMockCartUseCase(s.mockCtrl)
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	s.mockValidator.EXPECT().ValidateToken(guestToken).
		Return(usecase.Session{Subject: uuid.NewString(), Kind: jwt.KindGuest, CartKey: cartKey}, nil).AnyTimes()

	h := api.NewCartHandler(s.mockCart)
	group := s.router.Group("/cart", middleware.NewAuthMiddleware(s.mockValidator).RequireSession())
	group.GET("", h.GetCart)
	group.DELETE("", h.ClearCart)
	group.POST("/items", h.AddItem)
	group.PATCH("/items/:id", h.UpdateQuantity)
	group.DELETE("/items/:id", h.RemoveItem)
	group.POST("/discount", h.ApplyDiscount)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

// 2 x 45.00 (40.00 + XL 5.00) with SAVE10
func sampleCart(s *CartHandlerTestSuite) *cart.Cart {
	product := builder.NewProductBuilder().WithPrice("40.00").WithVariant("Size", "XL", "5.00").MustBuild()
	variant := product.Variants()[0]
	c := cart.New(cart.DefaultPricingPolicy())
	c.AddItem(product, 2, &variant)
	s.Require().True(c.ApplyDiscount(discount.NewDefaultResolver(), "save10"))
	return c
}

func (s *CartHandlerTestSuite) TestGetCart() {
	s.Run("success: renders amounts with two decimals", func() {
		s.mockCart.EXPECT().GetCart(gomock.Any(), cartKey).Return(sampleCart(s), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, guestToken)

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Items, 1)
		s.Equal("45.00", response.Items[0].UnitPrice)
		s.Equal("90.00", response.Items[0].LineTotal)
		s.Require().NotNil(response.Items[0].Variant)
		s.Equal("XL", response.Items[0].Variant.Value)
		s.Equal("90.00", response.Subtotal)
		s.Equal("0.00", response.Shipping)
		s.Equal("7.20", response.Tax)
		s.Equal("88.20", response.Total)
		s.Equal("SAVE10", *response.DiscountCode)
		s.Equal("9.00", *response.DiscountAmount)
		s.Equal(2, response.ItemCount)
		s.Equal("0.00", response.FreeShippingRemaining)
	})

	s.Run("success: an empty cart has no discount fields", func() {
		s.mockCart.EXPECT().GetCart(gomock.Any(), cartKey).Return(cart.New(cart.DefaultPricingPolicy()), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, guestToken)

		var raw map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &raw)
		s.NotContains(raw, "discountCode")
		s.Equal("0.00", raw["total"])
		s.Equal("75.00", raw["freeShippingRemaining"])
		s.Equal([]any{}, raw["items"])
	})

	s.Run("error: 401 without a session", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}

func (s *CartHandlerTestSuite) TestAddItem() {
	productID := uuid.New()

	s.Run("success: quantity defaults to one", func() {
		s.mockCart.EXPECT().AddItem(gomock.Any(), cartKey, usecase.AddItemParams{ProductID: productID, Quantity: 1}).
			Return(cart.New(cart.DefaultPricingPolicy()), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/items", map[string]any{"productId": productID}, guestToken)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: variant and quantity are passed through", func() {
		variantID := uuid.New()
		s.mockCart.EXPECT().AddItem(gomock.Any(), cartKey, usecase.AddItemParams{ProductID: productID, VariantID: &variantID, Quantity: 3}).
			Return(cart.New(cart.DefaultPricingPolicy()), nil)

		body := map[string]any{"productId": productID, "variantId": variantID, "quantity": 3}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/items", body, guestToken)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: maps usecase errors", func() {
		testCases := []struct {
			name         string
			err          error
			expectCode   int
			expectInBody string
		}{
			{name: "unknown product", err: errs.ErrProductNotFound, expectCode: http.StatusNotFound, expectInBody: "Product not found"},
			{name: "unknown variant", err: errs.ErrVariantNotFound, expectCode: http.StatusNotFound, expectInBody: "Variant not found"},
			{name: "catalog down", err: errs.Mark(errs.New("timeout"), errs.ErrCatalogUnavailable), expectCode: http.StatusServiceUnavailable, expectInBody: "Catalog temporarily unavailable"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCart.EXPECT().AddItem(gomock.Any(), cartKey, gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/items", map[string]any{"productId": productID}, guestToken)

				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
			})
		}
	})

	s.Run("error: 400 on a malformed product id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/items", map[string]any{"productId": "nope"}, guestToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *CartHandlerTestSuite) TestItemRoutes() {
	itemID := uuid.New()

	s.Run("PATCH: forwards the quantity, zero included", func() {
		s.mockCart.EXPECT().UpdateQuantity(gomock.Any(), cartKey, itemID, 0).Return(cart.New(cart.DefaultPricingPolicy()), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/cart/items/"+itemID.String(), map[string]any{"quantity": 0}, guestToken)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("PATCH: quantity is required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/cart/items/"+itemID.String(), map[string]any{}, guestToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("DELETE: removes the item", func() {
		s.mockCart.EXPECT().RemoveItem(gomock.Any(), cartKey, itemID).Return(cart.New(cart.DefaultPricingPolicy()), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/items/"+itemID.String(), nil, guestToken)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on a malformed item id", func() {
		for _, method := range []string{http.MethodPatch, http.MethodDelete} {
			rec := httptest.PerformRequest(s.T(), s.router, method, "/cart/items/not-a-uuid", map[string]any{"quantity": 1}, guestToken)

			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid item ID format")
		}
	})

	s.Run("DELETE /cart: clears", func() {
		s.mockCart.EXPECT().ClearCart(gomock.Any(), cartKey).Return(cart.New(cart.DefaultPricingPolicy()), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart", nil, guestToken)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *CartHandlerTestSuite) TestApplyDiscount() {
	s.Run("success: returns the discounted snapshot", func() {
		s.mockCart.EXPECT().ApplyDiscount(gomock.Any(), cartKey, "save10").Return(sampleCart(s), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/discount", map[string]any{"code": "save10"}, guestToken)

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("SAVE10", *response.DiscountCode)
	})

	s.Run("error: 422 with the unchanged cart as detail", func() {
		unchanged := cart.New(cart.DefaultPricingPolicy())
		s.mockCart.EXPECT().ApplyDiscount(gomock.Any(), cartKey, "BOGUS").Return(unchanged, errs.ErrInvalidDiscountCode)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/discount", map[string]any{"code": "BOGUS"}, guestToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid discount code")
		var body struct {
			Detail resdto.CartResponse `json:"detail"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(unchanged.ID(), body.Detail.ID)
		s.Nil(body.Detail.DiscountCode)
	})

	s.Run("error: 400 when the code is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/discount", map[string]any{}, guestToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
