package api

import (
	"log/slog"
	"net/http"

	"storefront-cart/internal/handler/httperr"
	"storefront-cart/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// checked in order; marked errors are matched through errs.Is
var useCaseErrors = []errorMapping{
	{errs.ErrProductNotFound, http.StatusNotFound, "Product not found"},
	{errs.ErrVariantNotFound, http.StatusNotFound, "Variant not found"},
	{errs.ErrInvalidDiscountCode, http.StatusUnprocessableEntity, "Invalid discount code"},
	{errs.ErrEmailAlreadyExists, http.StatusConflict, "Email already registered"},
	{errs.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{errs.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{errs.ErrDomainValidation, http.StatusBadRequest, "Invalid request data"},
	{errs.ErrCatalogUnavailable, http.StatusServiceUnavailable, "Catalog temporarily unavailable"},
}

func abortWithUseCaseError(c *gin.Context, err error) {
	for _, m := range useCaseErrors {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}
	slog.ErrorContext(c.Request.Context(), "Unhandled use case error",
		slog.String("error", err.Error()),
		slog.Any("stack", errs.ExtractStackLines(err, 5)))
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
