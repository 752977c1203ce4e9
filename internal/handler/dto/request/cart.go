package request

import (
	"storefront-cart/internal/pkg/patch"
	"storefront-cart/internal/usecase"

	"github.com/google/uuid"
)

type AddItemRequest struct {
	ProductID uuid.UUID  `json:"productId" binding:"required"`
	Quantity  *int       `json:"quantity,omitempty"`
	VariantID *uuid.UUID `json:"variantId,omitempty"`
}

// ToParams defaults a missing quantity to one.
func (r AddItemRequest) ToParams() usecase.AddItemParams {
	return usecase.AddItemParams{
		ProductID: r.ProductID,
		VariantID: r.VariantID,
		Quantity:  patch.Coalesce(r.Quantity, 1),
	}
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type ApplyDiscountRequest struct {
	Code string `json:"code" binding:"required"`
}
