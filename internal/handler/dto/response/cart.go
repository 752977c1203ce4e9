package response

import (
	"storefront-cart/internal/domain/cart"
	"storefront-cart/internal/pkg/patch"

	"github.com/google/uuid"
)

type LineItemResponse struct {
	ID        uuid.UUID        `json:"id"`
	Product   ProductResponse  `json:"product"`
	Quantity  int              `json:"quantity"`
	Variant   *VariantResponse `json:"selectedVariant,omitempty"`
	UnitPrice string           `json:"unitPrice"`
	LineTotal string           `json:"lineTotal"`
}

// CartResponse renders every amount with two decimals.
type CartResponse struct {
	ID                    uuid.UUID          `json:"id"`
	Items                 []LineItemResponse `json:"items"`
	Subtotal              string             `json:"subtotal"`
	Tax                   string             `json:"tax"`
	Shipping              string             `json:"shipping"`
	Total                 string             `json:"total"`
	DiscountCode          *string            `json:"discountCode,omitempty"`
	DiscountAmount        *string            `json:"discountAmount,omitempty"`
	ItemCount             int                `json:"itemCount"`
	FreeShippingRemaining string             `json:"freeShippingRemaining"`
}

func FromCart(c *cart.Cart) CartResponse {
	totals := c.Totals()
	items := c.Items()

	res := CartResponse{
		ID:                    c.ID(),
		Items:                 make([]LineItemResponse, len(items)),
		Subtotal:              totals.Subtotal.String(),
		Tax:                   totals.Tax.String(),
		Shipping:              totals.Shipping.String(),
		Total:                 totals.Total.String(),
		ItemCount:             c.ItemCount(),
		FreeShippingRemaining: c.FreeShippingRemaining().String(),
	}
	for i, item := range items {
		res.Items[i] = fromLineItem(item)
	}
	if ds := c.Discount(); ds != nil {
		res.DiscountCode = patch.Ptr(ds.Code.String())
		res.DiscountAmount = patch.Ptr(ds.Amount.String())
	}
	return res
}

func fromLineItem(item cart.LineItem) LineItemResponse {
	res := LineItemResponse{
		ID:        item.ID(),
		Product:   FromProduct(item.Product()),
		Quantity:  int(item.Quantity()),
		UnitPrice: item.UnitPrice().String(),
		LineTotal: item.LineTotal().String(),
	}
	if v := item.Variant(); v != nil {
		vr := FromVariant(*v)
		res.Variant = &vr
	}
	return res
}
