package cart

import (
	"github.com/google/uuid"

	"storefront-cart/internal/domain/catalog"
	"storefront-cart/internal/domain/discount"
	"storefront-cart/internal/domain/money"
)

type Quantity int

func (q Quantity) IsPositive() bool {
	return q > 0
}

type LineItem struct {
	id       uuid.UUID
	product  catalog.Product
	quantity Quantity
	variant  *catalog.Variant
}

// NewLineItem rebuilds a stored line item. Carts create their own through AddItem.
func NewLineItem(id uuid.UUID, product catalog.Product, quantity Quantity, variant *catalog.Variant) (LineItem, error) {
	if !quantity.IsPositive() {
		return LineItem{}, ErrNonPositiveQuantity
	}
	var v *catalog.Variant
	if variant != nil {
		cp := *variant
		v = &cp
	}
	return LineItem{id: id, product: product, quantity: quantity, variant: v}, nil
}

func (li LineItem) ID() uuid.UUID            { return li.id }
func (li LineItem) Product() catalog.Product { return li.product }
func (li LineItem) Quantity() Quantity       { return li.quantity }

func (li LineItem) Variant() *catalog.Variant {
	if li.variant == nil {
		return nil
	}
	v := *li.variant
	return &v
}

// UnitPrice is the product price plus the variant modifier, never below zero.
func (li LineItem) UnitPrice() money.Money {
	price := li.product.Price()
	if li.variant != nil {
		price = price.Add(li.variant.PriceModifier())
	}
	return price.ClampZero()
}

func (li LineItem) LineTotal() money.Money {
	return li.UnitPrice().Times(int(li.quantity))
}

func (li LineItem) matches(productID uuid.UUID, variant *catalog.Variant) bool {
	if li.product.ID() != productID {
		return false
	}
	if li.variant == nil || variant == nil {
		return li.variant == nil && variant == nil
	}
	return li.variant.ID() == variant.ID()
}

// DiscountState is the code accepted by ApplyDiscount and the amount computed
// at that moment. The amount is not rescaled when the subtotal changes later.
type DiscountState struct {
	Code   discount.Code
	Amount money.Money
}

type Totals struct {
	Subtotal money.Money
	Shipping money.Money
	Tax      money.Money
	Total    money.Money
}

func ZeroTotals() Totals {
	return Totals{
		Subtotal: money.Zero(),
		Shipping: money.Zero(),
		Tax:      money.Zero(),
		Total:    money.Zero(),
	}
}
