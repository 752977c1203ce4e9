package cart

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"storefront-cart/internal/domain/money"
)

type PricingPolicy struct {
	TaxRate               decimal.Decimal
	FlatShipping          money.Money
	FreeShippingThreshold money.Money
}

func DefaultPricingPolicy() PricingPolicy {
	return PricingPolicy{
		TaxRate:               decimal.RequireFromString("0.08"),
		FlatShipping:          money.MustParse("9.99"),
		FreeShippingThreshold: money.MustParse("75.00"),
	}
}

var ErrNegativePricing = errors.New("pricing values must not be negative")

// Validate rejects negative tax rates, shipping costs and thresholds.
func (p PricingPolicy) Validate() error {
	switch {
	case p.TaxRate.IsNegative():
		return fmt.Errorf("%w: tax rate %s", ErrNegativePricing, p.TaxRate)
	case p.FlatShipping.IsNegative():
		return fmt.Errorf("%w: flat shipping %s", ErrNegativePricing, p.FlatShipping)
	case p.FreeShippingThreshold.IsNegative():
		return fmt.Errorf("%w: free shipping threshold %s", ErrNegativePricing, p.FreeShippingThreshold)
	}
	return nil
}

// Calculate recomputes every total from scratch. Tax applies to the subtotal
// only, and the total never goes below zero.
func (p PricingPolicy) Calculate(items []LineItem, ds *DiscountState) Totals {
	subtotal := money.Zero()
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}

	shipping := p.FlatShipping
	if subtotal.GreaterThanOrEqual(p.FreeShippingThreshold) {
		shipping = money.Zero()
	}

	tax := subtotal.MulRate(p.TaxRate)

	discountAmount := money.Zero()
	if ds != nil {
		discountAmount = ds.Amount
	}

	total := subtotal.Add(shipping).Add(tax).Sub(discountAmount).ClampZero()

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    total,
	}
}

// FreeShippingRemaining is how much more the customer must add to qualify.
func (p PricingPolicy) FreeShippingRemaining(subtotal money.Money) money.Money {
	return p.FreeShippingThreshold.Sub(subtotal).ClampZero()
}
