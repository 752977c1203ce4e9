package cart

import (
	"errors"

	"github.com/google/uuid"

	"storefront-cart/internal/domain/catalog"
	"storefront-cart/internal/domain/discount"
	"storefront-cart/internal/domain/money"
)

var (
	ErrNonPositiveQuantity = errors.New("line item quantity must be at least 1")
	ErrDuplicateLineItem   = errors.New("duplicate line item id")
)

type DiscountResolver interface {
	Resolve(raw string, subtotal, shipping money.Money) (discount.Code, money.Money, bool)
}

// Cart exclusively owns its line items. Every mutation recomputes the totals
// before returning, so the cached snapshot always matches the items.
type Cart struct {
	id       uuid.UUID
	items    []LineItem
	totals   Totals
	discount *DiscountState
	policy   PricingPolicy
}

// New returns an empty cart with a fresh id and the all-zero snapshot.
func New(policy PricingPolicy) *Cart {
	return &Cart{
		id:     uuid.New(),
		items:  []LineItem{},
		totals: ZeroTotals(),
		policy: policy,
	}
}

// Reconstruct restores a stored cart. Stored prices, quantities and the frozen
// discount amount are trusted; the totals are recomputed with policy so a
// changed tax rate or shipping rule applies right away. A stored cart that is
// empty with a zero total keeps the all-zero snapshot of a new cart.
func Reconstruct(id uuid.UUID, items []LineItem, totals Totals, ds *DiscountState, policy PricingPolicy) (*Cart, error) {
	seen := make(map[uuid.UUID]struct{}, len(items))
	for _, item := range items {
		if !item.quantity.IsPositive() {
			return nil, ErrNonPositiveQuantity
		}
		if _, dup := seen[item.id]; dup {
			return nil, ErrDuplicateLineItem
		}
		seen[item.id] = struct{}{}
	}
	c := &Cart{
		id:     id,
		items:  append([]LineItem{}, items...),
		totals: ZeroTotals(),
		policy: policy,
	}
	if ds != nil {
		d := *ds
		c.discount = &d
	}
	if len(items) > 0 || !totals.Total.IsZero() {
		c.recalculate()
	}
	return c, nil
}

func (c *Cart) ID() uuid.UUID         { return c.id }
func (c *Cart) Totals() Totals        { return c.totals }
func (c *Cart) Policy() PricingPolicy { return c.policy }

func (c *Cart) Items() []LineItem {
	return append([]LineItem{}, c.items...)
}

func (c *Cart) Discount() *DiscountState {
	if c.discount == nil {
		return nil
	}
	d := *c.discount
	return &d
}

// ItemCount is the sum of all line quantities.
func (c *Cart) ItemCount() int {
	n := 0
	for _, item := range c.items {
		n += int(item.quantity)
	}
	return n
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) FreeShippingRemaining() money.Money {
	return c.policy.FreeShippingRemaining(c.totals.Subtotal)
}

// AddItem merges into an existing line with the same product and variant, or
// appends a new line. Non-positive quantities are ignored.
func (c *Cart) AddItem(product catalog.Product, quantity Quantity, variant *catalog.Variant) {
	if !quantity.IsPositive() {
		return
	}

	merged := false
	for i := range c.items {
		if c.items[i].matches(product.ID(), variant) {
			c.items[i].quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		var v *catalog.Variant
		if variant != nil {
			cp := *variant
			v = &cp
		}
		c.items = append(c.items, LineItem{
			id:       uuid.New(),
			product:  product,
			quantity: quantity,
			variant:  v,
		})
	}
	c.recalculate()
}

func (c *Cart) RemoveItem(itemID uuid.UUID) {
	kept := c.items[:0:0]
	for _, item := range c.items {
		if item.id != itemID {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.recalculate()
}

// UpdateQuantity sets the quantity of a line. Zero or less removes it.
func (c *Cart) UpdateQuantity(itemID uuid.UUID, quantity Quantity) {
	if !quantity.IsPositive() {
		c.RemoveItem(itemID)
		return
	}
	for i := range c.items {
		if c.items[i].id == itemID {
			c.items[i].quantity = quantity
			break
		}
	}
	c.recalculate()
}

// ApplyDiscount resolves code against the current subtotal and shipping. On
// rejection the existing discount is left untouched.
func (c *Cart) ApplyDiscount(resolver DiscountResolver, code string) bool {
	canonical, amount, ok := resolver.Resolve(code, c.totals.Subtotal, c.totals.Shipping)
	if !ok {
		return false
	}
	c.discount = &DiscountState{Code: canonical, Amount: amount}
	c.recalculate()
	return true
}

// Clear empties the cart, drops the discount and assigns a new id.
func (c *Cart) Clear() {
	c.id = uuid.New()
	c.items = []LineItem{}
	c.discount = nil
	c.totals = ZeroTotals()
}

// Clone returns a deep copy that shares no mutable state with c.
func (c *Cart) Clone() *Cart {
	cp := &Cart{
		id:     c.id,
		items:  make([]LineItem, len(c.items)),
		totals: c.totals,
		policy: c.policy,
	}
	for i, item := range c.items {
		cp.items[i] = item
		cp.items[i].variant = item.Variant()
	}
	cp.discount = c.Discount()
	return cp
}

func (c *Cart) recalculate() {
	c.totals = c.policy.Calculate(c.items, c.discount)
}
