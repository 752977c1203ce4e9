package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"storefront-cart/internal/domain/cart"
	"storefront-cart/internal/domain/catalog"
	"storefront-cart/internal/domain/discount"
	"storefront-cart/internal/domain/money"

	"github.com/google/uuid"
)

// EnvelopeVersion is bumped when the persisted layout changes.
const EnvelopeVersion = 0

// CartEnvelope is the persisted form: {"state":{"cart":{...}},"version":0}.
// Only the cart is stored; amounts are decimal strings.
type CartEnvelope struct {
	State   CartState `json:"state"`
	Version int       `json:"version"`
}

type CartState struct {
	Cart CartRecord `json:"cart"`
}

type CartRecord struct {
	ID             string           `json:"id"`
	Items          []LineItemRecord `json:"items"`
	Subtotal       string           `json:"subtotal"`
	Tax            string           `json:"tax"`
	Shipping       string           `json:"shipping"`
	Total          string           `json:"total"`
	DiscountCode   *string          `json:"discountCode,omitempty"`
	DiscountAmount *string          `json:"discountAmount,omitempty"`
}

type LineItemRecord struct {
	ID              string         `json:"id"`
	Product         ProductRecord  `json:"product"`
	Quantity        int            `json:"quantity"`
	SelectedVariant *VariantRecord `json:"selectedVariant,omitempty"`
}

type ProductRecord struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         string          `json:"price"`
	OriginalPrice *string         `json:"originalPrice,omitempty"`
	Category      CategoryRecord  `json:"category"`
	Brand         string          `json:"brand"`
	Stock         int             `json:"stock"`
	Rating        float64         `json:"rating"`
	ReviewCount   int             `json:"reviewCount"`
	Tags          []string        `json:"tags"`
	Variants      []VariantRecord `json:"variants,omitempty"`
	IsOnSale      bool            `json:"isOnSale"`
	IsFeatured    bool            `json:"isFeatured"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type CategoryRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type VariantRecord struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Value         string `json:"value"`
	PriceModifier string `json:"priceModifier"`
}

func MarshalCart(c *cart.Cart) ([]byte, error) {
	return json.Marshal(CartToEnvelope(c))
}

func UnmarshalCart(data []byte, policy cart.PricingPolicy) (*cart.Cart, error) {
	var env CartEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode cart envelope: %w", err)
	}
	if env.Version != EnvelopeVersion {
		return nil, fmt.Errorf("unsupported cart envelope version %d", env.Version)
	}
	return CartFromRecord(env.State.Cart, policy)
}

func CartToEnvelope(c *cart.Cart) CartEnvelope {
	totals := c.Totals()
	rec := CartRecord{
		ID:       c.ID().String(),
		Items:    make([]LineItemRecord, 0, len(c.Items())),
		Subtotal: totals.Subtotal.String(),
		Tax:      totals.Tax.String(),
		Shipping: totals.Shipping.String(),
		Total:    totals.Total.String(),
	}
	for _, item := range c.Items() {
		rec.Items = append(rec.Items, lineItemToRecord(item))
	}
	if ds := c.Discount(); ds != nil {
		code := ds.Code.String()
		amount := ds.Amount.String()
		rec.DiscountCode = &code
		rec.DiscountAmount = &amount
	}
	return CartEnvelope{State: CartState{Cart: rec}, Version: EnvelopeVersion}
}

func CartFromRecord(rec CartRecord, policy cart.PricingPolicy) (*cart.Cart, error) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid cart id: %w", err)
	}

	items := make([]cart.LineItem, 0, len(rec.Items))
	for _, r := range rec.Items {
		item, err := lineItemFromRecord(r)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	var totals cart.Totals
	for _, f := range []struct {
		dst *money.Money
		src string
	}{
		{&totals.Subtotal, rec.Subtotal},
		{&totals.Tax, rec.Tax},
		{&totals.Shipping, rec.Shipping},
		{&totals.Total, rec.Total},
	} {
		if *f.dst, err = money.Parse(f.src); err != nil {
			return nil, err
		}
	}

	var ds *cart.DiscountState
	if rec.DiscountCode != nil && rec.DiscountAmount != nil {
		amount, err := money.Parse(*rec.DiscountAmount)
		if err != nil {
			return nil, err
		}
		ds = &cart.DiscountState{Code: discount.Code(*rec.DiscountCode), Amount: amount}
	}

	return cart.Reconstruct(id, items, totals, ds, policy)
}

func lineItemToRecord(item cart.LineItem) LineItemRecord {
	rec := LineItemRecord{
		ID:       item.ID().String(),
		Product:  ProductToRecord(item.Product()),
		Quantity: int(item.Quantity()),
	}
	if v := item.Variant(); v != nil {
		vr := variantToRecord(*v)
		rec.SelectedVariant = &vr
	}
	return rec
}

func lineItemFromRecord(rec LineItemRecord) (cart.LineItem, error) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return cart.LineItem{}, fmt.Errorf("invalid line item id: %w", err)
	}
	product, err := ProductFromRecord(rec.Product)
	if err != nil {
		return cart.LineItem{}, err
	}
	var variant *catalog.Variant
	if rec.SelectedVariant != nil {
		v, err := variantFromRecord(*rec.SelectedVariant)
		if err != nil {
			return cart.LineItem{}, err
		}
		variant = &v
	}
	return cart.NewLineItem(id, product, cart.Quantity(rec.Quantity), variant)
}

func ProductToRecord(p catalog.Product) ProductRecord {
	rec := ProductRecord{
		ID:          p.ID().String(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price().String(),
		Category: CategoryRecord{
			ID:   p.Category().ID.String(),
			Name: p.Category().Name,
			Slug: p.Category().Slug,
		},
		Brand:       p.Brand(),
		Stock:       p.Stock(),
		Rating:      p.Rating(),
		ReviewCount: p.ReviewCount(),
		Tags:        p.Tags(),
		IsOnSale:    p.OnSale(),
		IsFeatured:  p.Featured(),
		CreatedAt:   p.CreatedAt(),
	}
	if op := p.OriginalPrice(); op != nil {
		s := op.String()
		rec.OriginalPrice = &s
	}
	for _, v := range p.Variants() {
		rec.Variants = append(rec.Variants, variantToRecord(v))
	}
	return rec
}

func ProductFromRecord(rec ProductRecord) (catalog.Product, error) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return catalog.Product{}, fmt.Errorf("invalid product id: %w", err)
	}
	price, err := money.Parse(rec.Price)
	if err != nil {
		return catalog.Product{}, err
	}
	var original *money.Money
	if rec.OriginalPrice != nil {
		o, err := money.Parse(*rec.OriginalPrice)
		if err != nil {
			return catalog.Product{}, err
		}
		original = &o
	}
	categoryID, err := uuid.Parse(rec.Category.ID)
	if err != nil {
		return catalog.Product{}, fmt.Errorf("invalid category id: %w", err)
	}
	variants := make([]catalog.Variant, 0, len(rec.Variants))
	for _, vr := range rec.Variants {
		v, err := variantFromRecord(vr)
		if err != nil {
			return catalog.Product{}, err
		}
		variants = append(variants, v)
	}

	return catalog.NewProduct(catalog.ProductSpec{
		ID:            id,
		Name:          rec.Name,
		Description:   rec.Description,
		Price:         price,
		OriginalPrice: original,
		Category:      catalog.Category{ID: categoryID, Name: rec.Category.Name, Slug: rec.Category.Slug},
		Brand:         rec.Brand,
		Stock:         rec.Stock,
		Rating:        rec.Rating,
		ReviewCount:   rec.ReviewCount,
		Tags:          rec.Tags,
		Variants:      variants,
		OnSale:        rec.IsOnSale,
		Featured:      rec.IsFeatured,
		CreatedAt:     rec.CreatedAt,
	})
}

func variantToRecord(v catalog.Variant) VariantRecord {
	return VariantRecord{
		ID:            v.ID().String(),
		Name:          v.Name(),
		Value:         v.Value(),
		PriceModifier: v.PriceModifier().String(),
	}
}

func variantFromRecord(rec VariantRecord) (catalog.Variant, error) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return catalog.Variant{}, fmt.Errorf("invalid variant id: %w", err)
	}
	modifier, err := money.Parse(rec.PriceModifier)
	if err != nil {
		return catalog.Variant{}, err
	}
	return catalog.NewVariant(id, rec.Name, rec.Value, modifier), nil
}
