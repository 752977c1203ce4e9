package components

import (
	"storefront-cart/internal/domain/cart"
	"storefront-cart/internal/domain/discount"
	"storefront-cart/internal/domain/money"
	"storefront-cart/internal/pkg/clock"
	"storefront-cart/internal/pkg/config"
	"storefront-cart/internal/pkg/errs"
	"storefront-cart/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCartModule,
	usecaseAuthModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPricingPolicy,
	fx.Annotate(
		discount.NewDefaultResolver,
		fx.As(new(cart.DiscountResolver)),
	),
)

var usecaseCartModule = fx.Module("usecase/cart",
	fx.Provide(
		usecase.NewCartSessions,
		usecase.NewCartUseCase,
		usecase.NewCatalogUseCase,
	),
)

var usecaseAuthModule = fx.Module("usecase/auth",
	fx.Provide(
		usecase.NewAuthUseCase,
		usecase.NewTokenValidator,
	),
)

func NewPricingPolicy(cfg config.Config) (cart.PricingPolicy, error) {
	taxRate, err := decimal.NewFromString(cfg.Pricing.TaxRate)
	if err != nil {
		return cart.PricingPolicy{}, errs.Wrap(err, "invalid PRICING_TAX_RATE")
	}
	flat, err := money.Parse(cfg.Pricing.FlatShipping)
	if err != nil {
		return cart.PricingPolicy{}, errs.Wrap(err, "invalid PRICING_FLAT_SHIPPING")
	}
	threshold, err := money.Parse(cfg.Pricing.FreeShippingThreshold)
	if err != nil {
		return cart.PricingPolicy{}, errs.Wrap(err, "invalid PRICING_FREE_SHIPPING_THRESHOLD")
	}
	policy := cart.PricingPolicy{
		TaxRate:               taxRate,
		FlatShipping:          flat,
		FreeShippingThreshold: threshold,
	}
	if err := policy.Validate(); err != nil {
		return cart.PricingPolicy{}, errs.Wrap(err, "invalid PRICING_* configuration")
	}
	return policy, nil
}
