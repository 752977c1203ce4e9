package components

import (
	"storefront-cart/internal/infra/repository"
	"storefront-cart/internal/usecase"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	repositoryModule,
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// Cart
		fx.Annotate(
			repository.NewCartRepository,
			fx.As(new(usecase.CartRepository)),
		),
	),
)
