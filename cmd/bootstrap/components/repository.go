package components

import (
	"dealstack/internal/infra/readstore"
	"dealstack/internal/infra/writerepo"
	"dealstack/internal/usecase/commands"
	"dealstack/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
		),
		fx.Annotate(
			readstore.NewMerchantReadStore,
			fx.As(new(queries.MerchantReadStore)),
		),
		fx.Annotate(
			readstore.NewBlogReadStore,
			fx.As(new(queries.BlogReadStore)),
		),
		// Write-side repositories for commands
		fx.Annotate(
			writerepo.NewOfferRepository,
			fx.As(new(commands.OfferRepository)),
		),
		fx.Annotate(
			writerepo.NewMerchantRepository,
			fx.As(new(commands.MerchantRepository)),
		),
		fx.Annotate(
			writerepo.NewSubscriberRepository,
			fx.As(new(commands.SubscriberRepository)),
		),
		writerepo.NewAuditRepository,
	),
)
