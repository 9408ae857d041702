package components

import (
	"log/slog"

	"dealstack/internal/pkg/clock"
	"dealstack/internal/pkg/config"
	"dealstack/internal/pkg/memcache"
	"dealstack/internal/usecase/commands"
	"dealstack/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(store queries.CouponReadStore, cache *memcache.Cache, cfg config.Config, logger *slog.Logger) queries.CouponQueries {
			return queries.NewCouponQueries(store, cache, cfg.Cache.ListTTL, logger)
		},
		func(store queries.MerchantReadStore, cache *memcache.Cache, cfg config.Config, logger *slog.Logger) queries.MerchantQueries {
			return queries.NewMerchantQueries(store, cache, cfg.Cache.ListTTL, logger)
		},
		func(store queries.BlogReadStore, cache *memcache.Cache, cfg config.Config, logger *slog.Logger) queries.BlogQueries {
			return queries.NewBlogQueries(store, cache, cfg.Cache.ListTTL, logger)
		},
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewClickCommands,
		commands.NewSubscribeCommands,
	),
)
