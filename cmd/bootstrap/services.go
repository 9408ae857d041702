package bootstrap

import (
	"context"
	"log/slog"

	"dealstack/internal/infra/writerepo"
	"dealstack/internal/pkg/clock"
	"dealstack/internal/pkg/config"
	"dealstack/internal/pkg/memcache"
	"dealstack/internal/pkg/ratelimit"
	"dealstack/internal/usecase/commands"
	"dealstack/internal/worker"

	"go.uber.org/fx"
)

const auditQueueSize = 512

// ServicesModule owns the process-lifetime singletons: the TTL result
// cache, the rate-limit tables and the audit worker. They are built at
// startup and injected, never reached through package globals.
var ServicesModule = fx.Module("services",
	fx.Provide(
		NewResultCache,
		NewClickLimiter,
		NewIPLimiterPool,
		NewAuditWorker,
	),
)

func NewResultCache(clk clock.Clock) *memcache.Cache {
	return memcache.New(clk)
}

func NewClickLimiter(cfg config.Config, clk clock.Clock) commands.ClickLimiter {
	rl := cfg.RateLimit
	return ratelimit.NewFixedWindowLimiter(rl.ClickWindow, rl.ClickThreshold, rl.TableCapacity, rl.EntryTTL, clk)
}

func NewIPLimiterPool(cfg config.Config) *ratelimit.IPLimiterPool {
	return ratelimit.NewIPLimiterPool(cfg.RateLimit.SubscribeRPS, cfg.RateLimit.SubscribeBurst)
}

func NewAuditWorker(lc fx.Lifecycle, repo *writerepo.AuditRepository, logger *slog.Logger) commands.AuditQueue {
	w := worker.NewAuditWorker(repo, auditQueueSize, logger)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			w.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return w.Stop(ctx)
		},
	})

	return w
}
