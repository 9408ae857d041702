package bootstrap

import (
	"dealstack/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	ServicesModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
