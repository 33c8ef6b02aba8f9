package bootstrap

import (
	"console-rental/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	TracingModule,
	StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
	SeedModule,
)
