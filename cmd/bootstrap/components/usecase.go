package components

import (
	"console-rental/internal/pkg/clock"
	"console-rental/internal/pkg/config"
	"console-rental/internal/pkg/ident"
	"console-rental/internal/usecase/commands"
	"console-rental/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	ident.NewRandomGenerator,
	func(cfg config.Config) commands.RentalPolicy {
		return commands.RentalPolicy{
			RejectUnavailable: cfg.Rental.RejectUnavailable,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRenterUseCase,
		commands.NewGameUseCase,
		commands.NewPlayStationUseCase,
		commands.NewRentalUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRenterQueries,
		queries.NewGameQueries,
		queries.NewPlayStationQueries,
		queries.NewRentLogQueries,
	),
)
