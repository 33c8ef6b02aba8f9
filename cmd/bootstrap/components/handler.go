package components

import (
	"console-rental/internal/handler"
	"console-rental/internal/handler/api"
	"console-rental/internal/handler/middleware"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRenterHandler,
		api.NewGameHandler,
		api.NewPlayStationHandler,
		api.NewRentalHandler,
		NewRegistry,
		func(renters *api.RenterHandler, games *api.GameHandler, playstations *api.PlayStationHandler, rentals *api.RentalHandler) handler.Handlers {
			return handler.Handlers{
				Renters:      renters,
				Games:        games,
				PlayStations: playstations,
				Rentals:      rentals,
			}
		},
		func(logger *middleware.Logger, reg *prometheus.Registry) handler.Observability {
			return handler.Observability{Logger: logger, Registry: reg}
		},
	),
	fx.Invoke(handler.NewRouter),
)

// NewRegistry also exports Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
