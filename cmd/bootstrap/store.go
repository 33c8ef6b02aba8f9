package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"console-rental/internal/infra/kv"
	"console-rental/internal/infra/uow"
	"console-rental/internal/pkg/config"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStore,
		uow.NewKVUoW,
	),
)

// NewStore takes the tracer provider so the global provider is installed before the first span.
func NewStore(lc fx.Lifecycle, cfg config.Config, _ trace.TracerProvider) (kv.Store, error) {
	var (
		store kv.Store
		err   error
	)

	switch cfg.Store.Driver {
	case config.DriverMemory:
		store = kv.NewMemoryStore()
	case config.DriverSQLite:
		store, err = kv.NewSQLiteStore(cfg.Store.SQLitePath)
	case config.DriverPostgres:
		pool, dbErr := NewDB(lc, cfg)
		if dbErr != nil {
			return nil, dbErr
		}
		store, err = kv.NewPostgresStore(context.Background(), pool)
	default:
		err = fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
	if err != nil {
		return nil, err
	}

	slog.Info("record store opened", "driver", store.Driver())

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return kv.WithTracing(store), nil
}

