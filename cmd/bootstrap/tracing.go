package bootstrap

import (
	"context"
	"os"

	"console-rental/internal/pkg/config"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

var TracingModule = fx.Module("tracing",
	fx.Provide(
		NewTracerProvider,
	),
)

// NewTracerProvider installs a stdout exporter as the global provider when
// tracing is enabled; otherwise the global no-op provider is returned.
func NewTracerProvider(lc fx.Lifecycle, cfg config.Config) (trace.TracerProvider, error) {
	if !cfg.Tracing.Enabled {
		return otel.GetTracerProvider(), nil
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(os.Stdout))
	if err != nil {
		return nil, err
	}

	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			attribute.String("service.name", cfg.Tracing.ServiceName),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tp.Shutdown(ctx)
		},
	})

	return tp, nil
}
