package kv

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "console-rental/kv"

type tracedStore struct {
	inner  Store
	tracer trace.Tracer
}

// WithTracing wraps inner so every transaction is recorded as a span on the
// global tracer provider. With no provider configured the spans are no-ops.
func WithTracing(inner Store) Store {
	return &tracedStore{
		inner:  inner,
		tracer: otel.Tracer(tracerName),
	}
}

func (s *tracedStore) Update(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	return s.traced(ctx, "kv.Update", func(ctx context.Context) error {
		return s.inner.Update(ctx, fn)
	})
}

func (s *tracedStore) View(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	return s.traced(ctx, "kv.View", func(ctx context.Context) error {
		return s.inner.View(ctx, fn)
	})
}

func (s *tracedStore) traced(ctx context.Context, name string, run func(ctx context.Context) error) error {
	ctx, span := s.tracer.Start(ctx, name,
		trace.WithAttributes(attribute.String("kv.driver", s.inner.Driver())),
	)
	defer span.End()

	err := run(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (s *tracedStore) Driver() string { return s.inner.Driver() }

func (s *tracedStore) Close() error { return s.inner.Close() }
