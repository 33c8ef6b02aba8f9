//go:build unit

package kv_test

import (
	"context"
	"errors"
	"testing"

	"console-rental/internal/infra/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestWithTracing_RecordsSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	original := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(original)
		_ = tp.Shutdown(context.Background())
	})

	store := kv.WithTracing(kv.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, store.View(ctx, func(context.Context, kv.Tx) error { return nil }))
	boom := errors.New("boom")
	assert.ErrorIs(t, store.Update(ctx, func(context.Context, kv.Tx) error { return boom }), boom)

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)

	assert.Equal(t, "kv.View", spans[0].Name)
	assert.Contains(t, spans[0].Attributes, attribute.String("kv.driver", kv.DriverMemory))
	assert.Equal(t, codes.Unset, spans[0].Status.Code)

	assert.Equal(t, "kv.Update", spans[1].Name)
	assert.Equal(t, codes.Error, spans[1].Status.Code)
	assert.Equal(t, "boom", spans[1].Status.Description)
}
