package otelcast_test

import (
	"context"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/require"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/zitsen/arrow-cast-guess-precision/otelcast"
)

func int64Array(t testing.TB, values []int64) *array.Int64 {
	t.Helper()

	b := array.NewInt64Builder(memory.DefaultAllocator)
	defer b.Release()
	b.AppendValues(values, nil)
	return b.NewInt64Array()
}

func TestCasterTracing(t *testing.T) {
	ctx := context.Background()
	exporter := tracetest.NewInMemoryExporter()
	tp := tracesdk.NewTracerProvider(tracesdk.WithSyncer(exporter))

	c, err := otelcast.NewCaster(otelcast.Options{TracerProvider: tp})
	require.NoError(t, err)

	arr := int64Array(t, []int64{1701325744956})
	defer arr.Release()

	out, err := c.Cast(ctx, arr, &arrow.TimestampType{Unit: arrow.Nanosecond})
	require.NoError(t, err)
	defer out.Release()

	require.Equal(t, arrow.Timestamp(1701325744956*1000*1000), out.(*array.Timestamp).Value(0))

	require.NoError(t, tp.ForceFlush(ctx))
	spans := exporter.GetSpans()
	require.NotEmpty(t, spans)
	require.Equal(t, "Cast", spans[0].Name)

	var fromSeen, idSeen bool
	for _, kv := range spans[0].Attributes {
		switch kv.Key {
		case otelcast.FromTypeKey:
			fromSeen = true
			require.Equal(t, "int64", kv.Value.AsString())
		case otelcast.CastIDKey:
			idSeen = true
			require.NotEmpty(t, kv.Value.AsString())
		}
	}
	require.True(t, fromSeen, "cast.from attribute not recorded")
	require.True(t, idSeen, "cast.id attribute not recorded")

	stats := c.Stats()
	require.Equal(t, int64(1), stats.Total)
	require.Zero(t, stats.Failed)
}

func TestCasterFailedCast(t *testing.T) {
	ctx := context.Background()
	exporter := tracetest.NewInMemoryExporter()
	tp := tracesdk.NewTracerProvider(tracesdk.WithSyncer(exporter))

	c, err := otelcast.NewCaster(otelcast.Options{TracerProvider: tp})
	require.NoError(t, err)

	arr := int64Array(t, []int64{1})
	defer arr.Release()

	structType := arrow.StructOf(arrow.Field{Name: "a", Type: arrow.PrimitiveTypes.Int32})
	_, err = c.Cast(ctx, arr, structType)
	require.Error(t, err)

	stats := c.Stats()
	require.Equal(t, int64(1), stats.Total)
	require.Equal(t, int64(1), stats.Failed)
}
