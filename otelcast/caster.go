package otelcast

import (
	"context"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/atomic"

	guesscast "github.com/zitsen/arrow-cast-guess-precision"
)

const name = "guesscast"

// Caster wraps the cast entry points with tracing and metrics. Each cast
// gets a span carrying a fresh cast id for correlation.
type Caster struct {
	tracer trace.Tracer
	casts  metric.Int64Counter

	total  atomic.Int64
	failed atomic.Int64
}

// Options for NewCaster.
type Options struct {
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider
}

func (o *Options) setDefaults() {
	if o.TracerProvider == nil {
		o.TracerProvider = otel.GetTracerProvider()
	}
	if o.MeterProvider == nil {
		o.MeterProvider = otel.GetMeterProvider()
	}
}

// NewCaster initializes instrumented cast entry points.
func NewCaster(opt Options) (*Caster, error) {
	opt.setDefaults()

	c := &Caster{
		tracer: opt.TracerProvider.Tracer(name,
			trace.WithInstrumentationVersion(SemVersion()),
		),
	}
	casts, err := opt.MeterProvider.Meter(name).Int64Counter("cast.count",
		metric.WithDescription("Total casts dispatched"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create counter")
	}
	c.casts = casts

	return c, nil
}

// Cast casts arr to toType with default options, recording a span.
func (c *Caster) Cast(ctx context.Context, arr arrow.Array, toType arrow.DataType) (arrow.Array, error) {
	return c.CastWithOptions(ctx, arr, toType, guesscast.DefaultCastOptions())
}

// CastWithOptions casts arr to toType, recording a span.
func (c *Caster) CastWithOptions(ctx context.Context, arr arrow.Array, toType arrow.DataType, opt guesscast.CastOptions) (arrow.Array, error) {
	castID := uuid.New()
	ctx, span := c.tracer.Start(ctx, "Cast",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			CastID(castID.String()),
			FromType(arr.DataType().String()),
			ToType(toType.String()),
			Rows(arr.Len()),
		),
	)
	defer span.End()

	c.total.Inc()
	c.casts.Add(ctx, 1)

	out, err := guesscast.CastWithOptions(ctx, arr, toType, opt)
	if err != nil {
		c.failed.Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "cast failed")
		return nil, err
	}
	return out, nil
}

// Stats is a point-in-time snapshot of cast totals.
type Stats struct {
	Total  int64
	Failed int64
}

// Stats reports totals since the Caster was created.
func (c *Caster) Stats() Stats {
	return Stats{
		Total:  c.total.Load(),
		Failed: c.failed.Load(),
	}
}
