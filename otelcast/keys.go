// Package otelcast provides OpenTelemetry instrumentation for casts.
package otelcast

import (
	"go.opentelemetry.io/otel/attribute"
)

const (
	CastIDKey   = attribute.Key("cast.id")
	FromTypeKey = attribute.Key("cast.from")
	ToTypeKey   = attribute.Key("cast.to")
	RowsKey     = attribute.Key("cast.rows")
)

// CastID attribute.
func CastID(v string) attribute.KeyValue {
	return attribute.KeyValue{
		Key:   CastIDKey,
		Value: attribute.StringValue(v),
	}
}

// FromType attribute.
func FromType(v string) attribute.KeyValue {
	return attribute.KeyValue{
		Key:   FromTypeKey,
		Value: attribute.StringValue(v),
	}
}

// ToType attribute.
func ToType(v string) attribute.KeyValue {
	return attribute.KeyValue{
		Key:   ToTypeKey,
		Value: attribute.StringValue(v),
	}
}

// Rows attribute.
func Rows(v int) attribute.KeyValue {
	return attribute.KeyValue{
		Key:   RowsKey,
		Value: attribute.IntValue(v),
	}
}
