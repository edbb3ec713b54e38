// Package guesscast casts arrow arrays to timestamps, guessing the time
// resolution of integer and numeric-string values from their magnitude.
//
// Replace compute.CastArray with Cast and everything else stays the same:
// every pair of types this package does not special-case is handed to the
// generic arrow caster untouched.
//
// The guess compares the absolute value against three bounds derived from a
// year count fixed at build time (default 1000):
//
//	B = 86400 * 365 * years
//	|v| > 1000*1000*B  => nanoseconds
//	|v| > 1000*B       => microseconds
//	|v| > B            => milliseconds
//	otherwise          => seconds
//
// With the default bound the millisecond range opens at 1971-01-01T00:00:00
// and the second range closes at 2969-05-03T00:00:00, which covers any epoch
// a real column holds. Override with:
//
//	go build -ldflags "-X github.com/zitsen/arrow-cast-guess-precision.guessingBoundYears=2000"
//
// Run internal/cmd/guesscast-bounds for the bound table of candidate years.
package guesscast

import (
	"context"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/compute"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

// Cast casts arr to toType with DefaultCastOptions.
func Cast(ctx context.Context, arr arrow.Array, toType arrow.DataType) (arrow.Array, error) {
	return CastWithOptions(ctx, arr, toType, DefaultCastOptions())
}

// CastWithOptions casts arr to toType.
//
// Dispatch order: identical types are returned as-is, zero-length and
// null-typed sources shortcut to empty and all-null outputs, numeric and
// string sources destined for timestamps take the guessing paths, and every
// other pair goes to the generic caster. The caller owns the returned array.
func CastWithOptions(ctx context.Context, arr arrow.Array, toType arrow.DataType, opt CastOptions) (arrow.Array, error) {
	opt.setDefaults()

	fromType := arr.DataType()
	if arrow.TypeEqual(fromType, toType) {
		opt.logPath(fromType, toType, PathIdentity)
		return array.MakeFromData(arr.Data()), nil
	}
	if arr.Len() == 0 {
		opt.logPath(fromType, toType, PathEmpty)
		return array.MakeArrayOfNull(opt.Allocator, toType, 0), nil
	}
	if fromType.ID() == arrow.NULL {
		opt.logPath(fromType, toType, PathNullSource)
		return array.MakeArrayOfNull(opt.Allocator, toType, arr.Len()), nil
	}

	switch fromType.ID() {
	case arrow.INT8, arrow.INT16, arrow.INT32,
		arrow.UINT8, arrow.UINT16, arrow.UINT32,
		arrow.FLOAT16, arrow.FLOAT32:
		if to, ok := toType.(*arrow.TimestampType); ok {
			opt.logPath(fromType, toType, PathNarrowNumeric)
			return castNarrowToTimestamp(ctx, arr, to, opt)
		}
	case arrow.BINARY, arrow.FIXED_SIZE_BINARY, arrow.LARGE_BINARY,
		arrow.STRING, arrow.LARGE_STRING:
		opt.logPath(fromType, toType, PathStringSource)
		return castFromString(ctx, arr, toType, opt)
	case arrow.INT64, arrow.UINT64, arrow.FLOAT64:
		if to, ok := toType.(*arrow.TimestampType); ok {
			return castWideToTimestamp(ctx, arr, to, opt)
		}
	}

	opt.logPath(fromType, toType, PathDelegate)
	out, err := compute.CastArray(ctx, arr, opt.computeOptions(toType))
	if err != nil {
		return nil, errors.Wrap(err, "generic cast")
	}
	return out, nil
}

// effectiveTimezone resolves the timezone of the intermediate timestamp
// type. The final conversion always targets the requested type verbatim.
func effectiveTimezone(to *arrow.TimestampType, opt CastOptions) string {
	if opt.Timestamp.UseTimezoneAsIs {
		return to.TimeZone
	}
	return ""
}

// castNarrowToTimestamp handles sources too narrow to hold sub-second epoch
// counts: with guessing on they are taken as second counts directly, no
// per-element guess needed. Fractions of Float16 and Float32 values are
// discarded by the integer conversion.
func castNarrowToTimestamp(ctx context.Context, arr arrow.Array, to *arrow.TimestampType, opt CastOptions) (arrow.Array, error) {
	ints, err := compute.CastArray(ctx, arr, opt.computeOptions(arrow.PrimitiveTypes.Int64))
	if err != nil {
		return nil, errors.Wrap(err, "to int64")
	}
	defer ints.Release()

	unit := to.Unit
	if opt.Timestamp.GuessPrecision {
		unit = arrow.Second
	}
	return reinterpretTimestamp(ctx, ints, unit, to, opt)
}

// castWideToTimestamp handles 64-bit sources whose magnitude can encode any
// resolution. The first non-null value decides the unit; an empty guess
// falls back to the target unit. With guessing off the values are taken
// verbatim as counts of the target unit instead of being re-guessed.
func castWideToTimestamp(ctx context.Context, arr arrow.Array, to *arrow.TimestampType, opt CastOptions) (arrow.Array, error) {
	ints, err := compute.CastArray(ctx, arr, opt.computeOptions(arrow.PrimitiveTypes.Int64))
	if err != nil {
		return nil, errors.Wrap(err, "to int64")
	}
	defer ints.Release()

	unit := to.Unit
	if opt.Timestamp.GuessPrecision {
		if guessed, ok := guessPrecisionInArray(ints.(*array.Int64)); ok {
			unit = guessed
		}
	}
	opt.logPath(arr.DataType(), to, PathWideNumeric, zap.Stringer("unit", unit))
	return reinterpretTimestamp(ctx, ints, unit, to, opt)
}

// reinterpretTimestamp casts ints 1:1 to Timestamp(unit, tz) and converts
// the result to the requested type. The second cast is a no-op when the
// unit already matches.
func reinterpretTimestamp(ctx context.Context, ints arrow.Array, unit arrow.TimeUnit, to *arrow.TimestampType, opt CastOptions) (arrow.Array, error) {
	mid := &arrow.TimestampType{Unit: unit, TimeZone: effectiveTimezone(to, opt)}
	tsArr, err := compute.CastToType(ctx, ints, mid)
	if err != nil {
		return nil, errors.Wrap(err, "reinterpret as timestamp")
	}
	defer tsArr.Release()

	out, err := compute.CastArray(ctx, tsArr, opt.computeOptions(to))
	if err != nil {
		return nil, errors.Wrap(err, "convert timestamp unit")
	}
	return out, nil
}

// castFromString parses string and binary sources with the generic caster
// first. When every element fails to parse, the text may be raw timestamp
// counts: the source is reinterpreted as int64 once and re-dispatched. The
// reinterpreted array is numeric, so the second pass cannot land here again.
//
// The generic caster reports unparsable text as an error rather than a null
// result; under Safe that case degrades to an all-null output, whole-array
// rather than per-element.
func castFromString(ctx context.Context, arr arrow.Array, toType arrow.DataType, opt CastOptions) (arrow.Array, error) {
	out, err := compute.CastArray(ctx, arr, opt.computeOptions(toType))
	if err == nil && out.NullN() < out.Len() {
		return out, nil
	}

	if ints := parseInt64(arr, opt.Allocator); ints != nil {
		if ints.NullN() < ints.Len() {
			if out != nil {
				out.Release()
			}
			defer ints.Release()
			return CastWithOptions(ctx, ints, toType, opt)
		}
		ints.Release()
	}

	if err != nil {
		if opt.Safe {
			return array.MakeArrayOfNull(opt.Allocator, toType, arr.Len()), nil
		}
		return nil, errors.Wrap(err, "cast from string")
	}
	return out, nil
}

// parseInt64 reinterprets string or binary elements as base-10 64-bit
// integers, nulling elements that do not parse. Returns nil for any other
// array kind.
func parseInt64(arr arrow.Array, mem memory.Allocator) *array.Int64 {
	value := stringValue(arr)
	if value == nil {
		return nil
	}
	b := array.NewInt64Builder(mem)
	defer b.Release()
	b.Reserve(arr.Len())
	for i := 0; i < arr.Len(); i++ {
		if arr.IsNull(i) {
			b.AppendNull()
			continue
		}
		v, err := strconv.ParseInt(value(i), 10, 64)
		if err != nil {
			b.AppendNull()
			continue
		}
		b.Append(v)
	}
	return b.NewInt64Array()
}

func stringValue(arr arrow.Array) func(int) string {
	switch a := arr.(type) {
	case *array.String:
		return a.Value
	case *array.LargeString:
		return a.Value
	case *array.Binary:
		return func(i int) string { return string(a.Value(i)) }
	case *array.LargeBinary:
		return func(i int) string { return string(a.Value(i)) }
	case *array.FixedSizeBinary:
		return func(i int) string { return string(a.Value(i)) }
	default:
		return nil
	}
}
