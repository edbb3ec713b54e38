package guesscast

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/compute"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"go.uber.org/zap"
)

// TimestampCastOptions control how numeric and numeric-string sources are
// interpreted when the target is a timestamp.
type TimestampCastOptions struct {
	// GuessPrecision guesses the time unit of integer values from their
	// magnitude instead of taking the target unit at face value.
	//
	// The source is first converted to int64 and the first non-null value
	// decides.
	GuessPrecision bool
	// UseTimezoneAsIs keeps the timezone of the target type during the
	// intermediate timestamp reinterpretation. If false the timezone label
	// is discarded and UTC is assumed.
	UseTimezoneAsIs bool
}

// CastOptions for CastWithOptions.
//
// Immutable once passed in; safe for concurrent reads.
type CastOptions struct {
	// Safe makes invalid conversions produce nulls instead of failing.
	Safe bool
	// Timestamp options.
	Timestamp TimestampCastOptions
	// Allocator for output arrays. Defaults to memory.DefaultAllocator.
	Allocator memory.Allocator
	// Logger reports dispatch decisions at debug level.
	// Defaults to zap.NewNop.
	Logger *zap.Logger
}

// DefaultCastOptions returns the options used by Cast: safe conversions,
// precision guessing on, target timezone kept as-is.
func DefaultCastOptions() CastOptions {
	return CastOptions{
		Safe: true,
		Timestamp: TimestampCastOptions{
			GuessPrecision:  true,
			UseTimezoneAsIs: true,
		},
	}
}

func (o *CastOptions) setDefaults() {
	if o.Allocator == nil {
		o.Allocator = memory.DefaultAllocator
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
}

// computeOptions converts to collaborator options. Polarity flips here:
// arrow's "safe" means checked conversions that fail loudly, while Safe
// means lenient ones that never do.
func (o *CastOptions) computeOptions(to arrow.DataType) *compute.CastOptions {
	return compute.NewCastOptions(to, !o.Safe)
}

func (o *CastOptions) logPath(from, to arrow.DataType, p Path, extra ...zap.Field) {
	if ce := o.Logger.Check(zap.DebugLevel, "Cast"); ce != nil {
		fields := []zap.Field{
			zap.Stringer("from", from),
			zap.Stringer("to", to),
			zap.Stringer("path", p),
		}
		ce.Write(append(fields, extra...)...)
	}
}

//go:generate go run github.com/dmarkham/enumer -type Path -trimprefix Path -transform snake -output path_enum.go

// Path identifies the dispatch branch taken by a cast.
type Path uint8

const (
	// PathIdentity returns the input untouched.
	PathIdentity Path = iota
	// PathEmpty shortcuts zero-length inputs.
	PathEmpty
	// PathNullSource shortcuts null-typed inputs.
	PathNullSource
	// PathNarrowNumeric reinterprets narrow numerics as second counts.
	PathNarrowNumeric
	// PathStringSource parses string and binary inputs, retrying as raw
	// integer counts.
	PathStringSource
	// PathWideNumeric guesses the unit of 64-bit numerics.
	PathWideNumeric
	// PathDelegate hands the pair to the generic caster.
	PathDelegate
)
