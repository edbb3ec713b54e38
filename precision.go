package guesscast

import (
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// guessingBoundYears is the guessing bound in years, injected at link time:
//
//	go build -ldflags "-X github.com/zitsen/arrow-cast-guess-precision.guessingBoundYears=2000"
//
// Defaults to 1000 so that the millisecond lower bound starts at
// 1971-01-01T00:00:00, one year after zero unix time.
var guessingBoundYears = "1000"

// Lower bounds derived from guessingBoundYears. A magnitude strictly above
// lowerBoundNanos is nanoseconds, above lowerBoundMicros is microseconds,
// above lowerBoundMillis is milliseconds, else seconds. Read-only after init.
var (
	lowerBoundMillis uint64
	lowerBoundMicros uint64
	lowerBoundNanos  uint64
)

func init() {
	years, err := strconv.ParseUint(guessingBoundYears, 10, 64)
	// The cap keeps the nanosecond bound well inside int64, preserving
	// millis < micros < nanos.
	if err != nil || years == 0 || years > 100_000 {
		panic("guesscast: invalid guessingBoundYears " + strconv.Quote(guessingBoundYears))
	}
	lowerBoundMillis = 86400 * 365 * years
	lowerBoundMicros = 1000 * lowerBoundMillis
	lowerBoundNanos = 1000 * lowerBoundMicros
}

// GuessPrecision guesses the time unit of a raw timestamp count from its
// magnitude. Total over int64, symmetric in sign. Values exactly at a bound
// resolve to the coarser unit.
func GuessPrecision(timestamp int64) arrow.TimeUnit {
	// Two's complement negation keeps math.MinInt64 exact.
	abs := uint64(timestamp)
	if timestamp < 0 {
		abs = -abs
	}
	switch {
	case abs > lowerBoundNanos:
		return arrow.Nanosecond
	case abs > lowerBoundMicros:
		return arrow.Microsecond
	case abs > lowerBoundMillis:
		return arrow.Millisecond
	default:
		return arrow.Second
	}
}

// guessPrecisionInArray guesses from the first non-null element.
//
// A single element is enough: timestamp columns share one magnitude order in
// practice, so this stays O(1) instead of sampling the whole column. Reports
// false if every element is null.
func guessPrecisionInArray(ints *array.Int64) (arrow.TimeUnit, bool) {
	for i := 0; i < ints.Len(); i++ {
		if ints.IsNull(i) {
			continue
		}
		return GuessPrecision(ints.Value(i)), true
	}
	return arrow.Second, false
}
