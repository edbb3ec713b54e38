// Package boundtable renders the guessing bound table for candidate year
// values, one line per year with the three derived lower bounds.
package boundtable

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// secondsPerYear is 86400 * 365, the year length the bounds assume.
const secondsPerYear = 86400 * 365

// Render renders the table.
func Render(years []int64) string {
	var b strings.Builder
	for _, y := range years {
		millis := secondsPerYear * y
		micros := 1000 * millis
		nanos := 1000 * micros
		fmt.Fprintf(&b, "years=%d millis=%s micros=%s nanos=%s\n",
			y, humanize.Comma(millis), humanize.Comma(micros), humanize.Comma(nanos),
		)
	}
	return b.String()
}
