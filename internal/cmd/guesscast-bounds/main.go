// Command guesscast-bounds prints the guessing bound table for candidate
// year values.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-faster/errors"

	"github.com/zitsen/arrow-cast-guess-precision/internal/boundtable"
)

func run() error {
	var arg struct {
		Years string
	}
	flag.StringVar(&arg.Years, "years", "100,200,500,1000,2000,5000,10000", "comma-separated year values")
	flag.Parse()

	var years []int64
	for _, s := range strings.Split(arg.Years, ",") {
		v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return errors.Wrap(err, "parse years")
		}
		years = append(years, v)
	}

	fmt.Print(boundtable.Render(years))
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(2)
	}
}
