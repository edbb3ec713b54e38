package guesscast

import (
	"context"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/compute"
	"github.com/go-faster/errors"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// CastRecord casts every column of rec to the type of the corresponding
// field of schema. Columns are independent and cast in parallel. The caller
// owns the returned record.
func CastRecord(ctx context.Context, rec arrow.Record, schema *arrow.Schema, opt CastOptions) (arrow.Record, error) {
	if int(rec.NumCols()) != schema.NumFields() {
		return nil, errors.Errorf("column count mismatch: %d != %d", rec.NumCols(), schema.NumFields())
	}

	cols := make([]arrow.Array, rec.NumCols())
	g, gCtx := errgroup.WithContext(ctx)
	for i := range cols {
		g.Go(func() error {
			field := schema.Field(i)
			out, err := CastWithOptions(gCtx, rec.Column(i), field.Type, opt)
			if err != nil {
				return errors.Wrapf(err, "column %q", field.Name)
			}
			cols[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for _, col := range cols {
			if col != nil {
				col.Release()
			}
		}
		return nil, err
	}

	defer func() {
		for _, col := range cols {
			col.Release()
		}
	}()
	return array.NewRecord(schema, cols, rec.NumRows()), nil
}

// CanCastSchema reports whether every column of from can be cast to the
// corresponding field of to, aggregating all incompatible pairs into a
// single error.
func CanCastSchema(from, to *arrow.Schema) error {
	if from.NumFields() != to.NumFields() {
		return errors.Errorf("field count mismatch: %d != %d", from.NumFields(), to.NumFields())
	}
	var err error
	for i := 0; i < to.NumFields(); i++ {
		f, t := from.Field(i), to.Field(i)
		if castable(f.Type, t.Type) {
			continue
		}
		err = multierr.Append(err, errors.Errorf("column %q: %s is not castable to %s", t.Name, f.Type, t.Type))
	}
	return err
}

// castable covers the pairs the dispatcher special-cases on top of what the
// generic caster supports.
func castable(from, to arrow.DataType) bool {
	if arrow.TypeEqual(from, to) || from.ID() == arrow.NULL {
		return true
	}
	if _, ok := to.(*arrow.TimestampType); ok {
		switch from.ID() {
		case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
			arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64,
			arrow.FLOAT16, arrow.FLOAT32, arrow.FLOAT64,
			arrow.BINARY, arrow.FIXED_SIZE_BINARY, arrow.LARGE_BINARY,
			arrow.STRING, arrow.LARGE_STRING:
			return true
		}
	}
	return compute.CanCast(from, to)
}
