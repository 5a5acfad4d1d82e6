package gnuplot

import (
	"github.com/wagiedev/gnuplot-go/internal/datablock"
)

// Layout controls how data block values are grouped into lines.
type Layout = datablock.Layout

// Numeric is the set of element types accepted by the data block helpers.
type Numeric = datablock.Number

// DataBlock uploads columns as a named inline data block and returns its
// name, e.g. "$aB3dE9xQ", for use in later commands:
//
//	name, err := gnuplot.DataBlock(g, gnuplot.Layout{Row: 1}, xs, ys)
//	...
//	err = g.Sendf("plot %s using 1:2 with lines", name)
//
// Each line holds layout.Row index positions, every position contributing
// one value per column. Columns of different lengths are rejected with a
// *ColumnLengthError and nothing is written.
func DataBlock[T Numeric](g *Gnuplot, layout Layout, columns ...[]T) (string, error) {
	name := datablock.NewName()

	buf, err := datablock.AppendBlock(nil, name, g.options.BlockTerminator, layout, columns...)
	if err != nil {
		return "", err
	}

	if _, err := g.proc.Write(buf); err != nil {
		return "", err
	}

	g.log.Debug("Uploaded data block", "name", name, "columns", len(columns), "bytes", len(buf))

	return name, nil
}

// Block is DataBlock for float64 columns.
func (g *Gnuplot) Block(layout Layout, columns ...[]float64) (string, error) {
	return DataBlock(g, layout, columns...)
}

// Interleave writes columns as inline rows followed by the "e" terminator,
// for data that follows a "plot '-'" command.
func Interleave[T Numeric](g *Gnuplot, layout Layout, columns ...[]T) error {
	buf, err := datablock.AppendInline(nil, layout, columns...)
	if err != nil {
		return err
	}

	_, err = g.proc.Write(buf)

	return err
}
