package datablock

import (
	"github.com/wagiedev/gnuplot-go/internal/errors"
)

// InlineTerminator ends data sent after a "plot '-'" command.
const InlineTerminator = "e"

// Layout controls how column values are grouped into lines.
type Layout struct {
	// Row is the number of index positions per line. Every position
	// contributes one value from each column. Zero means one.
	Row int

	// Sep adds a line break after every Sep positions that does not
	// already end a line, splitting the row there. Zero disables it.
	Sep int
}

func (l Layout) row() int {
	return max(l.Row, 1)
}

// Validate checks that all columns hold the same number of values and
// returns that number.
func Validate[T Number](columns ...[]T) (int, error) {
	if len(columns) == 0 {
		return 0, nil
	}

	n := len(columns[0])

	for i, col := range columns[1:] {
		if len(col) != n {
			return 0, &errors.ColumnLengthError{Column: i + 1, Want: n, Got: len(col)}
		}
	}

	return n, nil
}

// AppendRows appends the rows of columns to dst using layout.
//
// A line ends after every layout.Row positions, after every layout.Sep
// positions, and after the last position. n positions therefore produce
// ceil(n/Row) row breaks plus one break for each multiple of Sep below n
// that is not a multiple of Row.
func AppendRows[T Number](dst []byte, layout Layout, columns ...[]T) ([]byte, error) {
	n, err := Validate(columns...)
	if err != nil {
		return dst, err
	}

	row := layout.row()
	lineStart := true

	for i := range n {
		for _, col := range columns {
			if !lineStart {
				dst = append(dst, ' ')
			}

			dst = AppendNumber(dst, col[i])
			lineStart = false
		}

		if !layout.breaksAfter(i+1, n) {
			continue
		}

		dst = append(dst, '\n')
		lineStart = true
	}

	return dst, nil
}

// breaksAfter reports whether a line ends once pos of n positions are written.
func (l Layout) breaksAfter(pos, n int) bool {
	switch {
	case pos == n, pos%l.row() == 0:
		return true
	case l.Sep > 0:
		return pos%l.Sep == 0
	default:
		return false
	}
}

// AppendBlock appends a complete named block: header, rows and terminator.
// Nothing is appended when the columns are invalid.
func AppendBlock[T Number](dst []byte, name, terminator string, layout Layout, columns ...[]T) ([]byte, error) {
	if _, err := Validate(columns...); err != nil {
		return dst, err
	}

	dst = append(dst, name...)
	dst = append(dst, " << "...)
	dst = append(dst, terminator...)
	dst = append(dst, '\n')

	dst, err := AppendRows(dst, layout, columns...)
	if err != nil {
		return dst, err
	}

	dst = append(dst, terminator...)

	return append(dst, '\n'), nil
}

// AppendInline appends rows followed by the "e" terminator.
func AppendInline[T Number](dst []byte, layout Layout, columns ...[]T) ([]byte, error) {
	dst, err := AppendRows(dst, layout, columns...)
	if err != nil {
		return dst, err
	}

	dst = append(dst, InlineTerminator...)

	return append(dst, '\n'), nil
}
