package gnuplot

import (
	"fmt"
	"strconv"

	"github.com/wagiedev/gnuplot-go/internal/datablock"
	"github.com/wagiedev/gnuplot-go/internal/errors"
)

// Token is one item for Append: a Text, a Number or a Control.
// The set is closed; other packages cannot add token kinds.
type Token interface {
	token()
}

// Compile-time verification that all token kinds implement Token.
var (
	_ Token = Text("")
	_ Token = Number{}
	_ Token = Endl
)

// Text is a literal token, written as is.
type Text string

func (Text) token() {}

// Number is a numeric token. Build one with Num, Int, Uint, Float or
// Float32.
type Number struct {
	text string
}

func (Number) token() {}

// String returns the text written for the number.
func (n Number) String() string {
	return n.text
}

// Num returns a numeric token for any integer or float type.
// Floats keep a decimal point so gnuplot does not switch to integer
// arithmetic.
func Num[T Numeric](v T) Number {
	return Number{text: datablock.FormatNumber(v)}
}

// Int returns a numeric token for v.
func Int(v int) Number {
	return Number{text: strconv.Itoa(v)}
}

// Uint returns a numeric token for v.
func Uint(v uint) Number {
	return Number{text: strconv.FormatUint(uint64(v), 10)}
}

// Float returns a numeric token for v.
func Float(v float64) Number {
	return Number{text: datablock.FormatFloat(v, 64)}
}

// Float32 returns a numeric token for v, formatted at float32 precision.
func Float32(v float32) Number {
	return Number{text: datablock.FormatFloat(float64(v), 32)}
}

// Control is a stream action carried through Append.
type Control uint8

const (
	// Endl writes a newline and flushes the pipe.
	Endl Control = iota + 1
	// Sync flushes the pipe without writing anything.
	Sync
)

func (Control) token() {}

func (c Control) String() string {
	switch c {
	case Endl:
		return "endl"
	case Sync:
		return "sync"
	default:
		return "control(" + strconv.Itoa(int(c)) + ")"
	}
}

// Append writes tokens in order. Text and numbers are each preceded by a
// single space and no newline is added; Endl and Sync act on the stream.
// A nil token or a Control other than Endl and Sync fails with
// ErrUnknownToken before anything is written.
//
//	g.Append(gnuplot.Text("x="), gnuplot.Int(314159), gnuplot.Endl)
func (g *Gnuplot) Append(tokens ...Token) error {
	for i, tok := range tokens {
		if !known(tok) {
			return fmt.Errorf("token %d (%v): %w", i, tok, errors.ErrUnknownToken)
		}
	}

	var buf []byte

	for _, tok := range tokens {
		switch t := tok.(type) {
		case Text:
			buf = append(buf, ' ')
			buf = append(buf, t...)
		case Number:
			buf = append(buf, ' ')
			buf = append(buf, t.text...)
		case Control:
			if t == Endl {
				buf = append(buf, '\n')
			}

			if err := g.proc.WriteAndFlush(buf); err != nil {
				return err
			}

			buf = buf[:0]
		}
	}

	if len(buf) == 0 {
		return nil
	}

	_, err := g.proc.Write(buf)

	return err
}

func known(tok Token) bool {
	switch t := tok.(type) {
	case Text, Number:
		return true
	case Control:
		return t == Endl || t == Sync
	default:
		return false
	}
}
