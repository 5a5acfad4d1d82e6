package logcapture

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/wagiedev/gnuplot-go/internal/errors"
)

var (
	intPrefix   = regexp.MustCompile(`^[+-]?[0-9]+`)
	floatPrefix = regexp.MustCompile(`^[+-]?(?:(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?|[Ii]nf(?:inity)?|NaN)`)
)

// TokenScanner reads whitespace-delimited tokens from gnuplot output.
//
// Numeric and rune reads consume only the matching prefix of a token and
// leave the rest for the next read, so "{3.14, 2.71}" can be read as
// Rune, Float, Rune, Float.
type TokenScanner struct {
	tokens []string
	cur    string
}

// NewTokenScanner splits text into tokens.
func NewTokenScanner(text string) *TokenScanner {
	return &TokenScanner{tokens: strings.Fields(text)}
}

func (s *TokenScanner) take() (string, bool) {
	if s.cur != "" {
		t := s.cur
		s.cur = ""

		return t, true
	}

	if len(s.tokens) == 0 {
		return "", false
	}

	t := s.tokens[0]
	s.tokens = s.tokens[1:]

	return t, true
}

// Skip discards the next n tokens. A partly read token counts as one.
func (s *TokenScanner) Skip(n int) *TokenScanner {
	for range n {
		if _, ok := s.take(); !ok {
			break
		}
	}

	return s
}

// Next returns the next whole token.
func (s *TokenScanner) Next() (string, bool) {
	return s.take()
}

// String returns the next whole token or errors.ErrNoToken.
func (s *TokenScanner) String() (string, error) {
	t, ok := s.take()
	if !ok {
		return "", errors.ErrNoToken
	}

	return t, nil
}

// Rune returns the next single character.
func (s *TokenScanner) Rune() (rune, error) {
	t, ok := s.take()
	if !ok {
		return 0, errors.ErrNoToken
	}

	r, size := utf8.DecodeRuneInString(t)
	if r == utf8.RuneError && size <= 1 {
		return 0, &errors.TokenError{Token: t, Kind: "rune"}
	}

	s.cur = t[size:]

	return r, nil
}

// Int parses the leading integer of the next token.
func (s *TokenScanner) Int() (int64, error) {
	t, m, err := s.prefix(intPrefix, "int")
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		s.cur = t

		return 0, &errors.TokenError{Token: t, Kind: "int", Err: err}
	}

	return v, nil
}

// Float parses the leading floating point number of the next token.
func (s *TokenScanner) Float() (float64, error) {
	t, m, err := s.prefix(floatPrefix, "float")
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		s.cur = t

		return 0, &errors.TokenError{Token: t, Kind: "float", Err: err}
	}

	return v, nil
}

// Remaining returns the tokens not read yet.
func (s *TokenScanner) Remaining() []string {
	if s.cur == "" {
		return append([]string(nil), s.tokens...)
	}

	return append([]string{s.cur}, s.tokens...)
}

// prefix takes the next token and splits off the part matching re. On a
// mismatch the token is kept for the next read.
func (s *TokenScanner) prefix(re *regexp.Regexp, kind string) (string, string, error) {
	t, ok := s.take()
	if !ok {
		return "", "", errors.ErrNoToken
	}

	m := re.FindString(t)
	if m == "" {
		s.cur = t

		return t, "", &errors.TokenError{Token: t, Kind: kind}
	}

	s.cur = t[len(m):]

	return t, m, nil
}

// Scan fills dst from the next tokens. Supported targets are *string,
// *rune, *int, *int64, *float32 and *float64. A nil target skips a token.
func (s *TokenScanner) Scan(dst ...any) error {
	for i, d := range dst {
		var err error

		switch p := d.(type) {
		case nil:
			s.Skip(1)
		case *string:
			*p, err = s.String()
		case *rune:
			*p, err = s.Rune()
		case *int:
			var v int64
			v, err = s.Int()
			*p = int(v)
		case *int64:
			*p, err = s.Int()
		case *float32:
			var v float64
			v, err = s.Float()
			*p = float32(v)
		case *float64:
			*p, err = s.Float()
		default:
			err = fmt.Errorf("unsupported scan target %T", d)
		}

		if err != nil {
			return fmt.Errorf("scan token %d: %w", i, err)
		}
	}

	return nil
}
