// Package input supplies whitespace-delimited numeric tokens to view.Fill.
package input

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"unsafe"

	"github.com/pkg/errors"
)

// Number is the set of element types Fill knows how to parse.
type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Source yields one token per call and io.EOF once it has nothing left.
type Source interface {
	Next() (string, error)
}

// Scanner reads whitespace-delimited tokens from an io.Reader.
type Scanner struct {
	s *bufio.Scanner
}

// NewScanner creates a new token scanner over r
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &Scanner{s: s}
}

// Next returns the next token, io.EOF at end of input, or the read error.
func (s *Scanner) Next() (string, error) {
	if s.s.Scan() {
		return s.s.Text(), nil
	}
	if err := s.s.Err(); err != nil {
		return "", errors.Wrap(err, "read token")
	}
	return "", io.EOF
}

// Tokens is a Source over an in-memory token list, e.g. command line arguments.
type Tokens struct {
	toks []string
	pos  int
}

// FromStrings creates a Source that yields toks in order.
func FromStrings(toks ...string) *Tokens {
	return &Tokens{toks: toks}
}

func (t *Tokens) Next() (string, error) {
	if t.pos >= len(t.toks) {
		return "", io.EOF
	}
	tok := t.toks[t.pos]
	t.pos++
	return tok, nil
}

// Collect drains src and returns every token it yielded. A limit above zero
// caps the number of tokens; one more token than that is an error.
func Collect(src Source, limit int) ([]string, error) {
	var toks []string
	for {
		tok, err := src.Next()
		if err == io.EOF {
			return toks, nil
		}
		if err != nil {
			return toks, err
		}
		if limit > 0 && len(toks) == limit {
			return toks, errors.Errorf("more than %d tokens", limit)
		}
		toks = append(toks, tok)
	}
}

// Parse converts a decimal token to T, honouring T's bit size so that
// out-of-range values fail instead of wrapping. NaN is refused because it has
// no place in the ordering Max relies on; infinities are accepted.
func Parse[T Number](tok string) (T, error) {
	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8

	switch any(zero).(type) {
	case float32, float64:
		f, err := strconv.ParseFloat(tok, bits)
		if err != nil {
			return zero, errors.Wrapf(err, "parse %T", zero)
		}
		if math.IsNaN(f) {
			return zero, errors.Errorf("parse %T: %q is not a number", zero, tok)
		}
		return T(f), nil
	case int, int8, int16, int32, int64:
		n, err := strconv.ParseInt(tok, 10, bits)
		if err != nil {
			return zero, errors.Wrapf(err, "parse %T", zero)
		}
		return T(n), nil
	default:
		n, err := strconv.ParseUint(tok, 10, bits)
		if err != nil {
			return zero, errors.Wrapf(err, "parse %T", zero)
		}
		return T(n), nil
	}
}

// Prompt asks for n values on w.
func Prompt(w io.Writer, n int) error {
	_, err := fmt.Fprintf(w, "enter %d values: ", n)
	return err
}
