package view

import (
	"io"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"arraypointer/pkg/format"
	"arraypointer/pkg/input"
)

// DefaultDelimiter follows every printed element.
const DefaultDelimiter = "  "

// Print writes each element of v to w, each followed by delim. No trailing
// newline is written; callers separate successive calls themselves.
func Print[T any](w io.Writer, v View[T], render format.Func[T], delim string) error {
	for i, x := range v.All() {
		if _, err := io.WriteString(w, render(x)); err != nil {
			return errors.Wrapf(err, "write element %d", i)
		}
		if _, err := io.WriteString(w, delim); err != nil {
			return errors.Wrapf(err, "write delimiter after element %d", i)
		}
	}
	return nil
}

// Fill reads one token per element from src, in index order, and stores the
// parsed value through the view. It returns the number of elements filled.
//
// When src runs dry or yields a token that does not parse, Fill stops with an
// *InputExhaustedError. Elements filled before that point keep their values.
func Fill[T input.Number](src input.Source, v View[T]) (int, error) {
	for i := 0; i < v.Len(); i++ {
		tok, err := src.Next()
		if err != nil {
			return i, &InputExhaustedError{Filled: i, Want: v.Len(), Err: err}
		}
		x, err := input.Parse[T](tok)
		if err != nil {
			return i, &InputExhaustedError{Filled: i, Want: v.Len(), Err: err}
		}
		v.Set(i, x)
	}
	return v.Len(), nil
}

// Max returns the largest element of v. Ties keep the earliest maximum.
func Max[T constraints.Ordered](v View[T]) (T, error) {
	i, err := MaxIndex(v)
	if err != nil {
		var zero T
		return zero, err
	}
	return v.At(i), nil
}

// MaxIndex returns the index of the first occurrence of the largest element.
func MaxIndex[T constraints.Ordered](v View[T]) (int, error) {
	if v.Len() == 0 {
		return -1, ErrEmptyView
	}

	best := 0
	for i := 1; i < v.Len(); i++ {
		if v.At(i) > v.At(best) {
			best = i
		}
	}
	return best, nil
}
