// Package view implements a bounded, non-owning view over a caller's buffer
// and the traversals run over it: printing, filling from an input source and
// scanning for the maximum.
//
// A View never owns or resizes the storage it describes. Callers typically
// declare a fixed-size array on their own frame and hand out view.New(ary[:]);
// the view must not be kept past that call.
package view

import (
	"iter"
)

// View is a base location paired with an element count. Unlike a raw pointer
// and a separately passed length, the count is carried by the slice header and
// can never exceed the backing storage.
type View[T any] struct {
	buf []T
}

// New returns a view over every element of buf.
func New[T any](buf []T) View[T] {
	return View[T]{buf: buf}
}

// Window returns a view over the first count elements of buf. A count outside
// [0, len(buf)] is a caller contract violation.
func Window[T any](buf []T, count int) (View[T], error) {
	if count < 0 || count > len(buf) {
		return View[T]{}, &ContractViolationError{Count: count, Capacity: len(buf)}
	}
	return View[T]{buf: buf[:count:count]}, nil
}

// Len returns the number of elements reachable through the view.
func (v View[T]) Len() int {
	return len(v.buf)
}

// At returns the element at index i. It panics when i is outside [0, Len()).
func (v View[T]) At(i int) T {
	return v.buf[i]
}

// Set stores x at index i. The write is visible to the owner of the storage.
func (v View[T]) Set(i int, x T) {
	v.buf[i] = x
}

// All yields index/element pairs in increasing index order.
func (v View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < len(v.buf); i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Clone copies the viewed elements into a new slice that does not share
// memory with the original storage.
func (v View[T]) Clone() []T {
	c := make([]T, len(v.buf))
	copy(c, v.buf)
	return c
}
