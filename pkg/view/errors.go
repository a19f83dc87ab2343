package view

import (
	"fmt"

	"github.com/pkg/errors"

	"arraypointer/internal/unsafecast"
)

var (
	// ErrInputExhausted is matched by errors returned from Fill when the input
	// source ran out of parsable values before the view was full.
	ErrInputExhausted = errors.New("input exhausted")

	// ErrEmptyView is returned by reductions that need at least one element.
	ErrEmptyView = errors.New("empty view")

	// ErrContractViolation marks a caller-side invariant breach, such as a
	// count larger than the backing storage. Refused unsafe casts report the
	// same error.
	ErrContractViolation = unsafecast.ErrContractViolation
)

// InputExhaustedError reports how far Fill got before the source failed.
// Elements [0, Filled) hold parsed values; the rest are untouched.
type InputExhaustedError struct {
	Filled int
	Want   int
	Err    error
}

func (e *InputExhaustedError) Error() string {
	return fmt.Sprintf("input exhausted after %d of %d values: %v", e.Filled, e.Want, e.Err)
}

func (e *InputExhaustedError) Unwrap() error { return e.Err }

func (e *InputExhaustedError) Is(target error) bool { return target == ErrInputExhausted }

// ContractViolationError is returned by Window for an out of range count.
type ContractViolationError struct {
	Count    int
	Capacity int
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("contract violation: count %d outside buffer of %d elements", e.Count, e.Capacity)
}

func (e *ContractViolationError) Is(target error) bool { return target == ErrContractViolation }
