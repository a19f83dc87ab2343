// Package unsafecast provides checked reinterpretation of memory between
// pointee types. Every cast verifies size and alignment before handing out a
// pointer of the new type; a cast that would read past the original storage is
// refused with ErrContractViolation.
package unsafecast

import (
	"unsafe"

	"github.com/pkg/errors"
)

// ErrContractViolation is returned for any cast the size or alignment checks
// refuse.
var ErrContractViolation = errors.New("contract violation")

// Sizeof returns the size of T in bytes.
func Sizeof[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// Alignof returns the required alignment of T in bytes.
func Alignof[T any]() uintptr {
	var zero T
	return unsafe.Alignof(zero)
}

// Pointer reinterprets p as a pointer to To. It fails when To is wider than
// From, since dereferencing the result would read memory p does not own, or
// when p is not suitably aligned for To.
func Pointer[From, To any](p *From) (*To, error) {
	if p == nil {
		return nil, errors.Wrap(ErrContractViolation, "nil pointer")
	}
	fromSize, toSize := Sizeof[From](), Sizeof[To]()
	if toSize > fromSize {
		return nil, errors.Wrapf(ErrContractViolation,
			"cannot view %d-byte %T as %d-byte %T", fromSize, *p, toSize, *new(To))
	}
	if addr := uintptr(unsafe.Pointer(p)); addr%Alignof[To]() != 0 {
		return nil, errors.Wrapf(ErrContractViolation,
			"address %#x is not %d-byte aligned", addr, Alignof[To]())
	}
	return (*To)(unsafe.Pointer(p)), nil
}

// Slice reinterprets a slice of one type as a slice of another type. No
// element conversion is performed; the result shares memory with in.
//
// The length and capacity of the output slice are scaled according to the
// sizes of the From and To types. The byte length of in must be a whole
// number of To elements.
func Slice[From, To any](in []From) ([]To, error) {
	var (
		fromSize = int(Sizeof[From]())
		toSize   = int(Sizeof[To]())
	)
	if toSize == 0 {
		return nil, errors.Wrap(ErrContractViolation, "zero-sized target type")
	}
	if len(in) == 0 {
		return nil, nil
	}

	n := len(in) * fromSize
	if n%toSize != 0 {
		return nil, errors.Wrapf(ErrContractViolation,
			"%d bytes is not a multiple of the %d-byte target element", n, toSize)
	}
	data := unsafe.SliceData(in)
	if addr := uintptr(unsafe.Pointer(data)); addr%Alignof[To]() != 0 {
		return nil, errors.Wrapf(ErrContractViolation,
			"address %#x is not %d-byte aligned", addr, Alignof[To]())
	}

	toLen := n / toSize
	toCap := cap(in) * fromSize / toSize
	out := (*To)(unsafe.Pointer(data))
	return unsafe.Slice(out, toCap)[:toLen], nil
}
