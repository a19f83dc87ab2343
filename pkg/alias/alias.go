// Package alias shows what a pointer holds, what it points at, and why a
// pointer to a narrow integer cannot be silently treated as a pointer to a
// wider float.
package alias

import (
	"fmt"
	"io"
	"unsafe"

	"github.com/dustin/go-humanize"

	"arraypointer/internal/unsafecast"
)

// Report captures one inspection of an int32 variable.
type Report struct {
	Addr      uintptr // address held by the pointer, equal to &a
	Value     int32
	Size      uintptr
	AsFloat64 *float64 // nil when the reinterpretation was refused
	Err       error    // why AsFloat64 is nil
	Raw       []byte   // the bytes of *a in memory order, shared with a
}

// Inspect takes the address of *a and tries to view it as a float64.
func Inspect(a *int32) Report {
	p := a
	pd, err := unsafecast.Pointer[int32, float64](p)
	// Narrowing to bytes always passes the size and alignment checks.
	raw, _ := unsafecast.Slice[int32, byte](unsafe.Slice(p, 1))
	return Report{
		Addr:      uintptr(unsafe.Pointer(p)),
		Value:     *p,
		Size:      unsafecast.Sizeof[int32](),
		AsFloat64: pd,
		Err:       err,
		Raw:       raw,
	}
}

// Describe writes the inspection of *a to w. Addresses are printed with %p,
// never through an integer verb.
func Describe(w io.Writer, a *int32) error {
	r := Inspect(a)

	lines := []string{
		fmt.Sprintf("p   = %p", a),
		fmt.Sprintf("*p  = %d", r.Value),
		fmt.Sprintf("&a  = %p", a),
		fmt.Sprintf("len = %s", humanize.IBytes(uint64(r.Size))),
		fmt.Sprintf("raw = % x", r.Raw),
	}
	if r.Err != nil {
		lines = append(lines, fmt.Sprintf("pd  = refused (%v)", r.Err))
	} else {
		lines = append(lines, fmt.Sprintf("pd  = %p", r.AsFloat64), fmt.Sprintf("*pd = %g", *r.AsFloat64))
	}

	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
