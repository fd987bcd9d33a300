// Package memory defines the pluggable allocator every mutating URI
// operation runs through. Buffers and address records travel back to the
// manager that handed them out, so a tracking manager can prove that an
// operation leaked nothing and freed nothing twice.
package memory

import (
	"errors"

	"github.com/uriforge/urifab/text"
)

// ErrManager is returned when a manager fails structural validation.
var ErrManager = errors.New("memory: nil memory manager")

// Manager allocates and releases the storage behind a Uri's text ranges and
// binary address records.
//
// Free, FreeIP4 and FreeIP6 must accept nil (and zero-length buffers) as a
// no-op. A buffer passed to Free must be exactly one returned by Alloc.
type Manager[C text.Char] interface {
	Alloc(n int) ([]C, error)
	Free(buf []C)

	AllocIP4() (*text.IP4, error)
	FreeIP4(*text.IP4)

	AllocIP6() (*text.IP6, error)
	FreeIP6(*text.IP6)
}

// Check validates mm before the first allocation is attempted.
func Check[C text.Char](mm Manager[C]) error {
	if mm == nil {
		return ErrManager
	}
	return nil
}

// DefaultManager hands buffers to the garbage collector; the free methods
// are bookkeeping no-ops.
type DefaultManager[C text.Char] struct{}

var _ Manager[byte] = DefaultManager[byte]{}

func (DefaultManager[C]) Alloc(n int) ([]C, error) {
	if n < 0 {
		return nil, errors.New("memory: negative allocation size")
	}
	return make([]C, n), nil
}

func (DefaultManager[C]) Free([]C) {}

func (DefaultManager[C]) AllocIP4() (*text.IP4, error) {
	return &text.IP4{}, nil
}

func (DefaultManager[C]) FreeIP4(*text.IP4) {}

func (DefaultManager[C]) AllocIP6() (*text.IP6, error) {
	return &text.IP6{}, nil
}

func (DefaultManager[C]) FreeIP6(*text.IP6) {}
