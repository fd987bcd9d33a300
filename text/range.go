package text

import "unsafe"

// Range is a half-open run of text units. The zero value is "not set", which
// is distinct from a set range of length zero: "//" parses to a host that is
// present but empty. A set range of length zero has no backing allocation.
type Range[C Char] struct {
	chars []C
	set   bool
}

// NewRange wraps chars as a set range. chars may be nil for a set but empty
// range.
func NewRange[C Char](chars []C) Range[C] {
	return Range[C]{chars: chars, set: true}
}

// RangeOfString converts s and wraps it as a set range.
func RangeOfString[C Char](s string) Range[C] {
	return NewRange(FromString[C](s))
}

func (r Range[C]) IsSet() bool {
	return r.set
}

func (r Range[C]) Len() int {
	return len(r.chars)
}

// Chars exposes the backing units. Callers that do not own the range must
// not write through the result.
func (r Range[C]) Chars() []C {
	return r.chars
}

func (r Range[C]) String() string {
	if !r.set {
		return ""
	}
	return ToString(r.chars)
}

// Equal compares presence and contents, not backing storage.
func (r Range[C]) Equal(o Range[C]) bool {
	if r.set != o.set || len(r.chars) != len(o.chars) {
		return false
	}
	for i := range r.chars {
		if r.chars[i] != o.chars[i] {
			return false
		}
	}
	return true
}

// SameBacking reports whether two set ranges cover the very same storage.
// Zero-length ranges have no storage and never share any.
func SameBacking[C Char](a, b Range[C]) bool {
	if !a.set || !b.set || len(a.chars) == 0 || len(a.chars) != len(b.chars) {
		return false
	}
	return unsafe.SliceData(a.chars) == unsafe.SliceData(b.chars)
}
