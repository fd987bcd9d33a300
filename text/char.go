package text

import (
	"unicode/utf16"
	"unsafe"
)

// Char is the text unit URIs are instantiated over: byte for the narrow
// form, uint16 for the UTF-16 wide form.
type Char interface{ ~byte | ~uint16 }

func wide[C Char]() bool {
	var z C
	return unsafe.Sizeof(z) == 2
}

// FromString converts s to text units, encoding to UTF-16 for the wide form.
func FromString[C Char](s string) []C {
	if wide[C]() {
		u := utf16.Encode([]rune(s))
		out := make([]C, len(u))
		for i, c := range u {
			out[i] = C(c)
		}
		return out
	}

	out := make([]C, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = C(s[i])
	}
	return out
}

// ToString converts text units back to a string.
func ToString[C Char](chars []C) string {
	if wide[C]() {
		u := make([]uint16, len(chars))
		for i, c := range chars {
			u[i] = uint16(c)
		}
		return string(utf16.Decode(u))
	}

	b := make([]byte, len(chars))
	for i, c := range chars {
		b[i] = byte(c)
	}
	return string(b)
}
