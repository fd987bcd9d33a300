package syntax

import (
	"github.com/uriforge/urifab/text"
)

// ParseIP4Address parses a dotted-quad literal into dst. Each octet is
// 0-255 in decimal with no leading zero. Callers validate first, so a
// failure here means the validator and this parser have drifted apart.
func ParseIP4Address[C text.Char](dst *text.IP4, r text.Range[C]) error {
	if dst == nil || !r.IsSet() {
		return ErrSyntax
	}
	s := r.Chars()

	value, digits, octet := 0, 0, 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '.' {
			if digits == 0 || octet == 4 {
				return ErrSyntax
			}
			dst.Data[octet] = byte(value)
			octet++
			value, digits = 0, 0
			continue
		}

		c := s[i]
		if !isDigit(c) {
			return ErrSyntax
		}
		if digits == 1 && value == 0 {
			return ErrSyntax // leading zero
		}
		value = value*10 + int(c-'0')
		digits++
		if digits > 3 || value > 255 {
			return ErrSyntax
		}
	}

	if octet != 4 {
		return ErrSyntax
	}
	return nil
}

// WellFormedHostIP4 reports whether r is a valid dotted-quad host.
func WellFormedHostIP4[C text.Char](r text.Range[C]) bool {
	var scratch text.IP4
	return ParseIP4Address(&scratch, r) == nil
}
