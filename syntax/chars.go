// Package syntax holds the RFC 3986 well-formedness checks and the binary
// address parsers consumed by the uri package's setters.
package syntax

import (
	"errors"

	"github.com/uriforge/urifab/text"
)

// ErrSyntax is returned (or wrapped) for every ill-formed component.
var ErrSyntax = errors.New("syntax: ill-formed component")

func hexValue[C text.Char](c C) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

func isDigit[C text.Char](c C) bool {
	return c >= '0' && c <= '9'
}

func isAlpha[C text.Char](c C) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// unreserved = ALPHA / DIGIT / "-" / "." / "_" / "~"
func isUnreserved[C text.Char](c C) bool {
	return isAlpha(c) || isDigit(c) || c == '-' || c == '.' || c == '_' || c == '~'
}

// sub-delims = "!" / "$" / "&" / "'" / "(" / ")" / "*" / "+" / "," / ";" / "="
func isSubDelim[C text.Char](c C) bool {
	switch c {
	case '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	}
	return false
}

// pctEncoded reports whether s[i:] starts with a valid pct-encoded triplet.
func pctEncoded[C text.Char](s []C, i int) bool {
	return s[i] == '%' && i+2 < len(s) && hexValue(s[i+1]) >= 0 && hexValue(s[i+2]) >= 0
}
