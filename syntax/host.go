package syntax

import (
	"github.com/uriforge/urifab/text"
)

// WellFormedHostRegName checks reg-name:
//
//	*( unreserved / pct-encoded / sub-delims )
//
// The empty reg-name is valid; "//" alone carries one.
func WellFormedHostRegName[C text.Char](r text.Range[C]) bool {
	if !r.IsSet() {
		return false
	}
	s := r.Chars()
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isUnreserved(c) || isSubDelim(c):
		case c == '%':
			if !pctEncoded(s, i) {
				return false
			}
			i += 2
		default:
			return false
		}
	}
	return true
}

// WellFormedHostIPvFuture checks the bracketless literal:
//
//	"v" 1*HEXDIG "." 1*( unreserved / sub-delims / ":" )
func WellFormedHostIPvFuture[C text.Char](r text.Range[C]) bool {
	if !r.IsSet() {
		return false
	}
	s := r.Chars()
	if len(s) < 4 || (s[0] != 'v' && s[0] != 'V') {
		return false
	}

	i := 1
	for i < len(s) && hexValue(s[i]) >= 0 {
		i++
	}
	if i == 1 || i >= len(s) || s[i] != '.' {
		return false
	}
	i++
	if i == len(s) {
		return false
	}
	for ; i < len(s); i++ {
		c := s[i]
		if !isUnreserved(c) && !isSubDelim(c) && c != ':' {
			return false
		}
	}
	return true
}
