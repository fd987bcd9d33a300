package syntax

import (
	"github.com/uriforge/urifab/text"
	"golang.org/x/net/idna"
)

// WellFormedUserInfo checks *( unreserved / pct-encoded / sub-delims / ":" ).
func WellFormedUserInfo[C text.Char](r text.Range[C]) bool {
	if !r.IsSet() {
		return false
	}
	s := r.Chars()
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isUnreserved(c) || isSubDelim(c) || c == ':':
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

// WellFormedPort checks *DIGIT. An empty port is valid ("host:" parses).
func WellFormedPort[C text.Char](r text.Range[C]) bool {
	if !r.IsSet() {
		return false
	}
	for _, c := range r.Chars() {
		if !isDigit(c) {
			return false
		}
	}
	return true
}

// WellFormedScheme checks ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func WellFormedScheme[C text.Char](r text.Range[C]) bool {
	if !r.IsSet() || r.Len() == 0 {
		return false
	}
	s := r.Chars()
	if !isAlpha(s[0]) {
		return false
	}
	for _, c := range s[1:] {
		if !isAlpha(c) && !isDigit(c) && c != '+' && c != '-' && c != '.' {
			return false
		}
	}
	return true
}

// WellFormedQueryFragment checks *( pchar / "/" / "?" ), shared by the query
// and fragment components.
func WellFormedQueryFragment[C text.Char](r text.Range[C]) bool {
	if !r.IsSet() {
		return false
	}
	s := r.Chars()
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isUnreserved(c) || isSubDelim(c) || c == ':' || c == '@' || c == '/' || c == '?':
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

// RegNameToASCII converts an internationalized host name to its ASCII
// (punycode) form. ASCII input passes through untouched so reg-names using
// sub-delims stay legal.
func RegNameToASCII(host string) (string, error) {
	ascii := true
	for i := 0; i < len(host); i++ {
		if host[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return host, nil
	}
	return idna.Lookup.ToASCII(host)
}
