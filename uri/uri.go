// Package uri implements the URI value object and the transactional setters
// over its components. A Uri never half-changes: every fallible step of a
// mutation is staged off the object and committed only once nothing can
// fail anymore.
package uri

import (
	"strings"

	"github.com/uriforge/urifab/text"
)

type HostType int32

const (
	HostTypeNone HostType = iota
	HostTypeIP4
	HostTypeIP6
	HostTypeIPvFuture
	HostTypeRegName
)

func (t HostType) String() string {
	switch t {
	case HostTypeNone:
		return "none"
	case HostTypeIP4:
		return "ip4"
	case HostTypeIP6:
		return "ip6"
	case HostTypeIPvFuture:
		return "ipvfuture"
	case HostTypeRegName:
		return "regname"
	}
	return "invalid"
}

// Uri is a parsed URI. Text components are Ranges that either alias the
// buffer the Uri was parsed from (Owner false) or storage the Uri has
// allocated itself (Owner true).
//
// HostText carries the textual host for all four host types. For an
// IPvFuture host the literal has no storage of its own: HostText is the
// literal, represented once, so the two can never be freed apart. IP4 and
// IP6 hold the binary record for the respective host types and are nil
// otherwise.
type Uri[C text.Char] struct {
	Scheme   text.Range[C]
	UserInfo text.Range[C]

	HostText text.Range[C]
	HostType HostType
	IP4      *text.IP4
	IP6      *text.IP6

	PortText text.Range[C]

	PathSegments []text.Range[C]
	AbsolutePath bool

	Query    text.Range[C]
	Fragment text.Range[C]

	// Owner marks every Range above as backed by storage this Uri must
	// free. It flips through MakeOwner only, never per field.
	Owner bool
}

// UriA is the narrow (byte) instantiation, UriW the UTF-16 wide one.
type UriA = Uri[byte]
type UriW = Uri[uint16]

// HasHost reports whether the host component is set; the empty host of
// "//" still counts as set.
func (u *Uri[C]) HasHost() bool {
	return u.HostText.IsSet()
}

// IPvFutureRange returns the IPvFuture literal, which is HostText itself.
func (u *Uri[C]) IPvFutureRange() text.Range[C] {
	if u.HostType != HostTypeIPvFuture {
		return text.Range[C]{}
	}
	return u.HostText
}

// String recomposes the Uri for diagnostics. IP6 and IPvFuture hosts get
// their brackets back; HostText stores them bare.
func (u *Uri[C]) String() string {
	var b strings.Builder

	if u.Scheme.IsSet() {
		b.WriteString(u.Scheme.String())
		b.WriteByte(':')
	}
	if u.HasHost() {
		b.WriteString("//")
		if u.UserInfo.IsSet() {
			b.WriteString(u.UserInfo.String())
			b.WriteByte('@')
		}
		if u.HostType == HostTypeIP6 || u.HostType == HostTypeIPvFuture {
			b.WriteByte('[')
			b.WriteString(u.HostText.String())
			b.WriteByte(']')
		} else {
			b.WriteString(u.HostText.String())
		}
		if u.PortText.IsSet() {
			b.WriteByte(':')
			b.WriteString(u.PortText.String())
		}
	}
	for i, seg := range u.PathSegments {
		if i > 0 || u.AbsolutePath || u.HasHost() {
			b.WriteByte('/')
		}
		b.WriteString(seg.String())
	}
	if u.Query.IsSet() {
		b.WriteByte('?')
		b.WriteString(u.Query.String())
	}
	if u.Fragment.IsSet() {
		b.WriteByte('#')
		b.WriteString(u.Fragment.String())
	}
	return b.String()
}
