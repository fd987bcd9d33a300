package uri

import (
	"errors"
	"fmt"

	"github.com/uriforge/urifab/memory"
	"github.com/uriforge/urifab/syntax"
	"github.com/uriforge/urifab/text"
)

// SetHostIP4 assigns a dotted-quad host. An unset range removes the host,
// whatever its current type.
func (u *Uri[C]) SetHostIP4(host text.Range[C], mm memory.Manager[C]) error {
	return setHost(u, HostTypeIP4, host, mm)
}

// SetHostIP6 assigns an IPv6 host. The range carries the address without
// brackets, the way HostText stores it.
func (u *Uri[C]) SetHostIP6(host text.Range[C], mm memory.Manager[C]) error {
	return setHost(u, HostTypeIP6, host, mm)
}

// SetHostIPvFuture assigns an IPvFuture literal, bracketless.
func (u *Uri[C]) SetHostIPvFuture(host text.Range[C], mm memory.Manager[C]) error {
	return setHost(u, HostTypeIPvFuture, host, mm)
}

// SetHostRegName assigns a registered-name host.
func (u *Uri[C]) SetHostRegName(host text.Range[C], mm memory.Manager[C]) error {
	return setHost(u, HostTypeRegName, host, mm)
}

// RemoveHost drops the host component. The path is adjusted so that it
// cannot be mistaken for an authority when the Uri is recomposed.
func (u *Uri[C]) RemoveHost(mm memory.Manager[C]) error {
	return setHost(u, HostTypeNone, text.Range[C]{}, mm)
}

// hostState is the retained old value a commit has replaced; releaseHost
// frees what it owns.
type hostState[C text.Char] struct {
	hostText text.Range[C]
	hostType HostType
	ip4      *text.IP4
	ip6      *text.IP6
}

func takeHost[C text.Char](u *Uri[C]) hostState[C] {
	return hostState[C]{u.HostText, u.HostType, u.IP4, u.IP6}
}

// releaseHost frees the storage behind a replaced host value. The IPvFuture
// literal and HostText are one allocation, so the range is freed once no
// matter the host type; zero-length ranges have no backing and are skipped.
func releaseHost[C text.Char](old hostState[C], owner bool, mm memory.Manager[C]) {
	if owner && old.hostText.Len() > 0 {
		mm.Free(old.hostText.Chars())
	}
	mm.FreeIP4(old.ip4)
	mm.FreeIP6(old.ip6)
}

func setHost[C text.Char](u *Uri[C], hostType HostType, host text.Range[C], mm memory.Manager[C]) error {
	// superficial input validation, before making any changes
	if u == nil {
		return ErrNil
	}
	if memory.Check(mm) != nil {
		return ErrNil
	}

	// The RFC 3986 grammar reads:
	//   authority = [ userinfo "@" ] host [ ":" port ]
	// So no user info or port without a host.
	if !host.IsSet() {
		if u.UserInfo.IsSet() {
			return ErrUserInfoSet
		}
		if u.PortText.IsSet() {
			return ErrPortSet
		}
		return removeHost(u, mm)
	}

	// syntax-check the new value
	switch hostType {
	case HostTypeIP4:
		if !syntax.WellFormedHostIP4(host) {
			return ErrSyntax
		}
	case HostTypeIP6:
		if err := syntax.WellFormedHostIP6(host, mm); err != nil {
			if errors.Is(err, syntax.ErrSyntax) {
				return ErrSyntax
			}
			return fmt.Errorf("%w: %v", ErrMemory, err)
		}
	case HostTypeIPvFuture:
		if !syntax.WellFormedHostIPvFuture(host) {
			return ErrSyntax
		}
	case HostTypeRegName:
		if !syntax.WellFormedHostRegName(host) {
			return ErrSyntax
		}
	default:
		return fmt.Errorf("%w: unsupported host type %v", ErrSyntax, hostType)
	}

	// ensure owned
	if !u.Owner {
		if err := u.MakeOwner(mm); err != nil {
			return err
		}
	}

	// Stage the new value off the live object; nothing below touches u
	// until every fallible step is behind us. HostText is set for all
	// four host types.
	hostCopy, err := copyRangeAsNeeded(host, u.Owner, mm)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMemory, err)
	}

	var ip4 *text.IP4
	var ip6 *text.IP6
	switch hostType {
	case HostTypeIP4:
		ip4, err = mm.AllocIP4()
		if err != nil {
			dropCopy(hostCopy, u.Owner, mm)
			return fmt.Errorf("%w: %v", ErrMemory, err)
		}
		if perr := syntax.ParseIP4Address(ip4, host); perr != nil {
			// checked for well-formedness above; a failure here is
			// validator/parser drift
			mm.FreeIP4(ip4)
			dropCopy(hostCopy, u.Owner, mm)
			return fmt.Errorf("%w: %v", ErrSyntax, perr)
		}
	case HostTypeIP6:
		ip6, err = mm.AllocIP6()
		if err != nil {
			dropCopy(hostCopy, u.Owner, mm)
			return fmt.Errorf("%w: %v", ErrMemory, err)
		}
		if perr := syntax.ParseIP6Address(ip6, host, mm); perr != nil {
			mm.FreeIP6(ip6)
			dropCopy(hostCopy, u.Owner, mm)
			if errors.Is(perr, syntax.ErrSyntax) {
				return fmt.Errorf("%w: %v", ErrSyntax, perr)
			}
			return fmt.Errorf("%w: %v", ErrMemory, perr)
		}
	case HostTypeIPvFuture, HostTypeRegName:
		// HostText alone is the data
	}

	// commit
	old := takeHost(u)
	u.HostText = hostCopy
	u.HostType = hostType
	u.IP4 = ip4
	u.IP6 = ip6
	u.AbsolutePath = false // always false for URIs with a host

	releaseHost(old, u.Owner, mm)
	return nil
}

// dropCopy undoes a staged materialization that never got committed.
func dropCopy[C text.Char](r text.Range[C], owner bool, mm memory.Manager[C]) {
	if owner && r.Len() > 0 {
		mm.Free(r.Chars())
	}
}

func removeHost[C text.Char](u *Uri[C], mm memory.Manager[C]) error {
	if !u.HasHost() {
		return nil
	}

	segments, changed, err := guardedPathSegments(u, mm)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMemory, err)
	}

	old := takeHost(u)
	u.HostText = text.Range[C]{}
	u.HostType = HostTypeNone
	u.IP4 = nil
	u.IP6 = nil
	u.AbsolutePath = true
	if changed {
		u.PathSegments = segments
	}

	releaseHost(old, u.Owner, mm)
	return nil
}
