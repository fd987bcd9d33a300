package uri

import (
	"fmt"

	"github.com/uriforge/urifab/memory"
	"github.com/uriforge/urifab/text"
)

// copyRange materializes src into storage allocated from mm. A set range of
// length zero stays unbacked.
func copyRange[C text.Char](src text.Range[C], mm memory.Manager[C]) (text.Range[C], error) {
	if !src.IsSet() || src.Len() == 0 {
		return src, nil
	}
	buf, err := mm.Alloc(src.Len())
	if err != nil {
		return text.Range[C]{}, err
	}
	copy(buf, src.Chars())
	return text.NewRange(buf), nil
}

// copyRangeAsNeeded aliases src unchanged when the Uri does not own its
// ranges; an owner always gets a private copy.
func copyRangeAsNeeded[C text.Char](src text.Range[C], owner bool, mm memory.Manager[C]) (text.Range[C], error) {
	if !owner {
		return src, nil
	}
	return copyRange(src, mm)
}

// MakeOwner re-backs every range of u with storage allocated from mm and
// sets Owner. All copies are staged before the first field is written, so a
// failed allocation leaves u aliasing the original buffers with nothing
// half-copied and nothing leaked.
func (u *Uri[C]) MakeOwner(mm memory.Manager[C]) error {
	if u == nil {
		return ErrNil
	}
	if memory.Check(mm) != nil {
		return ErrNil
	}
	if u.Owner {
		return nil
	}

	fields := make([]*text.Range[C], 0, 6+len(u.PathSegments))
	fields = append(fields, &u.Scheme, &u.UserInfo, &u.HostText, &u.PortText, &u.Query, &u.Fragment)
	for i := range u.PathSegments {
		fields = append(fields, &u.PathSegments[i])
	}

	staged := make([]text.Range[C], len(fields))
	for i, f := range fields {
		cp, err := copyRange(*f, mm)
		if err != nil {
			for _, s := range staged[:i] {
				if s.Len() > 0 {
					mm.Free(s.Chars())
				}
			}
			return fmt.Errorf("%w: %v", ErrMemory, err)
		}
		staged[i] = cp
	}

	for i, f := range fields {
		*f = staged[i]
	}
	u.Owner = true
	return nil
}

// FreeMembers releases every buffer u owns and resets it to the zero value.
// Safe on non-owner URIs, whose text ranges alias storage they must not
// free; the binary address records are the Uri's own either way.
func (u *Uri[C]) FreeMembers(mm memory.Manager[C]) error {
	if u == nil {
		return ErrNil
	}
	if memory.Check(mm) != nil {
		return ErrNil
	}

	if u.Owner {
		for _, r := range []text.Range[C]{u.Scheme, u.UserInfo, u.HostText, u.PortText, u.Query, u.Fragment} {
			if r.Len() > 0 {
				mm.Free(r.Chars())
			}
		}
		for _, seg := range u.PathSegments {
			if seg.Len() > 0 {
				mm.Free(seg.Chars())
			}
		}
	}
	mm.FreeIP4(u.IP4)
	mm.FreeIP6(u.IP6)

	*u = Uri[C]{}
	return nil
}
