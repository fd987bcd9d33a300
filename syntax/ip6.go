package syntax

import (
	"errors"

	"github.com/uriforge/urifab/memory"
	"github.com/uriforge/urifab/text"
)

// ParseIP6Address parses r, an IPv6 address without the surrounding
// brackets, into dst. An embedded dotted-quad tail is parsed through a
// scratch record taken from mm, so the call can fail with the manager's
// allocation error as well as with ErrSyntax.
func ParseIP6Address[C text.Char](dst *text.IP6, r text.Range[C], mm memory.Manager[C]) error {
	if dst == nil || !r.IsSet() || r.Len() == 0 {
		return ErrSyntax
	}
	if err := memory.Check(mm); err != nil {
		return err
	}
	s := r.Chars()

	// a "::" swallows one or more zero groups, so it may appear once
	gap := -1
	for i := 0; i+1 < len(s); i++ {
		if s[i] == ':' && s[i+1] == ':' {
			gap = i
			break
		}
	}

	head := s
	var rest []C
	if gap >= 0 {
		head = s[:gap]
		rest = s[gap+2:]
	}

	headGroups, err := parseIP6Part(head, gap < 0, mm)
	if err != nil {
		return err
	}
	var restGroups []uint16
	if gap >= 0 {
		restGroups, err = parseIP6Part(rest, true, mm)
		if err != nil {
			return err
		}
	}

	if gap >= 0 {
		if len(headGroups)+len(restGroups) > 7 {
			return ErrSyntax
		}
	} else if len(headGroups) != 8 {
		return ErrSyntax
	}

	dst.Data = [16]byte{}
	for i, g := range headGroups {
		dst.Data[2*i] = byte(g >> 8)
		dst.Data[2*i+1] = byte(g)
	}
	off := 16 - 2*len(restGroups)
	for i, g := range restGroups {
		dst.Data[off+2*i] = byte(g >> 8)
		dst.Data[off+2*i+1] = byte(g)
	}
	return nil
}

// parseIP6Part splits part on single colons. A dotted-quad chunk is only
// legal as the very last one and counts for two groups.
func parseIP6Part[C text.Char](part []C, allowIP4 bool, mm memory.Manager[C]) ([]uint16, error) {
	if len(part) == 0 {
		return nil, nil
	}

	var out []uint16
	start := 0
	for i := 0; i <= len(part); i++ {
		if i < len(part) && part[i] != ':' {
			continue
		}
		chunk := part[start:i]
		if len(chunk) == 0 {
			return nil, ErrSyntax // stray colon, or a second "::"
		}

		if containsDot(chunk) {
			if !allowIP4 || i != len(part) {
				return nil, ErrSyntax
			}
			scratch, err := mm.AllocIP4()
			if err != nil {
				return nil, err
			}
			perr := ParseIP4Address(scratch, text.NewRange(chunk))
			quad := scratch.Data
			mm.FreeIP4(scratch)
			if perr != nil {
				return nil, ErrSyntax
			}
			out = append(out,
				uint16(quad[0])<<8|uint16(quad[1]),
				uint16(quad[2])<<8|uint16(quad[3]))
		} else {
			g, ok := hexGroup(chunk)
			if !ok {
				return nil, ErrSyntax
			}
			out = append(out, g)
		}

		if len(out) > 8 {
			return nil, ErrSyntax
		}
		start = i + 1
	}
	return out, nil
}

func containsDot[C text.Char](chunk []C) bool {
	for _, c := range chunk {
		if c == '.' {
			return true
		}
	}
	return false
}

func hexGroup[C text.Char](chunk []C) (uint16, bool) {
	if len(chunk) < 1 || len(chunk) > 4 {
		return 0, false
	}
	var v uint16
	for _, c := range chunk {
		d := hexValue(c)
		if d < 0 {
			return 0, false
		}
		v = v<<4 | uint16(d)
	}
	return v, true
}

// WellFormedHostIP6 checks r by running the binary parser into a scratch
// record from mm, the same path the assignment itself takes. The returned
// error is ErrSyntax, or the manager's allocation error.
func WellFormedHostIP6[C text.Char](r text.Range[C], mm memory.Manager[C]) error {
	scratch, err := mm.AllocIP6()
	if err != nil {
		return err
	}
	perr := ParseIP6Address(scratch, r, mm)
	mm.FreeIP6(scratch)
	if perr != nil && !errors.Is(perr, ErrSyntax) {
		return perr
	}
	if perr != nil {
		return ErrSyntax
	}
	return nil
}
