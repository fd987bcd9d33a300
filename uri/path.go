package uri

import (
	"github.com/uriforge/urifab/memory"
	"github.com/uriforge/urifab/text"
)

// guardedPathSegments prepares the path for a Uri about to lose its host.
// A hostless absolute path whose first segment is empty would recompose to
// "//..." and be re-parsed as an authority; prepending a "." segment turns
// it into the unambiguous "/.//...".
//
// The result is staged: the caller commits it together with the host
// removal, or discards it. An owner gets the dot segment from mm; a
// non-owner aliases a fresh unmanaged buffer, which it will never free.
func guardedPathSegments[C text.Char](u *Uri[C], mm memory.Manager[C]) ([]text.Range[C], bool, error) {
	if len(u.PathSegments) == 0 || u.PathSegments[0].Len() != 0 {
		return nil, false, nil
	}

	var dot text.Range[C]
	if u.Owner {
		buf, err := mm.Alloc(1)
		if err != nil {
			return nil, false, err
		}
		buf[0] = '.'
		dot = text.NewRange(buf)
	} else {
		dot = text.NewRange([]C{'.'})
	}

	segments := make([]text.Range[C], 0, len(u.PathSegments)+1)
	segments = append(segments, dot)
	segments = append(segments, u.PathSegments...)
	return segments, true, nil
}
