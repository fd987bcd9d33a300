package uri

import (
	"fmt"
	"strings"

	"github.com/uriforge/urifab/memory"
	"github.com/uriforge/urifab/syntax"
	"github.com/uriforge/urifab/text"
)

// SetHostFromString classifies host and dispatches to the matching typed
// setter: a bracketed literal is IPv6 or IPvFuture, a dotted quad is IPv4,
// anything else is a registered name. Internationalized names are converted
// to their ASCII form first.
func (u *Uri[C]) SetHostFromString(host string, mm memory.Manager[C]) error {
	if strings.HasPrefix(host, "[") && strings.HasSuffix(host, "]") && len(host) >= 2 {
		inner := host[1 : len(host)-1]
		if len(inner) > 0 && (inner[0] == 'v' || inner[0] == 'V') {
			return u.SetHostIPvFuture(text.RangeOfString[C](inner), mm)
		}
		return u.SetHostIP6(text.RangeOfString[C](inner), mm)
	}

	r := text.RangeOfString[C](host)
	if syntax.WellFormedHostIP4(r) {
		return u.SetHostIP4(r, mm)
	}

	ascii, err := syntax.RegNameToASCII(host)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return u.SetHostRegName(text.RangeOfString[C](ascii), mm)
}
