package text

import "fmt"

// IP4 is the binary form of a dotted-quad host.
type IP4 struct {
	Data [4]byte
}

func (a *IP4) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", a.Data[0], a.Data[1], a.Data[2], a.Data[3])
}

// IP6 is the binary form of an IPv6 host, eight groups big-endian.
type IP6 struct {
	Data [16]byte
}

func (a *IP6) String() string {
	s := ""
	for i := 0; i < 16; i += 2 {
		if i > 0 {
			s += ":"
		}
		s += fmt.Sprintf("%x", uint16(a.Data[i])<<8|uint16(a.Data[i+1]))
	}
	return s
}
