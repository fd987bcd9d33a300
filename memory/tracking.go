package memory

import (
	"errors"
	"unsafe"

	"github.com/uriforge/urifab/text"
)

// ErrAllocRefused is returned by a TrackingManager whose scheduled failure
// has come due.
var ErrAllocRefused = errors.New("memory: allocation refused")

// TrackingManager wraps another Manager and records every outstanding
// allocation by identity. It can refuse a scheduled allocation to drive
// failure paths. Not safe for concurrent use, like the URIs it backs.
type TrackingManager[C text.Char] struct {
	Inner Manager[C]

	countdown int
	textLive  map[*C]int
	ip4Live   map[*text.IP4]struct{}
	ip6Live   map[*text.IP6]struct{}

	Allocs   int
	Frees    int
	BadFrees int // frees of buffers not currently live (double or foreign)
}

var _ Manager[byte] = (*TrackingManager[byte])(nil)

func NewTracking[C text.Char]() *TrackingManager[C] {
	return &TrackingManager[C]{
		Inner:    DefaultManager[C]{},
		textLive: map[*C]int{},
		ip4Live:  map[*text.IP4]struct{}{},
		ip6Live:  map[*text.IP6]struct{}{},
	}
}

// FailAllocation arms the manager to refuse the nth allocation from now;
// 1 refuses the very next one. The refusal is one-shot.
func (m *TrackingManager[C]) FailAllocation(n int) {
	m.countdown = n
}

func (m *TrackingManager[C]) take() error {
	if m.countdown > 0 {
		m.countdown--
		if m.countdown == 0 {
			return ErrAllocRefused
		}
	}
	return nil
}

func (m *TrackingManager[C]) Alloc(n int) ([]C, error) {
	if err := m.take(); err != nil {
		return nil, err
	}
	buf, err := m.Inner.Alloc(n)
	if err != nil {
		return nil, err
	}
	if len(buf) > 0 {
		m.textLive[unsafe.SliceData(buf)] = len(buf)
	}
	m.Allocs++
	return buf, nil
}

func (m *TrackingManager[C]) Free(buf []C) {
	if len(buf) == 0 {
		return
	}
	p := unsafe.SliceData(buf)
	if _, ok := m.textLive[p]; !ok {
		m.BadFrees++
		return
	}
	delete(m.textLive, p)
	m.Frees++
	m.Inner.Free(buf)
}

func (m *TrackingManager[C]) AllocIP4() (*text.IP4, error) {
	if err := m.take(); err != nil {
		return nil, err
	}
	r, err := m.Inner.AllocIP4()
	if err != nil {
		return nil, err
	}
	m.ip4Live[r] = struct{}{}
	m.Allocs++
	return r, nil
}

func (m *TrackingManager[C]) FreeIP4(r *text.IP4) {
	if r == nil {
		return
	}
	if _, ok := m.ip4Live[r]; !ok {
		m.BadFrees++
		return
	}
	delete(m.ip4Live, r)
	m.Frees++
	m.Inner.FreeIP4(r)
}

func (m *TrackingManager[C]) AllocIP6() (*text.IP6, error) {
	if err := m.take(); err != nil {
		return nil, err
	}
	r, err := m.Inner.AllocIP6()
	if err != nil {
		return nil, err
	}
	m.ip6Live[r] = struct{}{}
	m.Allocs++
	return r, nil
}

func (m *TrackingManager[C]) FreeIP6(r *text.IP6) {
	if r == nil {
		return
	}
	if _, ok := m.ip6Live[r]; !ok {
		m.BadFrees++
		return
	}
	delete(m.ip6Live, r)
	m.Frees++
	m.Inner.FreeIP6(r)
}

// Outstanding reports the number of live allocations, text buffers and
// address records together.
func (m *TrackingManager[C]) Outstanding() int {
	return len(m.textLive) + len(m.ip4Live) + len(m.ip6Live)
}

// OutstandingTextUnits sums the sizes of live text buffers.
func (m *TrackingManager[C]) OutstandingTextUnits() int {
	total := 0
	for _, n := range m.textLive {
		total += n
	}
	return total
}
