package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringConversion(t *testing.T) {
	assert.Equal(t, []byte("host"), FromString[byte]("host"))
	assert.Equal(t, "host", ToString([]byte("host")))

	w := FromString[uint16]("höst")
	assert.Equal(t, []uint16{'h', 0xf6, 's', 't'}, w)
	assert.Equal(t, "höst", ToString(w))

	// surrogate pairs survive the round trip
	s := "a\U0001F600b"
	assert.Equal(t, s, ToString(FromString[uint16](s)))
}

func TestRangePresence(t *testing.T) {
	var unset Range[byte]
	assert.False(t, unset.IsSet())
	assert.Equal(t, 0, unset.Len())
	assert.Equal(t, "", unset.String())

	empty := NewRange[byte](nil)
	assert.True(t, empty.IsSet())
	assert.Equal(t, 0, empty.Len())

	assert.False(t, unset.Equal(empty))
	assert.True(t, empty.Equal(NewRange([]byte{})))

	r := RangeOfString[byte]("example.com")
	assert.True(t, r.IsSet())
	assert.Equal(t, "example.com", r.String())
	assert.True(t, r.Equal(RangeOfString[byte]("example.com")))
	assert.False(t, r.Equal(RangeOfString[byte]("example.org")))
}

func TestSameBacking(t *testing.T) {
	buf := []byte("v1.x")
	a := NewRange(buf)
	b := NewRange(buf)
	assert.True(t, SameBacking(a, b))

	c := RangeOfString[byte]("v1.x")
	assert.True(t, a.Equal(c))
	assert.False(t, SameBacking(a, c))

	// empty ranges have no storage to share
	assert.False(t, SameBacking(NewRange[byte](nil), NewRange[byte](nil)))
}
