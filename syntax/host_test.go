package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uriforge/urifab/text"
)

func reg(s string) text.Range[byte] {
	return text.RangeOfString[byte](s)
}

func TestWellFormedHostRegName(t *testing.T) {
	assert.True(t, WellFormedHostRegName(reg("example.com")))
	assert.True(t, WellFormedHostRegName(reg(""))) // "//" carries an empty host
	assert.True(t, WellFormedHostRegName(reg("a-b_c~d.e")))
	assert.True(t, WellFormedHostRegName(reg("www.%20example")))
	assert.True(t, WellFormedHostRegName(reg("!$&'()*+,;=")))

	assert.False(t, WellFormedHostRegName(reg("example.com/")))
	assert.False(t, WellFormedHostRegName(reg("ex ample")))
	assert.False(t, WellFormedHostRegName(reg("a:b")))
	assert.False(t, WellFormedHostRegName(reg("%2")))
	assert.False(t, WellFormedHostRegName(reg("%zz")))
	assert.False(t, WellFormedHostRegName(text.Range[byte]{}))
}

func TestWellFormedHostIPvFuture(t *testing.T) {
	assert.True(t, WellFormedHostIPvFuture(reg("v1.x")))
	assert.True(t, WellFormedHostIPvFuture(reg("V1.x")))
	assert.True(t, WellFormedHostIPvFuture(reg("vA9.future:host")))

	assert.False(t, WellFormedHostIPvFuture(reg("")))
	assert.False(t, WellFormedHostIPvFuture(reg("v.x")))
	assert.False(t, WellFormedHostIPvFuture(reg("v1.")))
	assert.False(t, WellFormedHostIPvFuture(reg("v1x")))
	assert.False(t, WellFormedHostIPvFuture(reg("x1.x")))
	assert.False(t, WellFormedHostIPvFuture(reg("v1.[]")))
	assert.False(t, WellFormedHostIPvFuture(reg("vg.x"))) // HEXDIG only before the dot
}

func TestWellFormedComponents(t *testing.T) {
	assert.True(t, WellFormedUserInfo(reg("user:pa%20ss")))
	assert.True(t, WellFormedUserInfo(reg("")))
	assert.False(t, WellFormedUserInfo(reg("user@host")))

	assert.True(t, WellFormedPort(reg("80")))
	assert.True(t, WellFormedPort(reg("")))
	assert.False(t, WellFormedPort(reg("8a")))
	assert.False(t, WellFormedPort(reg("-1")))

	assert.True(t, WellFormedScheme(reg("http")))
	assert.True(t, WellFormedScheme(reg("coap+tcp")))
	assert.True(t, WellFormedScheme(reg("x-1.2")))
	assert.False(t, WellFormedScheme(reg("")))
	assert.False(t, WellFormedScheme(reg("1http")))
	assert.False(t, WellFormedScheme(reg("ht tp")))

	assert.True(t, WellFormedQueryFragment(reg("a=1&b=/?")))
	assert.True(t, WellFormedQueryFragment(reg("")))
	assert.False(t, WellFormedQueryFragment(reg("a#b")))
	assert.False(t, WellFormedQueryFragment(reg("%g1")))
}

func TestRegNameToASCII(t *testing.T) {
	got, err := RegNameToASCII("example.com")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "example.com", got)

	// sub-delims are legal reg-name characters and must pass through
	got, err = RegNameToASCII("a!b$c")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "a!b$c", got)

	got, err = RegNameToASCII("bücher.example")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "xn--bcher-kva.example", got)
}
