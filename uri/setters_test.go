package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uriforge/urifab/memory"
	"github.com/uriforge/urifab/text"
)

func TestSettersComposeAuthority(t *testing.T) {
	mm := memory.NewTracking[byte]()
	var u UriA

	require.NoError(t, u.SetScheme(r("https"), mm))
	require.NoError(t, u.SetHostRegName(r("example.com"), mm))
	require.NoError(t, u.SetUserInfo(r("alice"), mm))
	require.NoError(t, u.SetPortText(r("8443"), mm))
	require.NoError(t, u.SetQuery(r("q=1"), mm))
	require.NoError(t, u.SetFragment(r("top"), mm))

	assert.Equal(t, "https://alice@example.com:8443?q=1#top", u.String())

	require.NoError(t, u.FreeMembers(mm))
	assert.Equal(t, 0, mm.Outstanding())
	assert.Equal(t, 0, mm.BadFrees)
}

func TestSettersRequireHost(t *testing.T) {
	mm := memory.NewTracking[byte]()
	var u UriA

	// authority grammar: no user info or port without a host
	assert.ErrorIs(t, u.SetUserInfo(r("alice"), mm), ErrHostNotSet)
	assert.ErrorIs(t, u.SetPortText(r("80"), mm), ErrHostNotSet)
	assert.Equal(t, UriA{}, u)
	assert.Equal(t, 0, mm.Outstanding())

	// removal does not need a host
	require.NoError(t, u.SetUserInfo(text.Range[byte]{}, mm))
	require.NoError(t, u.SetPortText(text.Range[byte]{}, mm))
}

func TestSettersRejectSyntax(t *testing.T) {
	mm := memory.NewTracking[byte]()
	var u UriA
	require.NoError(t, u.SetHostRegName(r("example.com"), mm))

	assert.ErrorIs(t, u.SetPortText(r("8a"), mm), ErrSyntax)
	assert.ErrorIs(t, u.SetUserInfo(r("a@b"), mm), ErrSyntax)
	assert.ErrorIs(t, u.SetScheme(r("1http"), mm), ErrSyntax)
	assert.ErrorIs(t, u.SetQuery(r("a#b"), mm), ErrSyntax)
	assert.ErrorIs(t, u.SetFragment(r("%zz"), mm), ErrSyntax)

	assert.False(t, u.UserInfo.IsSet())
	assert.False(t, u.PortText.IsSet())

	require.NoError(t, u.FreeMembers(mm))
	assert.Equal(t, 0, mm.Outstanding())
}

func TestSetterReplaceFreesOldValue(t *testing.T) {
	mm := memory.NewTracking[byte]()
	var u UriA
	require.NoError(t, u.SetHostRegName(r("example.com"), mm))
	require.NoError(t, u.SetPortText(r("80"), mm))
	before := mm.Outstanding()

	require.NoError(t, u.SetPortText(r("8080"), mm))
	assert.Equal(t, "8080", u.PortText.String())
	assert.Equal(t, before, mm.Outstanding())
	assert.Equal(t, 0, mm.BadFrees)

	require.NoError(t, u.FreeMembers(mm))
	assert.Equal(t, 0, mm.Outstanding())
}

func TestSetterAtomicOnAllocationFailure(t *testing.T) {
	mm := memory.NewTracking[byte]()
	var u UriA
	require.NoError(t, u.SetHostRegName(r("example.com"), mm))
	snap := u
	outstanding := mm.Outstanding()

	mm.FailAllocation(1)
	assert.ErrorIs(t, u.SetUserInfo(r("alice"), mm), ErrMemory)
	assert.Equal(t, snap, u)
	assert.Equal(t, outstanding, mm.Outstanding())

	require.NoError(t, u.FreeMembers(mm))
	assert.Equal(t, 0, mm.Outstanding())
}

func TestSettersNilArguments(t *testing.T) {
	var u *UriA
	assert.ErrorIs(t, u.SetUserInfo(r("alice"), memory.DefaultManager[byte]{}), ErrNil)

	var ok UriA
	assert.ErrorIs(t, ok.SetScheme(r("http"), nil), ErrNil)
}
