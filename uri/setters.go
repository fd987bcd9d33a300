package uri

import (
	"fmt"

	"github.com/uriforge/urifab/memory"
	"github.com/uriforge/urifab/syntax"
	"github.com/uriforge/urifab/text"
)

// SetUserInfo assigns or removes the user info component. Setting it
// requires a host (authority grammar), removal is always allowed.
func (u *Uri[C]) SetUserInfo(info text.Range[C], mm memory.Manager[C]) error {
	if u == nil {
		return ErrNil
	}
	return setComponent(u, &u.UserInfo, info, syntax.WellFormedUserInfo[C], true, mm)
}

// SetPortText assigns or removes the port component, digits only. Setting
// it requires a host.
func (u *Uri[C]) SetPortText(port text.Range[C], mm memory.Manager[C]) error {
	if u == nil {
		return ErrNil
	}
	return setComponent(u, &u.PortText, port, syntax.WellFormedPort[C], true, mm)
}

// SetScheme assigns or removes the scheme component.
func (u *Uri[C]) SetScheme(scheme text.Range[C], mm memory.Manager[C]) error {
	if u == nil {
		return ErrNil
	}
	return setComponent(u, &u.Scheme, scheme, syntax.WellFormedScheme[C], false, mm)
}

// SetQuery assigns or removes the query component, given without the "?".
func (u *Uri[C]) SetQuery(query text.Range[C], mm memory.Manager[C]) error {
	if u == nil {
		return ErrNil
	}
	return setComponent(u, &u.Query, query, syntax.WellFormedQueryFragment[C], false, mm)
}

// SetFragment assigns or removes the fragment component, given without
// the "#".
func (u *Uri[C]) SetFragment(fragment text.Range[C], mm memory.Manager[C]) error {
	if u == nil {
		return ErrNil
	}
	return setComponent(u, &u.Fragment, fragment, syntax.WellFormedQueryFragment[C], false, mm)
}

// setComponent is the shared commit protocol of the simple text setters:
// validate, promote to owner, stage the copy, swap, free the old value.
func setComponent[C text.Char](u *Uri[C], field *text.Range[C], value text.Range[C],
	wellFormed func(text.Range[C]) bool, needsHost bool, mm memory.Manager[C]) error {

	if memory.Check(mm) != nil {
		return ErrNil
	}

	staged := text.Range[C]{}
	if value.IsSet() {
		if needsHost && !u.HasHost() {
			return ErrHostNotSet
		}
		if !wellFormed(value) {
			return ErrSyntax
		}
		if !u.Owner {
			if err := u.MakeOwner(mm); err != nil {
				return err
			}
		}

		var err error
		staged, err = copyRangeAsNeeded(value, u.Owner, mm)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMemory, err)
		}
	}

	old := *field
	*field = staged
	if u.Owner && old.Len() > 0 {
		mm.Free(old.Chars())
	}
	return nil
}
