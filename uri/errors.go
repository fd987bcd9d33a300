package uri

import "errors"

// Every failed operation leaves the Uri exactly as it was before the call.
var (
	// ErrNil flags a malformed call: nil Uri or a manager that fails
	// structural validation.
	ErrNil = errors.New("uri: nil uri or memory manager")

	// ErrUserInfoSet blocks removing a host while user info still
	// depends on it.
	ErrUserInfoSet = errors.New("uri: user info set, host cannot be removed")

	// ErrPortSet blocks removing a host while a port still depends on it.
	ErrPortSet = errors.New("uri: port set, host cannot be removed")

	// ErrHostNotSet blocks setting user info or a port on a hostless Uri.
	ErrHostNotSet = errors.New("uri: host not set")

	// ErrSyntax rejects an ill-formed component value.
	ErrSyntax = errors.New("uri: invalid syntax")

	// ErrMemory reports an allocation failure during commit.
	ErrMemory = errors.New("uri: out of memory")
)
