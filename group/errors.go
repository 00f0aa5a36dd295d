package group

import "errors"

var (
	// ErrNoGenerators is returned by New when the generator slice is empty.
	// Go cannot conjure an identity value out of no elements; build the
	// trivial group with Trivial instead.
	ErrNoGenerators = errors.New("group: at least one generator required")

	// ErrNoElements is returned by FromClosedSet when the element slice is empty.
	ErrNoElements = errors.New("group: at least one element required")

	// ErrMissingIdentity is returned by FromClosedSet when the supplied set
	// does not contain the identity element.
	ErrMissingIdentity = errors.New("group: element set does not contain the identity")

	// ErrClosureExceeded is returned by New when the closure grows past the
	// cap configured with WithMaxElements.
	ErrClosureExceeded = errors.New("group: closure exceeded configured element cap")

	// ErrIndexOutOfRange is returned by Element for an index outside [0, Order).
	ErrIndexOutOfRange = errors.New("group: element index out of range")

	// ErrNotInGroup is returned by queries about an element that is not a
	// member of the group.
	ErrNotInGroup = errors.New("group: element not in group")
)
