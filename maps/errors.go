package maps

import "errors"

var (
	// ErrNullArgument is returned when a required map, key or data reference is absent.
	ErrNullArgument = errors.New("null argument")

	// ErrOutOfMemory is returned when a key or data copy could not be made.
	// The map is left exactly as it was before the call.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrItemDoesNotExist is returned when removing a key the map does not hold.
	ErrItemDoesNotExist = errors.New("item does not exist")

	// ErrCorrupted is returned by Validate for every broken invariant it finds.
	ErrCorrupted = errors.New("sorted map corrupted")
)
