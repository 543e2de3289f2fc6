package domain

import "go.trai.ch/zerr"

var (
	// ErrUnsupportedObject is returned when an object of an unknown kind is
	// passed to an engine entry point. This is a programming error, not a
	// user-facing condition.
	ErrUnsupportedObject = zerr.New("unsupported object kind")

	// ErrItemAlreadyExists is returned when adding an item whose reference
	// is already present in the collection.
	ErrItemAlreadyExists = zerr.New("item already exists")

	// ErrLayoutAlreadyExists is returned when adding a layout whose
	// reference is already present in the collection.
	ErrLayoutAlreadyExists = zerr.New("layout already exists")

	// ErrInvalidPattern is returned when a collection dependency predicate
	// cannot be compiled.
	ErrInvalidPattern = zerr.New("invalid membership pattern")
)
