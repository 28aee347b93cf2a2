package value

import "errors"

var (
	// ErrFrozen indicates a write to a frozen Record or Sequence.
	ErrFrozen = errors.New("value: container is frozen")

	// ErrIndexOutOfRange indicates a sequence index outside [0, Len).
	ErrIndexOutOfRange = errors.New("value: index out of range")
)
