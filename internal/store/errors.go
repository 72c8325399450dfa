package store

import "errors"

// Error taxonomy surfaced by store operations. Front-ends map these to
// their own failure responses; background tasks treat ErrRoomNotFound
// as a no-op.
var (
	ErrRoomNotFound = errors.New("room not found")
	ErrForbidden    = errors.New("not authorized")
	ErrValidation   = errors.New("validation failed")
)
