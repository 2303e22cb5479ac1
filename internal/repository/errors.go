package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// ErrResourceNotFound: the truck or load id does not exist.
	ErrResourceNotFound = errors.New("invalid truck or load")

	// ErrResourceUnavailable: the truck or load exists but is not OPEN.
	ErrResourceUnavailable = errors.New("truck or load is no longer available")

	// ErrDuplicateReference: unique violation on booking_reference_id. The
	// caller should fetch and return the existing booking instead.
	ErrDuplicateReference = errors.New("duplicate booking reference")
)
