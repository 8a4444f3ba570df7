package domain

import "errors"

// Sentinel errors shared by repositories, services and controllers.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidDraft  = errors.New("invalid session draft")
	ErrInvalidFilter = errors.New("invalid filter")
	ErrOverCapacity  = errors.New("participants exceed session capacity")
	ErrNoClubs       = errors.New("no clubs available")
	ErrNoSelection   = errors.New("no session selected")
)
