package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so services can translate them into domain errors.
//
//   - ErrNotFound: the row or aggregate does not exist
//   - ErrAlreadyUsed: a uniqueness key is already taken
//   - ErrConflict: the aggregate changed since it was read (stale version)
//   - ErrInvalidState: the stored aggregate refuses the requested write
//   - ErrUnavailable: a backing service cannot be reached
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound     = errors.New("not found")
	ErrAlreadyUsed  = errors.New("already used")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)
