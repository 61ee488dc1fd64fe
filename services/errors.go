package services

import "errors"

// Sentinel errors mapped to HTTP statuses by the controllers. Validation
// details travel as plain errors with a reason string.
var (
	ErrForbidden = errors.New("forbidden")
	// ErrTerminal: the order is already completed or cancelled.
	ErrTerminal = errors.New("order already in a terminal state")
	// ErrConflict: the guarded status update matched zero rows, meaning a
	// concurrent transition won the race.
	ErrConflict = errors.New("status changed concurrently, re-read the order")
)
