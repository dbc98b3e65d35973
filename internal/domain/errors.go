package domain

import "errors"

// Sentinel errors for the business rules. Callers wrap them with context
// and match with errors.Is.
var (
	ErrNotFound            = errors.New("not found")
	ErrDuplicateID         = errors.New("id already in use")
	ErrConflictingSchedule = errors.New("conflicting flight schedule")
	ErrCapacityExceeded    = errors.New("flight capacity exceeded")
	ErrHasDependents       = errors.New("has dependent records")
	ErrNoResults           = errors.New("no flights matched the search criteria")
)
