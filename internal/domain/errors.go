package domain

import "errors"

var (
	ErrMalformedTime      = errors.New("malformed time, expected HH:MM")
	ErrMalformedDate      = errors.New("malformed date, expected YYYY-MM-DD")
	ErrShiftExceedsCap    = errors.New("shift exceeds max shift hours")
	ErrInvariantViolation = errors.New("invariant violation")
)
