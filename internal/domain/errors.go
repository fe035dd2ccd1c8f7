package domain

import "errors"

var (
	// ErrInvalidInput rejects malformed calendar or request arguments
	// before any computation happens.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidRule marks a holiday rule that cannot resolve to a real
	// calendar date (e.g. February 30th).
	ErrInvalidRule = errors.New("invalid holiday rule")

	// ErrChargeNotFound means no charge policy exists for a tool type.
	// There is no default rate.
	ErrChargeNotFound = errors.New("charge not found")

	// ErrToolUnavailable means no tool matches the code with free stock.
	ErrToolUnavailable = errors.New("tool unavailable")

	// ErrInvalidStateTransition guards rental and agreement status changes.
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrNotFound means a referenced id does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrInventoryConflict means an inventory counter update would drive a
	// counter negative or oversubscribe the pool.
	ErrInventoryConflict = errors.New("inventory counters conflict")
)
