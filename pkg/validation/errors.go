package validation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNumber marks a rejection caused by NaN or infinite components.
	ErrInvalidNumber = errors.New("validation: invalid number")
	// ErrOutOfRange marks a rejection caused by a declared-range violation.
	ErrOutOfRange = errors.New("validation: value out of declared range")
	// ErrUnknownPolicy is returned when a policy name cannot be parsed.
	ErrUnknownPolicy = errors.New("validation: unknown policy")
)

// Error describes a rejected value. It matches ErrInvalidNumber or
// ErrOutOfRange through errors.Is depending on Status.
type Error struct {
	Type   string
	Value  any
	Status Status
	Policy Policy
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s %v (status: %s, policy: %s)", e.kind(), e.Type, e.Value, e.Status, e.Policy)
}

func (e *Error) Unwrap() error { return e.kind() }

func (e *Error) kind() error {
	if e.Status == StatusOutOfRange {
		return ErrOutOfRange
	}
	return ErrInvalidNumber
}
