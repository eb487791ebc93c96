package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// CapacityError signals that a flight has no seats left. It is an
// expected outcome of booking against a full flight, not a system fault.
type CapacityError struct {
	FlightNumber string
	Err          error
}

func (e CapacityError) Error() string {
	if e.FlightNumber == "" {
		return "no seats available"
	}
	return fmt.Sprintf("no seats available on flight %s", e.FlightNumber)
}

func (e CapacityError) Unwrap() error { return e.Err }

// StateError rejects an operation that is invalid for the record's
// current status, e.g. cancelling a booking twice.
type StateError struct {
	Msg string
	Err error
}

func (e StateError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "invalid state"
}

func (e StateError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// CollisionError means booking-reference generation could not produce an
// unused reference. With a monotonic generator this is practically
// unreachable; it is surfaced rather than retried forever.
type CollisionError struct {
	Reference string
	Err       error
}

func (e CollisionError) Error() string {
	if e.Reference == "" {
		return "booking reference collision"
	}
	return fmt.Sprintf("booking reference collision: %s", e.Reference)
}

func (e CollisionError) Unwrap() error { return e.Err }

// AuthError covers failed logins and rejected tokens. The message is
// safe to return to clients as-is.
type AuthError struct {
	Msg string
	Err error
}

func (e AuthError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "unauthorized"
}

func (e AuthError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsCapacity(err error) bool {
	var target CapacityError
	return errors.As(err, &target)
}

func IsState(err error) bool {
	var target StateError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsCollision(err error) bool {
	var target CollisionError
	return errors.As(err, &target)
}

func IsAuth(err error) bool {
	var target AuthError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
