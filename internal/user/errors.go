package user

import (
	"errors"
	"fmt"
)

// ErrInvalidDateRange is returned by birth-date range queries whose lower
// bound falls after the upper bound. The message is client-facing.
var ErrInvalidDateRange = errors.New("The 'from' date must be before the 'to' date")

// NotFoundError is returned by lookups, updates and deletes when no record
// matches the given email.
type NotFoundError struct {
	Email string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Could not find user %s", e.Email)
}

// MinimumAgeError is returned when a date of birth fails the minimum-age
// rule on create, replace, or a date-changing partial update.
type MinimumAgeError struct {
	MinimumAge int
}

func (e *MinimumAgeError) Error() string {
	return fmt.Sprintf("User must be at least %d years old", e.MinimumAge)
}
