package abilitykit

import (
	"errors"
	"fmt"
)

// Sentinel errors for abilitykit operations.
//
// None of these cross the decision boundary: Can, Cannot, RulesFor and
// CanModifyUser always resolve to a safe deny instead of failing. Errors
// surface only on the edges (validation, session refresh, HTTP gating).
var (
	// ErrMalformedPermission is returned when a backend permission string
	// cannot be parsed into resource, action and scope.
	ErrMalformedPermission = errors.New("abilitykit: malformed permission")

	// ErrUnknownScope is returned when a permission string carries a scope
	// token outside the scope table.
	ErrUnknownScope = errors.New("abilitykit: unknown scope")

	// ErrUnknownRole is returned when a preset lookup is attempted with a
	// role that has no preset policy.
	ErrUnknownRole = errors.New("abilitykit: unknown role")

	// ErrSourceUnavailable is returned when the session source cannot
	// deliver a snapshot; the previous ability stays in place.
	ErrSourceUnavailable = errors.New("abilitykit: session source unavailable")

	// ErrNoAbility is returned by the middleware when no ability is
	// attached to the request or session.
	ErrNoAbility = errors.New("abilitykit: no ability available")

	// ErrForbidden is returned by the middleware when the ability denies
	// the required action.
	ErrForbidden = errors.New("abilitykit: forbidden")
)

// Error wraps a sentinel error with additional context.
type Error struct {
	Err        error  // Underlying sentinel error
	Message    string // Additional context
	Permission string // Raw permission string involved (if applicable)
	Role       string // Role involved (if applicable)
	UserID     string // User involved (if applicable)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is checks if the error matches a target error.
func (e *Error) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewError creates a new Error with context.
func NewError(err error, message string) *Error {
	return &Error{
		Err:     err,
		Message: message,
	}
}

// WithPermission adds the raw permission string to the error.
func (e *Error) WithPermission(permission string) *Error {
	e.Permission = permission
	return e
}

// WithRole adds role information to the error.
func (e *Error) WithRole(role string) *Error {
	e.Role = role
	return e
}

// WithUser adds user information to the error.
func (e *Error) WithUser(userID string) *Error {
	e.UserID = userID
	return e
}

// IsMalformedPermission checks if an error is due to an unparseable
// permission string.
func IsMalformedPermission(err error) bool {
	return errors.Is(err, ErrMalformedPermission)
}

// IsUnknownScope checks if an error is due to a scope token outside the
// scope table.
func IsUnknownScope(err error) bool {
	return errors.Is(err, ErrUnknownScope)
}

// IsSourceUnavailable checks if an error is due to a failed session
// snapshot.
func IsSourceUnavailable(err error) bool {
	return errors.Is(err, ErrSourceUnavailable)
}

// IsForbidden checks if an error is an authorization denial.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}
