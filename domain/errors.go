package domain

import (
	"errors"
	"fmt"
)

// Credential and uniqueness errors
var (
	ErrWrongPassword = errors.New("wrong password")
	ErrEmailTaken    = errors.New("email already in use")
	ErrPhoneTaken    = errors.New("phone already in use")
	ErrNameTaken     = errors.New("name already in use")
)

// Authorization errors
var (
	ErrUnauthorized = errors.New("unauthorized access")
	ErrForbidden    = errors.New("insufficient role permissions")
)

// Token failure reasons
const (
	TokenExpired   = "expired"
	TokenMalformed = "malformed"
	TokenRevoked   = "revoked"
)

// NotFoundError reports a missing entity. Role-scoped lookups return the same
// error whether the id is absent or the target's role is outside the allowed
// set, so callers cannot probe which ids exist.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// NewNotFoundError creates a NotFoundError for the named entity.
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// InvalidTokenError reports a token that failed verification, with the reason
// it failed (expired, malformed, revoked).
type InvalidTokenError struct {
	Reason string
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token: %s", e.Reason)
}

// NewInvalidTokenError creates an InvalidTokenError with the given reason.
func NewInvalidTokenError(reason string) error {
	return &InvalidTokenError{Reason: reason}
}

// IsInvalidToken reports whether err is an InvalidTokenError.
func IsInvalidToken(err error) bool {
	var it *InvalidTokenError
	return errors.As(err, &it)
}

// InvalidFieldError reports a request body field the server cannot accept:
// an unknown key, a missing required key, or a malformed value.
type InvalidFieldError struct {
	Field  string
	Reason string // "unknown", "required" or "invalid"
}

func (e *InvalidFieldError) Error() string {
	switch e.Reason {
	case "required":
		return fmt.Sprintf("field %q is required", e.Field)
	case "invalid":
		return fmt.Sprintf("field %q is invalid", e.Field)
	default:
		return fmt.Sprintf("field %q is not allowed", e.Field)
	}
}

// InvalidQueryError reports an unsupported query parameter value.
type InvalidQueryError struct {
	Param string
}

func (e *InvalidQueryError) Error() string {
	return fmt.Sprintf("invalid query parameter %q", e.Param)
}
