package types

import "errors"

// Failure taxonomy shared by the stores and the HTTP boundary. The
// kinds are never collapsed: the boundary maps each one to a distinct
// status so clients can tell "not logged in" from "not allowed" from
// "doesn't exist" from "bad input".
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("record not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrDuplicateEmail  = errors.New("email already exists")

	// ErrIntegrity marks states the schema should make impossible,
	// such as a rollup whose project row has vanished.
	ErrIntegrity = errors.New("integrity violation")
)
