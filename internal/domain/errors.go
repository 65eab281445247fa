package domain

import "errors"

// Failure kinds for the auth path. Handlers branch on these instead of on
// error message strings.
var (
	// ErrInvalidInput means the request failed server-side validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownIdentity means no credential record exists for the email.
	ErrUnknownIdentity = errors.New("unknown identity")

	// ErrInvalidCredential means the record exists but the password does not match.
	ErrInvalidCredential = errors.New("invalid credential")

	// ErrEmailTaken means a signup collided with an existing record.
	ErrEmailTaken = errors.New("email already registered")

	// ErrStoreUnavailable wraps connectivity failures of the credential store.
	ErrStoreUnavailable = errors.New("credential store unavailable")
)
