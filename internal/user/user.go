package user

import "errors"

// User is an account used for authentication lookup.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
}

// ErrInvalidCredentials covers both an unknown email and a wrong password.
// Anything else coming out of Authenticate is unexpected and re-signaled
// as-is rather than masked as a credentials failure.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError is a recoverable registration failure carrying a
// user-facing message; the caller redisplays the form with it.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
