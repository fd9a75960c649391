package store

import "errors"

var (
	// ErrUsernameTaken reports a registration against an existing username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrEmailTaken reports a registration against an existing email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so a caller cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrNoAccount reports an operation against an account id that does
	// not exist.
	ErrNoAccount = errors.New("account not found")
)
