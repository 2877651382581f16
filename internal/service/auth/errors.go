package auth

import "errors"

var (
	ErrUserNotFound       = errors.New("no account with this username")
	ErrInvalidCredentials = errors.New("username or password is incorrect")
	ErrUsernameExists     = errors.New("username already registered")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrMissingFields      = errors.New("missing required fields")
)
