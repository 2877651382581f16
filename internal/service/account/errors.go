package account

import "errors"

var (
	ErrBiologistNotFound = errors.New("biologist not found")
	ErrChefNotFound      = errors.New("chef service account not found")
	ErrUsernameExists    = errors.New("username already registered")
	ErrEmailExists       = errors.New("email already registered")
	ErrBiologistOwnsBags = errors.New("biologist still owns registered blood bags")
	ErrPasswordTooShort  = errors.New("password is too short")
)
