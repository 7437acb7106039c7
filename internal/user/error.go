package user

import "errors"

var (
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("role must be customer, vendor or admin")
	ErrMissingFields      = errors.New("name, email and password are required")
)
