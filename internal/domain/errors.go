package domain

import "errors"

var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingToken       = errors.New("missing token")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNombreTooLong      = errors.New("nombre too long")
	ErrInternal           = errors.New("internal error")
)
