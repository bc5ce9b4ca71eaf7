package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrOperatorNotFound   = errors.New("operator not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)
