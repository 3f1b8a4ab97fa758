package errors

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrInvalidID      = errors.New("invalid user id format")
	ErrInvalidToken   = errors.New("invalid token")
	ErrInternal       = errors.New("internal server error")
)
