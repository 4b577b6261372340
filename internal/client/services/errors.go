package services

import "errors"

var (
	// ErrValidation means the input failed the local checks; the returned
	// FieldErrors say which fields.
	ErrValidation = errors.New("validation failed")
	// ErrUserNotFound means no user record has been saved yet.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials means the stored record does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
