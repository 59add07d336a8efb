package usecase

import "errors"

var (
	// ErrPersistence wraps repository failures.
	ErrPersistence = errors.New("persistence error")
	// ErrEmailTaken signals a duplicate registration.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the response never reveals which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
