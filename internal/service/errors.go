package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. The two causes are deliberately indistinguishable so that
	// login attempts cannot be used to enumerate registered addresses.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrInvalidCategory = errors.New("category must be either 'A' or 'B'")
	ErrInvalidImage    = errors.New("invalid image")
)
