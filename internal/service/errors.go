package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrPasswordTooLong     = errors.New("password is longer than 72 bytes")

	ErrTokenIsExpiredOrInvalid = errors.New("invalid or expired token")
	ErrTokenCreationFailed     = errors.New("token creation failed")
)
