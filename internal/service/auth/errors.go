package auth

import "errors"

// Common authentication errors
var (
	// ErrPasswordMismatch indicates the supplied password does not match the stored digest
	ErrPasswordMismatch = errors.New("password does not match")

	// ErrPasswordTooLong indicates the password exceeds bcrypt's 72 byte input limit
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes long")
)
