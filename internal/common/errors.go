// Package common contains shared constants and sentinel errors used across
// campusmarket components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Validation / form errors, raised before any network call.
	ErrValidation = errors.New("validation error")

	// Auth errors.
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch    = errors.New("passwords do not match")
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrNotOwner            = errors.New("only the seller may modify this listing")
	ErrSnapshotCorrupted   = errors.New("stored session snapshot is malformed")
	ErrSessionTokenExpired = errors.New("session token expired")
)
