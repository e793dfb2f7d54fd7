// Package common defines shared constants and sentinel errors used across
// the TechMarket storefront packages. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound           = errors.New("not found")
	ErrStorageUnavailable = errors.New("storage unavailable")

	// Auth errors.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAlreadyRegistered  = errors.New("email already registered")

	// Form errors. validation.Errors matches this sentinel.
	ErrValidation = errors.New("validation error")
)
