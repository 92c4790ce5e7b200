// Package common defines shared constants and sentinel errors used across
// the vault layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrDuplicateKey     = errors.New("duplicate key")

	// Admission errors raised by the upload orchestrator.
	ErrUnsupportedType   = errors.New("unsupported file type")
	ErrSizeLimitExceeded = errors.New("file exceeds size limit")

	// Compression errors.
	ErrCompressionExhausted = errors.New("compression exhausted")
	ErrDecode               = errors.New("image decode error")

	// Auth errors.
	ErrEmptyCredentials   = errors.New("provide email and password")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotLoggedIn        = errors.New("not logged in")

	// Service-level lookup miss.
	ErrNotFound = errors.New("not found")

	// Record invariant violations.
	ErrSizeMismatch = errors.New("record size does not match payload length")
)
