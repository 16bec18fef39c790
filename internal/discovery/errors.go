// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package discovery

import "errors"

// Sentinel errors for store failures, one per operation family.
var (
	ErrSearchFailed    = errors.New("failed to search points of interest")
	ErrRecommendFailed = errors.New("failed to get recommendations")
	ErrNearbyFailed    = errors.New("failed to get nearby points")
	ErrLookupFailed    = errors.New("failed to get points of interest")
)

// ValidationError reports invalid request input. Message is safe to show to users.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RepositoryError reports a failed store call.
//
// Error returns the generic message of the operation sentinel and errors.Is
// matches that sentinel. The store error is not reachable through Unwrap;
// use Cause to log it.
type RepositoryError struct {
	sentinel error
	cause    error
}

// NewRepositoryError wraps a store failure under sentinel.
func NewRepositoryError(sentinel, cause error) *RepositoryError {
	return &RepositoryError{sentinel: sentinel, cause: cause}
}

func (e *RepositoryError) Error() string {
	return e.sentinel.Error()
}

// Is reports whether target is the operation sentinel.
func (e *RepositoryError) Is(target error) bool {
	return target == e.sentinel
}

// Cause returns the underlying store error.
func (e *RepositoryError) Cause() error {
	return e.cause
}

// IsValidation reports whether err is a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsRepository reports whether err is a *RepositoryError.
func IsRepository(err error) bool {
	var re *RepositoryError
	return errors.As(err, &re)
}
