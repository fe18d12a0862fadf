package utils

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrInvalidPage           = errors.New("invalid page parameter")
	ErrInvalidPageSize       = errors.New("invalid page size parameter")
	ErrDatabaseError         = errors.New("database error")
	ErrUnauthenticated       = errors.New("unauthenticated")
	ErrForbidden             = errors.New("forbidden")
	ErrInvalidCategory       = errors.New("invalid category")
	ErrSelectionNotFound     = errors.New("selection not found")
	ErrPlaceNotFound         = errors.New("place not found")
	ErrInvalidSlot           = errors.New("featured slot out of range")
	ErrRegistryConflict      = errors.New("registry conflict")
	ErrWizardSessionNotFound = errors.New("wizard session not found")
	ErrStaleSubject          = errors.New("superseded by a newer request")
	ErrInvalidEvent          = errors.New("invalid event")
)

// SearchErrorKind classifies a failed search so the caller can render a
// distinguishable message per kind.
type SearchErrorKind string

const (
	SearchProviderUnavailable SearchErrorKind = "provider_unavailable"
	SearchEmptyQuery          SearchErrorKind = "empty_query"
	SearchRateLimited         SearchErrorKind = "rate_limited"
)

type SearchError struct {
	Kind  SearchErrorKind
	Cause error
}

func NewSearchError(kind SearchErrorKind, cause error) *SearchError {
	return &SearchError{Kind: kind, Cause: cause}
}

func (e *SearchError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("search: %s", e.Kind)
	}
	return fmt.Sprintf("search: %s: %v", e.Kind, e.Cause)
}

func (e *SearchError) Unwrap() error { return e.Cause }

// AsSearchError reports whether err carries a SearchError and returns it.
func AsSearchError(err error) (*SearchError, bool) {
	var se *SearchError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
