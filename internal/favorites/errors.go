package favorites

import "errors"

// Sentinel errors for the favorites package.
var (
	// ErrInvalidID is returned when a favorite id is absent or not positive.
	ErrInvalidID = errors.New("favorite id must be a positive number")

	// ErrLimitExceeded is returned when a session already holds the maximum
	// number of distinct favorites.
	ErrLimitExceeded = errors.New("favorites limit exceeded")

	// ErrMissingSession is returned when the caller supplies an empty session
	// id. The session layer is expected to always provide one.
	ErrMissingSession = errors.New("session id is missing")
)
