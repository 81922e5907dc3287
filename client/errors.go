package client

import "errors"

var (
	// ErrNotAuthenticated is returned when a progress mutation is attempted
	// with no active identity. No network call is issued.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrMutationFailed wraps the cause of a failed progress update. The
	// optimistic value has already been rolled back when this is returned.
	ErrMutationFailed = errors.New("progress update failed")
)
