package adapter

import "errors"

var (
	// ErrHostUnavailable means the host display API could not be reached or
	// refused to serve the request.
	ErrHostUnavailable = errors.New("host display api unavailable")

	// ErrRejected means the host display API rejected the request as invalid.
	ErrRejected = errors.New("notification request rejected by host")
)
