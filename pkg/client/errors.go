package client

import "errors"

var (
	// ErrServerNotRunning is returned when no rclab server is listening
	// on the configured address
	ErrServerNotRunning = errors.New("server not running")

	// ErrNotFound is returned when 404 is returned from the server
	ErrNotFound = errors.New("404 not found")
)
