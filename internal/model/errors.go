package model

import "errors"

var (
	// ErrTransport marks a network, timeout or malformed-response failure of an upstream call.
	ErrTransport = errors.New("upstream transport failure")
	// ErrNotFound marks a well-formed lookup with no matching entity.
	ErrNotFound = errors.New("not found")
	// ErrInvalidQuery marks a query that matches none of the recognized shapes.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrMisconfigured marks missing upstream configuration. Only raised at startup.
	ErrMisconfigured = errors.New("upstream misconfigured")
)
