package client

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotLoggedIn  = errors.New("not logged in")
	// ErrRejected wraps requests the server refused; the server's reason
	// follows in the message.
	ErrRejected = errors.New("rejected")
)
