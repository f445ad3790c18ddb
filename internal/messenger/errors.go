package messenger

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyContent  = errors.New("message content is empty")
	ErrEmptyComment  = errors.New("comment text is empty")
	ErrEmptyChatName = errors.New("forward chat name is empty")

	// ErrNoToken means no usable bearer token is available; the user has
	// to log in again before any operation can run.
	ErrNoToken = errors.New("access token is missing")

	// ErrBadResponse means the server answered 2xx but the body lacks
	// fields the reconciliation needs.
	ErrBadResponse = errors.New("malformed server response")
)

// StatusError reports a non-success status from the server, with the
// message of its error body when one was sent.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.Code)
	}
	return fmt.Sprintf("server returned status %d: %s", e.Code, e.Message)
}
