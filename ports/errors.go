package ports

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the failure classes the client reports. Call sites
// wrap these with context, so classify with errors.Is rather than equality.
var (
	// ErrNotFound is returned when a requested resource does not exist,
	// either on the remote service or as a snapshot on disk.
	ErrNotFound = errors.New("resource not found")

	// ErrDecode is returned when a response body or a snapshot document
	// cannot be decoded into the expected shape.
	ErrDecode = errors.New("decode failure")

	// ErrConfiguration is returned when an operation requires caching
	// enabled for an endpoint that has it disabled, or names an unknown
	// endpoint group or resource category.
	ErrConfiguration = errors.New("configuration error")

	// ErrNetwork is returned for transport level failures.
	ErrNetwork = errors.New("network failure")

	// ErrIO is returned when a snapshot cannot be written or read.
	ErrIO = errors.New("snapshot io failure")
)

// NotFoundError decorates ErrNotFound with the resource category, the key
// that was requested and optional close matches from the endpoint index.
type NotFoundError struct {
	Resource    string
	Key         string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
	}
	return fmt.Sprintf("%s %q not found, did you mean %s?", e.Resource, e.Key, strings.Join(e.Suggestions, ", "))
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }
