package webapi

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedStatus  = errors.New("unexpected status code")
	ErrMalformedResponse = errors.New("malformed response body")
	ErrEmptyPath         = errors.New("empty request path")
)

// TransportError is returned for every failed request. StatusCode is zero
// when no response was received.
type TransportError struct {
	Path       string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("steam web api %s: %v", e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
