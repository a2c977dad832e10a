package client

import (
	"errors"
	"fmt"
)

// Kind classifies a client failure so callers can branch on the category
// instead of sniffing message strings.
type Kind string

const (
	// KindValidation marks malformed local input; the request never left the
	// process.
	KindValidation Kind = "validation"
	// KindAuthorization marks a 401 from the server; the session has already
	// been torn down by the time the error is returned.
	KindAuthorization Kind = "authorization"
	// KindRequest marks any other non-success server response.
	KindRequest Kind = "request"
	// KindTransport marks a network-level failure before any response.
	KindTransport Kind = "transport"
)

// Error is the single error type returned by the access layer.
type Error struct {
	Kind    Kind
	Message string
	// Status is the HTTP status code, zero for failures without a response.
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the Kind from err, or "" when err is not a client error.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}

// IsAuthorization reports whether err is an authorization failure.
func IsAuthorization(err error) bool {
	return KindOf(err) == KindAuthorization
}

// IsNotFound reports whether err is a request failure with HTTP 404.
func IsNotFound(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Status == 404
}
