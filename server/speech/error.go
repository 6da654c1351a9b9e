package speech

import (
	"net/http"
)

// Error is a failure with a known response status. Any other error reaching
// the response boundary is reported as an internal server error.
type Error struct {
	Code int

	Message string

	// Details is set for upstream failures, even when the upstream body is empty.
	Details *string
}

func (e *Error) Error() string {
	if e.Details != nil && *e.Details != "" {
		return e.Message + ": " + *e.Details
	}

	return e.Message
}

var (
	errMethodNotAllowed = &Error{Code: http.StatusMethodNotAllowed, Message: "Use POST"}
	errNoText           = &Error{Code: http.StatusBadRequest, Message: "No text provided"}
)

func errMissingCredential(name string) *Error {
	return &Error{
		Code:    http.StatusInternalServerError,
		Message: "Missing " + name,
	}
}

func errUpstream(details string) *Error {
	return &Error{
		Code:    http.StatusBadGateway,
		Message: "Groq TTS failed",
		Details: &details,
	}
}
