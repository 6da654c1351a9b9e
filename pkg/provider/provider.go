package provider

import (
	"fmt"
)

// ProviderError is returned when the upstream answered with a non-success status.
// Message holds the upstream response body as received.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Message)
}
