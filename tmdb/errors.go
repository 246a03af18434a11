package tmdb

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrMissingCredential indicates no bearer token was supplied and
	// none was found in the environment.
	ErrMissingCredential = errors.New("missing TMDB bearer token: pass one explicitly or set " + EnvBearerToken)
)

// APIError represents a non-2xx response from the TMDB API
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("tmdb API error: status %d: %s", e.StatusCode, e.Body)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsAPIError reports whether err is an upstream HTTP failure and, if so,
// returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
