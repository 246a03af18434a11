package tmdb

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL    string
	language   string
	timeout    time.Duration
	httpClient *http.Client
}

func defaultOptions() *clientOptions {
	return &clientOptions{
		baseURL:  defaultBaseURL,
		language: defaultLanguage,
		timeout:  defaultTimeout,
	}
}

// WithBaseURL overrides the API base URL. Mainly useful for tests.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL != "" {
			for len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
				baseURL = baseURL[:len(baseURL)-1]
			}
			o.baseURL = baseURL
		}
	}
}

// WithLanguage sets the locale tag sent as the language query parameter.
func WithLanguage(language string) Option {
	return func(o *clientOptions) {
		if language != "" {
			o.language = language
		}
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHTTPClient supplies a custom HTTP client, replacing the default
// timeout-bound one.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}
