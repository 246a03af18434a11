package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultBaseURL  = "https://api.themoviedb.org/3"
	defaultLanguage = "es-MX"
	defaultTimeout  = 15 * time.Second

	// EnvBearerToken is the environment variable consulted when no
	// credential is passed to NewClient.
	EnvBearerToken = "TMDB_BEARER_TOKEN"
)

// Client represents a TMDB API client
type Client struct {
	baseURL     string
	bearerToken string
	language    string
	httpClient  *http.Client
	logger      zerolog.Logger
}

// NewClient creates a new TMDB client. An empty bearerToken falls back to
// the TMDB_BEARER_TOKEN environment variable; if neither is set the
// constructor fails with ErrMissingCredential before any request is made.
func NewClient(bearerToken string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if bearerToken == "" {
		bearerToken = os.Getenv(EnvBearerToken)
	}
	if bearerToken == "" {
		return nil, ErrMissingCredential
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	client := &Client{
		baseURL:     options.baseURL,
		bearerToken: bearerToken,
		language:    options.language,
		httpClient:  options.httpClient,
		logger:      logger,
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: options.timeout}
	}

	return client, nil
}

// Language returns the locale tag sent with every request.
func (c *Client) Language() string {
	return c.language
}

// doRequest performs an authenticated GET and returns the raw body
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	requestURL := c.baseURL + endpoint
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return body, nil
}

// SearchMovies queries the movie search endpoint and returns the decoded
// payload. The payload is kept as a dynamic mapping; typed extraction
// happens at the service layer.
func (c *Client) SearchMovies(ctx context.Context, query string, page int, includeAdult bool) (map[string]any, error) {
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", strconv.FormatBool(includeAdult))
	params.Set("language", c.language)
	params.Set("page", strconv.Itoa(page))

	c.logger.Debug().
		Str("query", query).
		Int("page", page).
		Str("language", c.language).
		Msg("Searching TMDB")

	body, err := c.doRequest(ctx, "/search/movie", params)
	if err != nil {
		return nil, err
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return payload, nil
}

// TestConnection verifies the credential against the authentication endpoint
func (c *Client) TestConnection(ctx context.Context) error {
	_, err := c.doRequest(ctx, "/authentication", nil)
	if err != nil {
		return fmt.Errorf("failed to connect to TMDB: %w", err)
	}
	return nil
}
