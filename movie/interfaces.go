package movie

import "context"

// SearchClient is the slice of the TMDB client the service depends on.
type SearchClient interface {
	// SearchMovies returns the decoded search payload for a query.
	SearchMovies(ctx context.Context, query string, page int, includeAdult bool) (map[string]any, error)
}
