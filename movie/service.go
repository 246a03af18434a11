package movie

import (
	"context"

	"github.com/rs/zerolog"
)

// Service converts raw TMDB search payloads into Movie records.
type Service struct {
	client       SearchClient
	includeAdult bool
	logger       zerolog.Logger
}

// NewService creates a new movie query service on top of a search client.
func NewService(client SearchClient, logger zerolog.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// SetIncludeAdult controls the include_adult search parameter.
func (s *Service) SetIncludeAdult(include bool) {
	s.includeAdult = include
}

// FindByTitle searches TMDB for the given title and returns one Movie per
// result item, preserving upstream order. An absent or wrong-typed
// `results` field is treated as no results. Client failures propagate
// unchanged.
func (s *Service) FindByTitle(ctx context.Context, title string, page int) ([]Movie, error) {
	payload, err := s.client.SearchMovies(ctx, title, page, s.includeAdult)
	if err != nil {
		return nil, err
	}

	items, _ := payload["results"].([]any)
	movies := make([]Movie, 0, len(items))

	for _, raw := range items {
		item, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		movies = append(movies, fromPayloadItem(item))
	}

	s.logger.Debug().
		Str("title", title).
		Int("page", page).
		Int("count", len(movies)).
		Msg("Parsed search results")

	return movies, nil
}

// fromPayloadItem builds a Movie from one result item, default-filling
// absent or wrong-typed fields.
func fromPayloadItem(item map[string]any) Movie {
	return Movie{
		ID:            int64(floatField(item, "id")),
		Title:         stringField(item, "title"),
		OriginalTitle: stringField(item, "original_title"),
		ReleaseDate:   stringField(item, "release_date"),
		Overview:      stringField(item, "overview"),
		Popularity:    floatField(item, "popularity"),
		VoteAverage:   floatField(item, "vote_average"),
		PosterPath:    stringField(item, "poster_path"),
	}
}

func stringField(item map[string]any, key string) string {
	s, _ := item[key].(string)
	return s
}

func floatField(item map[string]any, key string) float64 {
	// encoding/json decodes all JSON numbers into float64
	f, _ := item[key].(float64)
	return f
}
