package movie

import (
	"fmt"
	"strings"
)

// Movie is a value record built from one upstream search-result item.
// An empty ReleaseDate or PosterPath means the field was absent upstream.
type Movie struct {
	ID            int64
	Title         string
	OriginalTitle string
	ReleaseDate   string
	Overview      string
	Popularity    float64
	VoteAverage   float64
	PosterPath    string
}

// Year returns the release year, or "s/f" (sin fecha) when the release
// date is absent.
func (m Movie) Year() string {
	if m.ReleaseDate == "" {
		return "s/f"
	}
	year, _, _ := strings.Cut(m.ReleaseDate, "-")
	return year
}

// ShortString renders the one-line description used by the console listing,
// e.g. "[1999] Matrix ( - 8.1, pop 23)".
func (m Movie) ShortString() string {
	return fmt.Sprintf("[%s] %s ( - %.1f, pop %.0f)", m.Year(), m.Title, m.VoteAverage, m.Popularity)
}
