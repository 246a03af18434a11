package movie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYear(t *testing.T) {
	tests := []struct {
		name        string
		releaseDate string
		expected    string
	}{
		{
			name:        "full date",
			releaseDate: "2010-05-01",
			expected:    "2010",
		},
		{
			name:        "absent date",
			releaseDate: "",
			expected:    "s/f",
		},
		{
			name:        "year only",
			releaseDate: "1999",
			expected:    "1999",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Movie{ReleaseDate: tt.releaseDate}
			assert.Equal(t, tt.expected, m.Year())
		})
	}
}

func TestShortString(t *testing.T) {
	tests := []struct {
		name     string
		movie    Movie
		expected string
	}{
		{
			name: "full record",
			movie: Movie{
				Title:       "Matrix",
				ReleaseDate: "1999-03-31",
				VoteAverage: 8.1,
				Popularity:  23.0,
			},
			expected: "[1999] Matrix ( - 8.1, pop 23)",
		},
		{
			name: "absent release date",
			movie: Movie{
				Title:       "Unknown Film",
				VoteAverage: 6.55,
				Popularity:  3.7,
			},
			expected: "[s/f] Unknown Film ( - 6.5, pop 4)",
		},
		{
			name:     "zero values",
			movie:    Movie{Title: "Empty"},
			expected: "[s/f] Empty ( - 0.0, pop 0)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.movie.ShortString())
		})
	}
}
