package console

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jortega/cinefind/filter"
	"github.com/jortega/cinefind/movie"
	"github.com/jortega/cinefind/tmdb"
)

// fakeFinder returns canned movies or an error and records its calls.
type fakeFinder struct {
	movies []movie.Movie
	err    error

	calls     int
	lastTitle string
	lastPage  int
}

func (f *fakeFinder) FindByTitle(ctx context.Context, title string, page int) ([]movie.Movie, error) {
	f.calls++
	f.lastTitle = title
	f.lastPage = page
	if f.err != nil {
		return nil, f.err
	}
	return f.movies, nil
}

func runUI(t *testing.T, finder Finder, input string, configure func(*UI)) string {
	t.Helper()

	var out strings.Builder
	ui := NewUI(finder, strings.NewReader(input), &out, zerolog.Nop())
	if configure != nil {
		configure(ui)
	}

	require.NoError(t, ui.Run(context.Background()))
	return out.String()
}

func TestRunBlankInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty line", input: "\n"},
		{name: "whitespace only", input: "   \t  \n"},
		{name: "no input at all", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			finder := &fakeFinder{}
			out := runUI(t, finder, tt.input, nil)

			assert.Contains(t, out, "You must enter search text.")
			assert.Equal(t, 0, finder.calls, "blank input must not trigger a network call")
		})
	}
}

func TestRunNoResults(t *testing.T) {
	finder := &fakeFinder{movies: []movie.Movie{}}
	out := runUI(t, finder, "Nothing Here\n", nil)

	assert.Equal(t, 1, finder.calls)
	assert.Equal(t, "Nothing Here", finder.lastTitle)
	assert.Contains(t, out, "No results found.")
}

func TestRunPrintsResults(t *testing.T) {
	finder := &fakeFinder{movies: []movie.Movie{
		{ID: 603, Title: "Matrix", ReleaseDate: "1999-03-31", VoteAverage: 8.1, Popularity: 23.0},
		{ID: 604, Title: "Matrix Reloaded", ReleaseDate: "2003-05-15", VoteAverage: 7.0, Popularity: 18.4},
	}}
	out := runUI(t, finder, "Matrix\n", nil)

	assert.Contains(t, out, "Results for 'Matrix':")
	assert.Contains(t, out, " 1. [1999] Matrix ( - 8.1, pop 23)")
	assert.Contains(t, out, " 2. [2003] Matrix Reloaded ( - 7.0, pop 18)")
	assert.Contains(t, out, "(First page of results)")
}

func TestRunTrimsInput(t *testing.T) {
	finder := &fakeFinder{movies: []movie.Movie{{Title: "Matrix"}}}
	runUI(t, finder, "  Matrix  \n", nil)

	assert.Equal(t, "Matrix", finder.lastTitle)
}

func TestRunHTTPError(t *testing.T) {
	finder := &fakeFinder{err: &tmdb.APIError{
		StatusCode: http.StatusUnauthorized,
		Body:       `{"status_message":"Invalid API key"}`,
	}}
	out := runUI(t, finder, "Matrix\n", nil)

	assert.Contains(t, out, "HTTP error:")
	assert.NotContains(t, out, "An error occurred:")
}

func TestRunGenericError(t *testing.T) {
	finder := &fakeFinder{err: errors.New("connection reset")}
	out := runUI(t, finder, "Matrix\n", nil)

	assert.Contains(t, out, "An error occurred: connection reset")
	assert.NotContains(t, out, "HTTP error:")
}

func TestRunPresetTitle(t *testing.T) {
	finder := &fakeFinder{movies: []movie.Movie{{Title: "Matrix"}}}
	out := runUI(t, finder, "", func(ui *UI) {
		ui.SetTitle("Matrix")
	})

	assert.NotContains(t, out, "Enter a movie title to search:")
	assert.Equal(t, "Matrix", finder.lastTitle)
}

func TestRunPage(t *testing.T) {
	finder := &fakeFinder{movies: []movie.Movie{{Title: "Matrix"}}}
	runUI(t, finder, "Matrix\n", func(ui *UI) {
		ui.SetPage(2)
	})

	assert.Equal(t, 2, finder.lastPage)
}

func TestRunWithFilter(t *testing.T) {
	finder := &fakeFinder{movies: []movie.Movie{
		{Title: "Matrix", ReleaseDate: "1999-03-31", VoteAverage: 8.1},
		{Title: "Matrix Resurrections", ReleaseDate: "2021-12-15", VoteAverage: 6.5},
	}}

	t.Run("keeps matches", func(t *testing.T) {
		f, err := filter.Compile("VoteAverage >= 7.0")
		require.NoError(t, err)

		out := runUI(t, finder, "Matrix\n", func(ui *UI) {
			ui.SetFilter(f)
		})

		assert.Contains(t, out, "Matrix (")
		assert.NotContains(t, out, "Matrix Resurrections")
	})

	t.Run("nothing matches", func(t *testing.T) {
		f, err := filter.Compile("VoteAverage >= 9.5")
		require.NoError(t, err)

		out := runUI(t, finder, "Matrix\n", func(ui *UI) {
			ui.SetFilter(f)
		})

		assert.Contains(t, out, "No results matched the filter")
	})
}
