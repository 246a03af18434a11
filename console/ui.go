// Package console implements the single-turn search interaction: prompt,
// query, print. It is the error boundary of the program; nothing past it
// sees a failure.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jortega/cinefind/filter"
	"github.com/jortega/cinefind/movie"
	"github.com/jortega/cinefind/tmdb"
)

// Finder is the slice of the movie service the UI depends on.
type Finder interface {
	FindByTitle(ctx context.Context, title string, page int) ([]movie.Movie, error)
}

// UI drives one prompt/search/print interaction.
type UI struct {
	finder Finder
	in     io.Reader
	out    io.Writer
	logger zerolog.Logger

	title  string
	page   int
	filter *filter.Filter
}

// NewUI creates a UI reading from in and writing to out.
func NewUI(finder Finder, in io.Reader, out io.Writer, logger zerolog.Logger) *UI {
	return &UI{
		finder: finder,
		in:     in,
		out:    out,
		logger: logger,
		page:   1,
	}
}

// SetTitle presets the search title, skipping the interactive prompt.
func (u *UI) SetTitle(title string) {
	u.title = title
}

// SetPage sets the result page requested from the service.
func (u *UI) SetPage(page int) {
	if page >= 1 {
		u.page = page
	}
}

// SetFilter installs a compiled result filter applied before display.
func (u *UI) SetFilter(f *filter.Filter) {
	u.filter = f
}

// Run performs the interaction. All failures are reported as printed text;
// Run itself always returns nil so the process exits zero.
func (u *UI) Run(ctx context.Context) error {
	title := u.title
	if title == "" {
		fmt.Fprint(u.out, "Enter a movie title to search: ")

		line, err := bufio.NewReader(u.in).ReadString('\n')
		if err != nil && err != io.EOF {
			fmt.Fprintf(u.out, "An error occurred: %v\n", err)
			return nil
		}
		title = line
	}

	title = strings.TrimSpace(title)
	if title == "" {
		fmt.Fprintln(u.out, "You must enter search text.")
		return nil
	}

	movies, err := u.finder.FindByTitle(ctx, title, u.page)
	if err != nil {
		if apiErr, ok := tmdb.IsAPIError(err); ok {
			u.logger.Debug().Int("status", apiErr.StatusCode).Msg("Search request rejected")
			fmt.Fprintf(u.out, "HTTP error: %v\n", apiErr)
		} else {
			fmt.Fprintf(u.out, "An error occurred: %v\n", err)
		}
		return nil
	}

	if len(movies) == 0 {
		fmt.Fprintln(u.out, "No results found.")
		return nil
	}

	if u.filter != nil {
		movies = u.filter.Apply(movies)
		if len(movies) == 0 {
			fmt.Fprintf(u.out, "No results matched the filter %q.\n", u.filter.Expression())
			return nil
		}
	}

	fmt.Fprintf(u.out, "\nResults for '%s':\n\n", title)
	for i, m := range movies {
		fmt.Fprintf(u.out, "%2d. %s\n", i+1, m.ShortString())
	}
	fmt.Fprintln(u.out, "\n(First page of results)")

	return nil
}
