package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jortega/cinefind/console"
	"github.com/jortega/cinefind/filter"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [title]",
	Short: "Search for movies by title",
	Long: `Search TMDB for movies matching a title and print the top results.

With no argument the title is read interactively from standard input.
Results can be narrowed with a filter expression, for example:

  cinefind search "Matrix" --filter 'VoteAverage >= 7.0'
  cinefind search --filter 'Year > 1990 && Contains(Title, "matrix")'`,
	PreRunE: initializeApp,
	RunE:    runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	addSearchFlags(searchCmd)
}

// addSearchFlags registers the search flags on a command. The root command
// shares them so plain `cinefind` behaves like `cinefind search`.
func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&page, "page", "p", 1, "result page to request")
	cmd.Flags().BoolVar(&adult, "adult", false, "include adult titles in results")
	cmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to results")
}

func runSearch(cmd *cobra.Command, args []string) error {
	ui := console.NewUI(movieService, os.Stdin, os.Stdout, logger)
	ui.SetPage(page)

	if filterExpr != "" {
		f, err := filter.Compile(filterExpr)
		if err != nil {
			return err
		}
		ui.SetFilter(f)
	}

	if len(args) > 0 {
		ui.SetTitle(strings.Join(args, " "))
	}

	// The UI is the error boundary: upstream failures are printed, not
	// returned, so the process exits zero
	return ui.Run(cmd.Context())
}
