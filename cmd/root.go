package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jortega/cinefind/config"
	"github.com/jortega/cinefind/movie"
	"github.com/jortega/cinefind/tmdb"
)

var (
	cfgFile      string
	cfg          *config.Config
	logger       zerolog.Logger
	tmdbClient   *tmdb.Client
	movieService *movie.Service

	version   = "dev"
	buildTime = "unknown"

	// Command flags
	language   string
	page       int
	adult      bool
	filterExpr string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cinefind",
	Short: "Search TMDB for movies by title",
	Long: `cinefind is a CLI tool that searches The Movie Database (TMDB)
for movies by title and prints the top matching results.

A TMDB bearer token is required, either in the config file or in the
TMDB_BEARER_TOKEN environment variable.`,
	PreRunE: initializeApp,
	RunE:    runSearch,
}

// SetVersion sets the version information from build flags
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&language, "language", "", "locale tag for localized results (e.g. es-MX)")

	addSearchFlags(rootCmd)
}

// initializeApp initializes the configuration, logger, client and service
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Override config from command line if specified
	if cmd.Flags().Changed("language") {
		cfg.TMDB.Language = language
	}
	if cmd.Flags().Changed("adult") {
		cfg.Search.IncludeAdult = adult
	}

	// Create TMDB client; fails before any UI interaction when no
	// credential is available
	tmdbClient, err = tmdb.NewClient(cfg.TMDB.BearerToken, logger,
		tmdb.WithLanguage(cfg.TMDB.Language),
	)
	if err != nil {
		return fmt.Errorf("failed to create TMDB client: %w", err)
	}

	movieService = movie.NewService(tmdbClient, logger)
	movieService.SetIncludeAdult(cfg.Search.IncludeAdult)

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when stderr is a terminal
	useColor := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !useColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
