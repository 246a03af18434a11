package config

// Config represents the complete configuration structure
type Config struct {
	TMDB    TMDBConfig    `mapstructure:"tmdb"`
	Search  SearchConfig  `mapstructure:"search"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TMDBConfig holds the TMDB API credential and locale
type TMDBConfig struct {
	BearerToken string `mapstructure:"bearer_token"`
	Language    string `mapstructure:"language"`
}

// SearchConfig contains search behavior settings
type SearchConfig struct {
	IncludeAdult bool `mapstructure:"include_adult"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
