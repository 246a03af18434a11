// Package tmdb provides a client for The Movie Database (TMDB) v3 API.
//
// The client covers the single concern this tool has: searching movies by
// title. It holds a bearer credential and a locale tag, reuses one
// underlying HTTP client across calls, and returns the decoded search
// payload as a dynamic mapping for the service layer to interpret.
//
// # Usage
//
// Create a client with an explicit token, or leave it empty to fall back
// to the TMDB_BEARER_TOKEN environment variable:
//
//	logger := zerolog.New(os.Stderr)
//	client, err := tmdb.NewClient("", logger,
//		tmdb.WithLanguage("es-MX"),
//		tmdb.WithTimeout(15*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	payload, err := client.SearchMovies(ctx, "Matrix", 1, false)
//
// # Error Handling
//
// Construction without any credential fails with ErrMissingCredential.
// Non-2xx responses surface as *APIError carrying the status code and
// response body; IsUnauthorized and IsNotFound classify the common cases.
// Network-level failures (timeout, DNS, connection reset) are returned
// wrapped and carry no APIError.
package tmdb
