package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:     "test",
	Short:   "Test the connection to TMDB",
	Long:    `Verify that the configured bearer token is accepted by the TMDB API.`,
	PreRunE: initializeApp,
	RunE:    runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Println("Testing connection to TMDB...")

	if err := tmdbClient.TestConnection(cmd.Context()); err != nil {
		return err
	}

	fmt.Println("✓ Connection successful!")
	fmt.Printf("- Language: %s\n", tmdbClient.Language())
	fmt.Printf("- Include adult: %v\n", cfg.Search.IncludeAdult)

	return nil
}
