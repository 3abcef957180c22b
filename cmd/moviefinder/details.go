package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var detailsCmd = &cobra.Command{
	Use:   "details <id>",
	Short: "Show full details for a movie",
	Long: `Show full details for a movie by its TMDB id.

Example:
  moviefinder details 27205`,
	Args: cobra.ExactArgs(1),
	RunE: runDetailsCmd,
}

func init() {
	rootCmd.AddCommand(detailsCmd)
}

func runDetailsCmd(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("id must be a positive number, got %q", args[0])
	}

	client := NewClient(serverURL, sessionID)
	details, err := client.Details(id)
	if err != nil {
		return fmt.Errorf("details failed: %w", err)
	}

	if jsonOutput {
		printJSON(details)
		return nil
	}

	fmt.Printf("%s (%s)\n", details.Title, details.Year)
	if details.Runtime > 0 {
		fmt.Printf("  Runtime: %d min\n", details.Runtime)
	}
	if details.Rating > 0 {
		fmt.Printf("  Rating:  %.1f\n", details.Rating)
	}
	if len(details.Genres) > 0 {
		fmt.Printf("  Genres:  %s\n", strings.Join(details.Genres, ", "))
	}
	if len(details.Actors) > 0 {
		fmt.Printf("  Cast:    %s\n", strings.Join(details.Actors, ", "))
	}
	if details.Plot != "" {
		fmt.Printf("\n%s\n", details.Plot)
	}
	return nil
}
