package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search movies by title",
	Long: `Search movies by title.

Examples:
  moviefinder search "The Matrix"
  moviefinder search inception --page 2
  moviefinder search --json blade runner`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearchCmd,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().Int("page", 1, "Result page (1-based)")
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	page, _ := cmd.Flags().GetInt("page")

	client := NewClient(serverURL, sessionID)
	results, err := client.Search(query, page)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if jsonOutput {
		printJSON(results)
		return nil
	}

	if len(results.Items) == 0 {
		fmt.Println("No movies found")
		return nil
	}

	fmt.Printf("Found %d movies for %q (page %d):\n\n", results.Total, query, results.Page)
	fmt.Printf("  %8s │ %-42s │ %4s\n", "ID", "TITLE", "YEAR")
	fmt.Println("───────────┼────────────────────────────────────────────┼──────")

	for _, item := range results.Items {
		title := item.Title
		if len(title) > 42 {
			title = title[:39] + "..."
		}
		fmt.Printf("  %8d │ %-42s │ %4s\n", item.ID, title, item.Year)
	}
	return nil
}
