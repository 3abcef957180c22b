package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage per-session favorites",
	Long: `Manage per-session favorites.

The server keys favorites on an anonymous session cookie. Pass --session
to reuse the same session across invocations:

  moviefinder favorites add 27205 --session my-session --title Inception
  moviefinder favorites list --session my-session
  moviefinder favorites remove 27205 --session my-session`,
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the session's favorites",
	Args:  cobra.NoArgs,
	RunE:  runFavoritesListCmd,
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add <id>",
	Short: "Add or update a favorite",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavoritesAddCmd,
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a favorite",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavoritesRemoveCmd,
}

func init() {
	rootCmd.AddCommand(favoritesCmd)
	favoritesCmd.AddCommand(favoritesListCmd)
	favoritesCmd.AddCommand(favoritesAddCmd)
	favoritesCmd.AddCommand(favoritesRemoveCmd)

	favoritesAddCmd.Flags().String("title", "", "Movie title")
	favoritesAddCmd.Flags().String("year", "", "Release year")
	favoritesAddCmd.Flags().String("poster", "", "Poster URL")
}

func runFavoritesListCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL, sessionID)
	favs, err := client.ListFavorites()
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	if jsonOutput {
		printJSON(favs)
		return nil
	}

	if len(favs) == 0 {
		fmt.Println("No favorites yet")
		return nil
	}

	fmt.Printf("  %8s │ %-42s │ %4s\n", "ID", "TITLE", "YEAR")
	fmt.Println("───────────┼────────────────────────────────────────────┼──────")
	for _, f := range favs {
		title := f.Title
		if title == "" {
			title = "(untitled)"
		}
		if len(title) > 42 {
			title = title[:39] + "..."
		}
		fmt.Printf("  %8d │ %-42s │ %4s\n", f.ID, title, f.Year)
	}
	return nil
}

func runFavoritesAddCmd(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("id must be a positive number, got %q", args[0])
	}

	title, _ := cmd.Flags().GetString("title")
	year, _ := cmd.Flags().GetString("year")
	poster, _ := cmd.Flags().GetString("poster")

	client := NewClient(serverURL, sessionID)
	if err := client.AddFavorite(FavoriteItem{ID: id, Title: title, Year: year, PosterURL: poster}); err != nil {
		return fmt.Errorf("add failed: %w", err)
	}

	fmt.Printf("Added favorite %d\n", id)
	return nil
}

func runFavoritesRemoveCmd(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("id must be a positive number, got %q", args[0])
	}

	client := NewClient(serverURL, sessionID)
	if err := client.RemoveFavorite(id); err != nil {
		return fmt.Errorf("remove failed: %w", err)
	}

	fmt.Printf("Removed favorite %d\n", id)
	return nil
}
