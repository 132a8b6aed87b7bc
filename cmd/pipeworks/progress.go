package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pipelab/pipeworks/internal/storage"
)

var progressCmd = &cobra.Command{
	Use:   "progress [level]",
	Short: "Show recorded clears",
	Long: `Without an argument, lists every cleared level with its best clear.
With a level ID, shows the ten most recent clears of that level.

Examples:
  pipeworks progress
  pipeworks progress 03_keypad`,
	Args: cobra.MaximumNArgs(1),
	Run:  runProgress,
}

func runProgress(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening progress database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		showLevelProgress(store, args[0])
		return
	}

	cleared, err := store.ClearedLevels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading progress: %v\n", err)
		os.Exit(1)
	}

	if len(cleared) == 0 {
		fmt.Println("No clears recorded yet.")
		fmt.Println()
		fmt.Println("Run 'pipeworks play' to clear your first level!")
		return
	}

	maxIDLen := 5 // "Level" header
	for _, id := range cleared {
		if len(id) > maxIDLen {
			maxIDLen = len(id)
		}
	}

	fmt.Println("Cleared levels:")
	fmt.Println()
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "Level", "Best", "Clears")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "-----", "----", "------")

	for _, id := range cleared {
		best := "-"
		if moves, ok, bestErr := store.BestMoves(id); bestErr == nil && ok {
			best = fmt.Sprintf("%d", moves)
		}

		count, countErr := store.ClearCount(id)
		if countErr != nil {
			count = 0
		}

		fmt.Printf("  %-*s  %-6s  %d\n", maxIDLen, id, best, count)
	}
}

func showLevelProgress(store *storage.Store, levelID string) {
	clears, err := store.RecentClears(levelID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading progress: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recent clears - %s\n", levelID)
	fmt.Println()

	if len(clears) == 0 {
		fmt.Println("No clears recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'pipeworks play %s' to clear it!\n", levelID)
		return
	}

	fmt.Printf("  %-6s  %s\n", "Moves", "Date")
	fmt.Printf("  %-6s  %s\n", "-----", "----")

	for _, entry := range clears {
		fmt.Printf("  %-6d  %s\n", entry.Moves, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, ok, bestErr := store.BestMoves(levelID); bestErr == nil && ok {
		fmt.Println()
		fmt.Printf("Best: %d moves\n", best)
	}
}
