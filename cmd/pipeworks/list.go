package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pipelab/pipeworks/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all levels in the active pack",
	Long:  `Shows every level of the active pack with its size and your best clear.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	catalog, err := openCatalog(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	if catalog.Len() == 0 {
		fmt.Println("No levels available.")
		return
	}

	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, id := range catalog.IDs() {
		if len(id) > maxIDLen {
			maxIDLen = len(id)
		}
	}

	fmt.Println("Available levels:")
	fmt.Println()
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Size", "Best")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "----", "----")

	for i := 0; i < catalog.Len(); i++ {
		entry := catalog.Entry(i)

		size := "?"
		if world, worldErr := entry.World(); worldErr == nil {
			size = fmt.Sprintf("%dx%d", world.Height(), world.Width())
		}

		best := "-"
		if store != nil {
			if moves, ok, bestErr := store.BestMoves(entry.ID); bestErr == nil && ok {
				best = fmt.Sprintf("%d", moves)
			}
		}

		fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, entry.ID, size, best)
	}

	fmt.Println()
	fmt.Println("Run 'pipeworks play <id>' to play a level.")
}
