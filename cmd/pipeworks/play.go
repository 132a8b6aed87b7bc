package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pipelab/pipeworks/internal/platform/tui"
	"github.com/pipelab/pipeworks/internal/storage"
)

var flagNoShuffle bool

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the given level. Without an argument an interactive
level picker opens first.

Controls:
  Arrows/WASD/HJKL - Move cursor
  Space/Enter      - Rotate tile
  R                - Restart level
  [ / ]            - Previous / next level
  Q/Ctrl+C         - Quit

Examples:
  pipeworks play
  pipeworks play 03_keypad
  pipeworks play --levels ./my-levels maze
  pipeworks play --no-shuffle 05_ring_main`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoShuffle, "no-shuffle", false, "Start levels as stored instead of shuffled")
}

func runPlay(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: play needs an interactive terminal")
		os.Exit(1)
	}

	cfg := loadConfig()
	if flagNoShuffle {
		cfg.Shuffle.Enabled = false
	}

	catalog, err := openCatalog(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}
	if catalog.Len() == 0 {
		fmt.Fprintln(os.Stderr, "Error: the level pack is empty")
		os.Exit(1)
	}

	// Open progress storage
	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	// os.Exit bypasses defers, so every exit path closes explicitly.
	closeStore := func() {
		if store != nil {
			store.Close()
		}
	}

	start := 0
	if len(args) == 1 {
		start = catalog.IndexOf(args[0])
		if start < 0 {
			closeStore()
			fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'pipeworks list' to see available levels.")
			os.Exit(1)
		}
	} else {
		choice, pickErr := tui.RunLevelPicker(catalog, store)
		if pickErr != nil {
			closeStore()
			fmt.Fprintf(os.Stderr, "Error: %v\n", pickErr)
			os.Exit(1)
		}
		if choice < 0 {
			closeStore()
			return
		}
		start = choice
	}

	model, err := tui.NewPlayModel(catalog, store, cfg, start)
	if err != nil {
		closeStore()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.RunPlay(model)
	closeStore()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
