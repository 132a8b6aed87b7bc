package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pipelab/pipeworks/internal/platform/tui"
	"github.com/pipelab/pipeworks/internal/puzzle"
)

var (
	flagEditHeight int
	flagEditWidth  int
)

var editCmd = &cobra.Command{
	Use:   "edit <file>",
	Short: "Edit or create a level",
	Long: `Open the level editor on a file. A missing file starts as an empty
grid of --height by --width.

Controls:
  Arrows/WASD/HJKL - Move cursor
  Tile code keys   - Place that tile (space - / ^ > v < 1-9)
  Enter            - Rotate tile
  I / X            - Insert / remove row at cursor
  O / Z            - Insert / remove column at cursor
  Ctrl+S           - Save
  Q/Ctrl+C         - Quit

Examples:
  pipeworks edit my-levels/maze.txt
  pipeworks edit new.txt --height 6 --width 8`,
	Args: cobra.ExactArgs(1),
	Run:  runEdit,
}

func init() {
	editCmd.Flags().IntVar(&flagEditHeight, "height", 5, "Grid height for a new level")
	editCmd.Flags().IntVar(&flagEditWidth, "width", 5, "Grid width for a new level")
}

func runEdit(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: edit needs an interactive terminal")
		os.Exit(1)
	}

	path := args[0]

	var world puzzle.World
	if data, err := os.ReadFile(path); err == nil {
		world, err = puzzle.Parse(string(data))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
			os.Exit(1)
		}
	} else {
		var newErr error
		world, newErr = puzzle.Empty(flagEditHeight, flagEditWidth)
		if newErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", newErr)
			os.Exit(1)
		}
	}

	if err := tui.RunEditor(world, path); err != nil {
		fmt.Fprintf(os.Stderr, "Error running editor: %v\n", err)
		os.Exit(1)
	}
}
