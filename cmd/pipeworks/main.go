// pipeworks is a pipe-rotation puzzle for the terminal.
//
// Usage:
//
//	pipeworks list               - List available levels
//	pipeworks play [level]       - Play a level (picker when omitted)
//	pipeworks check <file>...    - Validate level files
//	pipeworks edit <file>        - Edit or create a level
//	pipeworks progress [level]   - Show recorded clears
//	pipeworks serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Path to a config YAML
//	--levels <dir>   - Load levels from a directory instead of the bundled pack
//	--db <path>      - Progress database path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pipelab/pipeworks/internal/config"
	"github.com/pipelab/pipeworks/internal/levels"
)

var (
	// Global flags
	flagConfig string
	flagLevels string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pipeworks",
	Short: "Pipeworks - rotate the pipes until everything connects",
	Long: `Pipeworks is a terminal puzzle game. Each level is a grid of pipe
tiles; rotate them until every open end meets a matching neighbor.

Available commands:
  list      - Show all levels in the active pack
  play      - Play a level, or pick one interactively
  check     - Validate level files
  edit      - Edit or create a level
  progress  - View recorded clears
  serve     - Start SSH server for remote play

Examples:
  pipeworks list
  pipeworks play 03_keypad
  pipeworks play --levels ./my-levels
  pipeworks edit ./my-levels/maze.txt --height 6 --width 8
  pipeworks serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Level directory (bundled pack if empty)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to progress database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the effective configuration, exiting on an unreadable
// --config file.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// openCatalog opens the active level pack: --levels first, then the config's
// level directory, then the bundled pack.
func openCatalog(cfg config.Config) (*levels.Catalog, error) {
	dir := flagLevels
	if dir == "" {
		dir = cfg.Levels.Dir
	}
	if dir != "" {
		return levels.OpenSource("dir", dir)
	}
	return levels.OpenSource("builtin", "")
}

// dbPath resolves the progress database path: --db wins over the config.
func dbPath(cfg config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return cfg.Storage.DB
}
