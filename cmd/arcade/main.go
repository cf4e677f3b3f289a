// arcade is a terminal dungeon crawler: explore levels by torchlight in
// Crawl, or walk them in first person in Maze.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//	arcade fov <level>       - Print what is visible from a cell
//	arcade rays <level>      - Print the rays cast from a camera
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 30)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.arcade/scores.db)
//	--player <name>  - Name scores and explored maps are saved under
//	--levels <dir>   - Directory with extra level files
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crawl/internal/levels"

	// Import games to register them
	_ "github.com/vovakirdan/tui-crawl/internal/games/crawl"
	_ "github.com/vovakirdan/tui-crawl/internal/games/maze"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagPlayer    string
	flagLevelsDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "TUI Crawl - Explore dungeons in your terminal",
	Long: `TUI Crawl is a terminal dungeon crawler with two ways to play the
same levels:

  crawl  - top-down, you only see what your torch lights
  maze   - first person, with an automap of what you have seen

Everything you have seen is remembered between sessions.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  fov      - Print the field of view from a cell of a level
  rays     - Print the rays a camera casts in a level

Examples:
  arcade list
  arcade play crawl
  arcade play maze --level crypt
  arcade menu --player ada
  arcade serve --ssh :2222
  arcade scores maze
  arcade fov warrens --radius 6`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", defaultPlayer(), "Player name for scores and explored maps")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory with extra level files (.yaml, .yml)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(fovCmd)
	rootCmd.AddCommand(raysCmd)
}

// defaultPlayer uses the login name when there is one.
func defaultPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

var levelLib *levels.Library

// levelLibrary returns the catalog for --levels. It is scanned once per
// process and skipped files are reported on stderr.
func levelLibrary() *levels.Library {
	if levelLib == nil {
		logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "levels"})
		levelLib = levels.NewLibrary(flagLevelsDir, logger)
	}
	return levelLib
}
