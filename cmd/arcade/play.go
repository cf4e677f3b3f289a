package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crawl/internal/config"
	"github.com/vovakirdan/tui-crawl/internal/core"
	"github.com/vovakirdan/tui-crawl/internal/games/crawl"
	"github.com/vovakirdan/tui-crawl/internal/games/maze"
	"github.com/vovakirdan/tui-crawl/internal/platform/tui"
	"github.com/vovakirdan/tui-crawl/internal/registry"
	"github.com/vovakirdan/tui-crawl/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  W/A/S/D, arrows  - Move (Crawl) / walk and turn (Maze)
  Space/E          - Open a door
  M/Tab            - Toggle the automap (Maze)
  P                - Pause
  R                - Restart (after game over)
  Esc/B            - Back (when paused or over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play crawl
  arcade play crawl --difficulty hard
  arcade play maze --level warrens
  arcade play maze --config ./my-maze.yaml
  arcade play crawl --levels ./levels --level vault`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Level ID to start the campaign on")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	if err := configureGames(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if flagLevel != "" {
		sel, ok := game.(registry.LevelSelector)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: %s has no levels to choose from\n", gameID)
			os.Exit(1)
		}
		if err := sel.SetLevel(flagLevel); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// configureGames passes the config, difficulty and levels flags to every
// game before instances are created.
func configureGames() error {
	var preset config.DifficultyPreset
	if flagDifficulty != "" {
		p, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return fmt.Errorf("unknown difficulty %q (expected easy, normal, hard or fixed)", flagDifficulty)
		}
		preset = p
	}

	// Scan the levels now so warnings print before the game takes the screen
	lib := levelLibrary()
	if _, err := lib.Levels(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	crawl.SetConfigPath(flagConfig)
	crawl.SetDifficultyPreset(preset)
	crawl.SetLibrary(lib)

	maze.SetConfigPath(flagConfig)
	maze.SetDifficultyPreset(preset)
	maze.SetLibrary(lib)
	return nil
}

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Player = flagPlayer
	return cfg
}
