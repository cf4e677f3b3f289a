package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crawl/internal/core"
	"github.com/vovakirdan/tui-crawl/internal/fov"
	"github.com/vovakirdan/tui-crawl/internal/games/dungeon"
	"github.com/vovakirdan/tui-crawl/internal/grid"
	"github.com/vovakirdan/tui-crawl/internal/levels"
	"github.com/vovakirdan/tui-crawl/internal/platform/tui"
)

var (
	flagFOVX      int
	flagFOVY      int
	flagFOVRadius int
	flagFOVAll    bool
)

var fovCmd = &cobra.Command{
	Use:   "fov <level>",
	Short: "Print the field of view from a cell of a level",
	Long: `Compute what an observer standing in a level can see and print the
level with only the visible cells drawn.

The observer stands on the level's start cell unless --x and --y are given.

Examples:
  arcade fov cellar
  arcade fov warrens --radius 5
  arcade fov crypt --x 10 --y 4 --all`,
	Args: cobra.ExactArgs(1),
	Run:  runFOV,
}

func init() {
	fovCmd.Flags().IntVar(&flagFOVX, "x", -1, "Observer column (default: level start)")
	fovCmd.Flags().IntVar(&flagFOVY, "y", -1, "Observer row (default: level start)")
	fovCmd.Flags().IntVar(&flagFOVRadius, "radius", 8, "Sight radius in cells")
	fovCmd.Flags().BoolVar(&flagFOVAll, "all", false, "Also draw hidden cells, dimmed")
}

func runFOV(_ *cobra.Command, args []string) {
	level, m, err := loadLevelGrid(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	observer := level.Start()
	if flagFOVX >= 0 && flagFOVY >= 0 {
		observer = grid.P(flagFOVX, flagFOVY)
	}
	if !m.InBounds(observer.X, observer.Y) {
		fmt.Fprintf(os.Stderr, "Error: observer %v is outside the %dx%d level\n", observer, m.W, m.H)
		os.Exit(1)
	}

	engine := fov.NewEngine(m)
	engine.Compute(observer.X, observer.Y, flagFOVRadius)

	screen := core.NewScreen(m.W, m.H)
	for y := range m.H {
		for x := range m.W {
			p := grid.P(x, y)
			visible := engine.IsVisible(x, y)
			if !visible && !flagFOVAll {
				continue
			}

			tile := m.Tile(x, y)
			r, c := dungeon.WallGlyph(tile), dungeon.WallColor(tile, false)
			switch {
			case p == observer:
				r, c = '@', core.ColorBrightYellow
			case level.IsExit(p):
				r, c = '>', core.ColorBrightCyan
			}
			if !visible {
				c = core.ColorDarkGray
			}
			screen.SetColored(x, y, r, c)
		}
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	fmt.Println(title.Render(fmt.Sprintf("%s from %v, radius %d", level.Title(), observer, flagFOVRadius)))
	fmt.Println()
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(tui.RenderScreen(screen))
	} else {
		fmt.Println(screen.String())
	}
	fmt.Println()
	fmt.Printf("Visible: %d of %d cells\n", engine.VisibleCount(), m.W*m.H)
}

// loadLevelGrid finds a level by ID and parses its tile map.
func loadLevelGrid(id string) (levels.Level, *grid.TileMap, error) {
	level, err := levelLibrary().Find(id)
	if err != nil {
		return levels.Level{}, nil, err
	}
	m, err := level.ToGrid()
	if err != nil {
		return levels.Level{}, nil, err
	}
	return level, m, nil
}
