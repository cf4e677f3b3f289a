// Package levels defines crawl levels: ASCII layouts with a start and an
// exit, either built in or loaded from level files.
package levels

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-crawl/internal/grid"
)

// Layout markers that are not walls.
const (
	StartRune = '@'
	ExitRune  = '>'
	DoorRune  = '+'
)

// Tile values produced by grid.DefaultLegend.
const (
	TileStone = 1
	TileBrick = 2
	TileMoss  = 3
	TileDoor  = 4
)

var (
	// ErrNotFound is returned when no level has the requested ID.
	ErrNotFound = errors.New("level not found")
	// ErrInvalid is returned for layouts that cannot be played.
	ErrInvalid = errors.New("invalid level")
)

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Layout   []string
	Metadata map[string]string
	FilePath string // empty for built-in levels
}

// Validate checks that the level can be played: it needs an ID, non-empty
// rows, exactly one start and at least one exit.
func (l Level) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return fmt.Errorf("%w: missing id", ErrInvalid)
	}
	if len(l.Layout) == 0 {
		return fmt.Errorf("%w %q: empty layout", ErrInvalid, l.ID)
	}
	for i, row := range l.Layout {
		if row == "" {
			return fmt.Errorf("%w %q: row %d is empty", ErrInvalid, l.ID, i)
		}
	}
	if n := len(grid.Find(l.Layout, StartRune)); n != 1 {
		return fmt.Errorf("%w %q: %d start markers, expected 1", ErrInvalid, l.ID, n)
	}
	if len(grid.Find(l.Layout, ExitRune)) == 0 {
		return fmt.Errorf("%w %q: no exit", ErrInvalid, l.ID)
	}
	return nil
}

// ToGrid builds the tile map for the level.
func (l Level) ToGrid() (*grid.TileMap, error) {
	m, err := grid.Parse(l.Layout, grid.DefaultLegend)
	if err != nil {
		return nil, fmt.Errorf("levels: %q: %w", l.ID, err)
	}
	return m, nil
}

// Start returns the player start position.
func (l Level) Start() grid.Point {
	if pts := grid.Find(l.Layout, StartRune); len(pts) > 0 {
		return pts[0]
	}
	return grid.P(1, 1)
}

// Exits returns every exit cell.
func (l Level) Exits() []grid.Point {
	return grid.Find(l.Layout, ExitRune)
}

// IsExit reports whether p is one of the level's exits.
func (l Level) IsExit(p grid.Point) bool {
	for _, e := range l.Exits() {
		if e == p {
			return true
		}
	}
	return false
}

// Title returns the display name, falling back to the ID.
func (l Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}
