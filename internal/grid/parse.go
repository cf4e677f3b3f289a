package grid

import (
	"errors"
	"fmt"
)

// ErrEmptyLayout is returned when a layout has no rows or no columns.
var ErrEmptyLayout = errors.New("grid: empty layout")

// Legend maps layout runes to tile values.
// Runes missing from the legend parse as Open.
type Legend map[rune]int

// DefaultLegend covers the wall variants used by the built-in levels.
var DefaultLegend = Legend{
	'#': 1, // stone
	'%': 2, // brick
	'&': 3, // moss
	'+': 4, // closed door
}

// Parse builds a TileMap from rows of runes.
// Short rows are padded with open cells up to the longest row.
// Any rune that is not in the legend (floor, markers) is open.
func Parse(layout []string, legend Legend) (*TileMap, error) {
	if len(layout) == 0 {
		return nil, ErrEmptyLayout
	}

	width := 0
	for _, row := range layout {
		if n := len([]rune(row)); n > width {
			width = n
		}
	}
	if width == 0 {
		return nil, ErrEmptyLayout
	}

	m := NewTileMap(width, len(layout))
	for y, row := range layout {
		for x, ch := range []rune(row) {
			tile, ok := legend[ch]
			if !ok {
				continue
			}
			if tile < 0 {
				return nil, fmt.Errorf("grid: negative tile %d for %q", tile, ch)
			}
			m.Set(x, y, tile)
		}
	}
	return m, nil
}

// Find returns every coordinate in the layout holding the given rune.
func Find(layout []string, ch rune) []Point {
	var pts []Point
	for y, row := range layout {
		for x, r := range []rune(row) {
			if r == ch {
				pts = append(pts, P(x, y))
			}
		}
	}
	return pts
}
