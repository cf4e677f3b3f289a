// Package fov computes field of view over a grid using recursive
// shadowcasting, and remembers every cell the observer has ever seen.
package fov

import (
	"cmp"
	"slices"

	"github.com/vovakirdan/tui-crawl/internal/grid"
)

// octants maps the canonical sweep into each of the 8 symmetric directions.
// For a sweep cell (dx, dy) the world offset is:
//
//	worldX = ox + dx*xx + dy*xy
//	worldY = oy + dx*yx + dy*yy
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// Engine tracks what an observer can see on a grid.
// The visible set is rebuilt on every Compute; the explored set only grows.
type Engine struct {
	grid     grid.Grid
	visible  map[grid.Point]struct{}
	explored map[grid.Point]struct{}

	// Per-call sweep parameters
	ox, oy   int
	radius   int
	radiusSq int
}

// NewEngine creates an engine reading the given grid.
func NewEngine(g grid.Grid) *Engine {
	return &Engine{
		grid:     g,
		visible:  make(map[grid.Point]struct{}),
		explored: make(map[grid.Point]struct{}),
	}
}

// SetGrid points the engine at a different grid.
// Both sets are kept; call Reset when the map itself changes.
func (e *Engine) SetGrid(g grid.Grid) {
	e.grid = g
}

// Reset forgets both the visible and explored sets.
func (e *Engine) Reset() {
	clear(e.visible)
	clear(e.explored)
}

// Compute rebuilds the visible set for an observer at (x, y).
// A negative radius behaves like 0: only the observer's own cell is seen.
func (e *Engine) Compute(x, y, radius int) {
	clear(e.visible)

	if radius < 0 {
		radius = 0
	}
	e.ox, e.oy = x, y
	e.radius = radius
	e.radiusSq = radius * radius

	// The observer always sees its own cell, even if it is a wall.
	e.mark(x, y)

	if e.grid == nil {
		return
	}
	for i := range octants {
		e.castLight(1, 1.0, 0.0, &octants[i])
	}
}

// castLight sweeps one octant row by row, starting at row and covering the
// slope interval [end, start]. Rows grow away from the observer; within a
// row dx walks from the outer edge (-row) toward the centerline (0).
func (e *Engine) castLight(row int, start, end float64, m *[4]int) {
	if start < end {
		return
	}
	xx, xy, yx, yy := m[0], m[1], m[2], m[3]
	newStart := 0.0

	for j := row; j <= e.radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := e.ox + dx*xx + dy*xy
			wy := e.oy + dx*yx + dy*yy

			leftSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rightSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if !e.inBounds(wx, wy) || start < rightSlope {
				continue
			}
			if end > leftSlope {
				break
			}

			if dx*dx+dy*dy <= e.radiusSq {
				e.mark(wx, wy)
			}

			opaque := e.grid.IsOpaque(wx, wy)
			if blocked {
				if opaque {
					newStart = rightSlope
					continue
				}
				blocked = false
				start = newStart
			} else if opaque && j < e.radius {
				blocked = true
				e.castLight(j+1, start, leftSlope, m)
				newStart = rightSlope
			}
		}
		if blocked {
			break
		}
	}
}

func (e *Engine) inBounds(x, y int) bool {
	return x >= 0 && x < e.grid.Width() && y >= 0 && y < e.grid.Height()
}

func (e *Engine) mark(x, y int) {
	p := grid.P(x, y)
	e.visible[p] = struct{}{}
	e.explored[p] = struct{}{}
}

// IsVisible reports whether (x, y) was seen by the last Compute.
func (e *Engine) IsVisible(x, y int) bool {
	_, ok := e.visible[grid.P(x, y)]
	return ok
}

// IsExplored reports whether (x, y) has ever been seen.
func (e *Engine) IsExplored(x, y int) bool {
	_, ok := e.explored[grid.P(x, y)]
	return ok
}

// VisibleCount returns the size of the visible set.
func (e *Engine) VisibleCount() int {
	return len(e.visible)
}

// ExploredCount returns the size of the explored set.
func (e *Engine) ExploredCount() int {
	return len(e.explored)
}

// Visible returns the visible cells in row-major order.
func (e *Engine) Visible() []grid.Point {
	return sortedPoints(e.visible)
}

// ExportExplored returns every explored cell in row-major order.
// The result is a flat coordinate list suitable for persistence.
func (e *Engine) ExportExplored() []grid.Point {
	return sortedPoints(e.explored)
}

// ImportExplored merges previously exported cells into the explored set.
// Existing exploration is kept, so the set never shrinks.
func (e *Engine) ImportExplored(pts []grid.Point) {
	for _, p := range pts {
		e.explored[p] = struct{}{}
	}
}

func sortedPoints(set map[grid.Point]struct{}) []grid.Point {
	pts := make([]grid.Point, 0, len(set))
	for p := range set {
		pts = append(pts, p)
	}
	slices.SortFunc(pts, func(a, b grid.Point) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return pts
}
