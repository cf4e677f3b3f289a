// Package grid provides the occupancy map shared by the visibility and
// raycasting code. Maps are owned and mutated by the games; the algorithms
// only read them through the Grid interface.
package grid

import "fmt"

// Tile values. Zero is open floor, anything positive is a wall variant.
const (
	Open = 0
	Void = -1 // Returned for out-of-bounds reads
)

// Grid is the read-only view of a map that the algorithms consume.
type Grid interface {
	Width() int
	Height() int

	// IsOpaque reports whether a cell blocks sight.
	// Out-of-bounds coordinates are always opaque.
	IsOpaque(x, y int) bool

	// Tile returns the raw tile value, or Void when out of bounds.
	Tile(x, y int) int
}

// Point is an integer cell coordinate.
// X increases to the right, Y increases downward.
type Point struct {
	X int
	Y int
}

// P is a convenience constructor for Point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns a new Point offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// DistSq returns the squared Euclidean distance to another point.
func (p Point) DistSq(other Point) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// TileMap is a rectangular map stored in row-major order: index = y*W + x.
type TileMap struct {
	W     int
	H     int
	Tiles []int
}

// NewTileMap creates an all-open map with the given dimensions.
func NewTileMap(w, h int) *TileMap {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &TileMap{
		W:     w,
		H:     h,
		Tiles: make([]int, w*h),
	}
}

// Width returns the map width in cells.
func (m *TileMap) Width() int {
	return m.W
}

// Height returns the map height in cells.
func (m *TileMap) Height() int {
	return m.H
}

// InBounds returns true if the coordinate is within the map.
func (m *TileMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.W && y >= 0 && y < m.H
}

// Tile returns the tile value at (x, y), or Void if out of bounds.
func (m *TileMap) Tile(x, y int) int {
	if !m.InBounds(x, y) {
		return Void
	}
	return m.Tiles[y*m.W+x]
}

// IsOpaque reports whether (x, y) is a wall or out of bounds.
func (m *TileMap) IsOpaque(x, y int) bool {
	return m.Tile(x, y) != Open
}

// Set stores a tile value. Out-of-bounds writes are ignored.
func (m *TileMap) Set(x, y, tile int) {
	if m.InBounds(x, y) {
		m.Tiles[y*m.W+x] = tile
	}
}

// Fill sets every cell to the given tile.
func (m *TileMap) Fill(tile int) {
	for i := range m.Tiles {
		m.Tiles[i] = tile
	}
}

// Border sets the outermost ring of cells to the given tile.
func (m *TileMap) Border(tile int) {
	for x := 0; x < m.W; x++ {
		m.Set(x, 0, tile)
		m.Set(x, m.H-1, tile)
	}
	for y := 0; y < m.H; y++ {
		m.Set(0, y, tile)
		m.Set(m.W-1, y, tile)
	}
}

// Clone returns a deep copy of the map.
func (m *TileMap) Clone() *TileMap {
	tiles := make([]int, len(m.Tiles))
	copy(tiles, m.Tiles)
	return &TileMap{W: m.W, H: m.H, Tiles: tiles}
}

// Count returns the number of cells holding the given tile.
func (m *TileMap) Count(tile int) int {
	n := 0
	for _, t := range m.Tiles {
		if t == tile {
			n++
		}
	}
	return n
}

// Ensure TileMap implements Grid
var _ Grid = (*TileMap)(nil)
