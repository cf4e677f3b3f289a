package fov

import (
	"testing"

	"github.com/vovakirdan/tui-crawl/internal/grid"
)

// borderedMap creates a w x h map with a ring of stone on the border.
func borderedMap(w, h int) *grid.TileMap {
	m := grid.NewTileMap(w, h)
	m.Border(1)
	return m
}

func TestObserverAlwaysVisible(t *testing.T) {
	m := borderedMap(16, 16)
	m.Set(7, 7, 2) // observer standing on a wall still sees itself

	positions := []grid.Point{grid.P(3, 3), grid.P(7, 7), grid.P(1, 14)}
	for _, p := range positions {
		for _, r := range []int{0, 1, 3, 10} {
			e := NewEngine(m)
			e.Compute(p.X, p.Y, r)
			if !e.IsVisible(p.X, p.Y) {
				t.Errorf("observer %v radius %d: own cell should be visible", p, r)
			}
			if !e.IsExplored(p.X, p.Y) {
				t.Errorf("observer %v radius %d: own cell should be explored", p, r)
			}
		}
	}
}

func TestRadiusZeroSeesOnlySelf(t *testing.T) {
	e := NewEngine(grid.NewTileMap(10, 10))
	e.Compute(5, 5, 0)

	if e.VisibleCount() != 1 {
		t.Errorf("radius 0 should see 1 cell, got %d", e.VisibleCount())
	}

	e.Compute(5, 5, -3)
	if e.VisibleCount() != 1 {
		t.Errorf("negative radius should see 1 cell, got %d", e.VisibleCount())
	}
}

func TestOpenMapMatchesDisk(t *testing.T) {
	// On a wall-free map the visible set is exactly the in-bounds disk.
	m := grid.NewTileMap(31, 27)
	observers := []grid.Point{grid.P(15, 13), grid.P(2, 3), grid.P(30, 0)}

	for _, o := range observers {
		for _, r := range []int{0, 1, 2, 5, 10} {
			e := NewEngine(m)
			e.Compute(o.X, o.Y, r)

			expected := 0
			for y := 0; y < m.H; y++ {
				for x := 0; x < m.W; x++ {
					inDisk := grid.P(x, y).DistSq(o) <= r*r
					if inDisk {
						expected++
					}
					if e.IsVisible(x, y) != inDisk {
						t.Errorf("observer %v radius %d: cell (%d,%d) visible=%v, expected %v",
							o, r, x, y, e.IsVisible(x, y), inDisk)
					}
				}
			}
			if e.VisibleCount() != expected {
				t.Errorf("observer %v radius %d: %d visible cells, expected %d",
					o, r, e.VisibleCount(), expected)
			}
		}
	}
}

func TestRadiusBounded(t *testing.T) {
	m := borderedMap(40, 40)
	m.Set(12, 10, 1)
	m.Set(20, 25, 2)
	m.Set(21, 25, 2)
	m.Set(8, 18, 3)

	o := grid.P(15, 17)
	for _, r := range []int{3, 7, 12, 30} {
		e := NewEngine(m)
		e.Compute(o.X, o.Y, r)
		for _, p := range e.Visible() {
			if p.DistSq(o) > r*r {
				t.Errorf("radius %d: cell %v beyond radius marked visible", r, p)
			}
		}
	}
}

func TestWallOccludes(t *testing.T) {
	m := grid.NewTileMap(20, 20)
	m.Set(10, 8, 1)

	e := NewEngine(m)
	e.Compute(10, 10, 8)

	if !e.IsVisible(10, 8) {
		t.Error("the wall itself should be visible")
	}
	if e.IsVisible(10, 7) {
		t.Error("cell directly behind the wall should be hidden")
	}
	if e.IsVisible(10, 5) {
		t.Error("cell far behind the wall should be hidden")
	}

	// Removing the wall re-opens the line of sight
	m.Set(10, 8, grid.Open)
	e.Compute(10, 10, 8)
	if !e.IsVisible(10, 7) || !e.IsVisible(10, 5) {
		t.Error("cells should be visible once the wall is removed")
	}
}

func TestPillarShadow(t *testing.T) {
	// 16x16 bordered room with a single brick pillar at (5,5).
	m := borderedMap(16, 16)
	m.Set(5, 5, 2)

	e := NewEngine(m)
	e.Compute(2, 2, 10)

	visible := []grid.Point{
		grid.P(5, 5), // the pillar
		grid.P(4, 4),
		grid.P(4, 5),
		grid.P(5, 4),
		grid.P(3, 3),
	}
	for _, p := range visible {
		if !e.IsVisible(p.X, p.Y) {
			t.Errorf("%v should be visible", p)
		}
	}

	hidden := []grid.Point{
		grid.P(6, 6),
		grid.P(7, 7),
		grid.P(8, 8),
		grid.P(9, 9),
	}
	for _, p := range hidden {
		if e.IsVisible(p.X, p.Y) {
			t.Errorf("%v is behind the pillar and should be hidden", p)
		}
	}
}

func TestSymmetricShadows(t *testing.T) {
	// A plus-shaped arrangement around the observer must give a
	// visible set that is symmetric under the 8 grid symmetries.
	m := grid.NewTileMap(21, 21)
	for _, d := range [][2]int{{3, 0}, {-3, 0}, {0, 3}, {0, -3}} {
		m.Set(10+d[0], 10+d[1], 1)
	}

	e := NewEngine(m)
	e.Compute(10, 10, 9)

	for _, p := range e.Visible() {
		dx, dy := p.X-10, p.Y-10
		mirrors := [][2]int{
			{-dx, dy}, {dx, -dy}, {-dx, -dy},
			{dy, dx}, {-dy, dx}, {dy, -dx}, {-dy, -dx},
		}
		for _, mm := range mirrors {
			if !e.IsVisible(10+mm[0], 10+mm[1]) {
				t.Errorf("visible %v has hidden mirror (%d,%d)", p, 10+mm[0], 10+mm[1])
			}
		}
	}
}

func TestExplorationIsMonotonic(t *testing.T) {
	m := borderedMap(30, 12)
	for y := 1; y < 11; y++ {
		if y != 6 {
			m.Set(15, y, 1) // wall with a single gap
		}
	}

	e := NewEngine(m)
	path := []grid.Point{grid.P(2, 2), grid.P(6, 6), grid.P(14, 6), grid.P(16, 6), grid.P(27, 9)}

	prev := map[grid.Point]bool{}
	for i, p := range path {
		e.Compute(p.X, p.Y, 8)

		for q := range prev {
			if !e.IsExplored(q.X, q.Y) {
				t.Errorf("step %d: previously explored %v was lost", i, q)
			}
		}
		for _, q := range e.Visible() {
			if !e.IsExplored(q.X, q.Y) {
				t.Errorf("step %d: visible %v not in explored set", i, q)
			}
		}

		current := map[grid.Point]bool{}
		for _, q := range e.ExportExplored() {
			current[q] = true
		}
		if len(current) < len(prev) {
			t.Errorf("step %d: explored set shrank from %d to %d", i, len(prev), len(current))
		}
		prev = current
	}
}

func TestVisibleClearedBetweenComputes(t *testing.T) {
	m := borderedMap(40, 10)
	e := NewEngine(m)

	e.Compute(3, 5, 4)
	if !e.IsVisible(5, 5) {
		t.Fatal("(5,5) should be visible from (3,5)")
	}

	e.Compute(35, 5, 4)
	if e.IsVisible(5, 5) {
		t.Error("stale visibility should be cleared by Compute")
	}
	if !e.IsExplored(5, 5) {
		t.Error("explored cells should survive a new Compute")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	m := borderedMap(20, 20)
	e := NewEngine(m)
	e.Compute(5, 5, 6)
	e.Compute(12, 12, 6)
	exported := e.ExportExplored()

	// Row-major order
	for i := 1; i < len(exported); i++ {
		a, b := exported[i-1], exported[i]
		if a.Y > b.Y || (a.Y == b.Y && a.X >= b.X) {
			t.Fatalf("export not in row-major order at %d: %v then %v", i, a, b)
		}
	}

	restored := NewEngine(m)
	restored.ImportExplored(exported)
	if restored.ExploredCount() != len(exported) {
		t.Errorf("restored %d cells, expected %d", restored.ExploredCount(), len(exported))
	}
	for _, p := range exported {
		if !restored.IsExplored(p.X, p.Y) {
			t.Errorf("%v missing after import", p)
		}
		if restored.IsVisible(p.X, p.Y) {
			t.Errorf("%v should not be visible before any Compute", p)
		}
	}

	// Import merges with existing exploration
	restored.Compute(17, 2, 2)
	restored.ImportExplored(exported[:3])
	if !restored.IsExplored(17, 2) {
		t.Error("import should not drop cells explored locally")
	}
}

func TestReset(t *testing.T) {
	e := NewEngine(grid.NewTileMap(10, 10))
	e.Compute(4, 4, 3)
	e.Reset()

	if e.VisibleCount() != 0 || e.ExploredCount() != 0 {
		t.Errorf("Reset should empty both sets, got %d visible %d explored",
			e.VisibleCount(), e.ExploredCount())
	}
}

func TestObserverOutOfBounds(t *testing.T) {
	e := NewEngine(grid.NewTileMap(5, 5))
	e.Compute(-2, 2, 4)

	if !e.IsVisible(-2, 2) {
		t.Error("observer cell should be marked even when off the map")
	}
	for _, p := range e.Visible() {
		if p == grid.P(-2, 2) {
			continue
		}
		if p.X < 0 || p.X >= 5 || p.Y < 0 || p.Y >= 5 {
			t.Errorf("out of bounds cell %v marked visible", p)
		}
	}
}

func BenchmarkCompute(b *testing.B) {
	m := borderedMap(80, 40)
	for x := 10; x < 70; x += 7 {
		for y := 5; y < 35; y += 5 {
			m.Set(x, y, 1)
		}
	}
	e := NewEngine(m)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Compute(40, 20, 15)
	}
}
