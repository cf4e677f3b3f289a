package maze

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-crawl/internal/core"
	"github.com/vovakirdan/tui-crawl/internal/games/dungeon"
	"github.com/vovakirdan/tui-crawl/internal/grid"
	"github.com/vovakirdan/tui-crawl/internal/raycast"
)

// Wall shades from nearest to farthest.
var shades = []rune{'█', '▓', '▒', '░'}

const (
	seamGlyph    = '│'
	seamWidth    = 0.06 // texture band at each wall edge drawn as a seam
	seamDistance = 4.0  // seams are only drawn on walls closer than this
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.loadErr != nil {
		dungeon.DrawOverlay(dst, "No playable level", g.loadErr.Error())
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		dungeon.DrawOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderView(dst)
	if g.automap {
		g.renderAutomap(dst)
	}

	switch {
	case g.won:
		dungeon.DrawOverlay(dst, "You found the way out!", fmt.Sprintf("Final Score: %d  [R] restart", g.score))
	case g.levelCleared:
		dungeon.DrawOverlay(dst, fmt.Sprintf("%s cleared!", g.stage.Level.Title()),
			fmt.Sprintf("%.0fs, bonus %d", g.Elapsed(), g.lastBonus))
	case g.paused:
		dungeon.DrawOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Maze | %s (%d/%d) | Score: %d | Time: %.0fs / par %.0fs | [M] map",
		g.stage.Level.Title(), g.campaign.Index()+1, g.campaign.Len(),
		g.score, g.Elapsed(), g.Par())
	dungeon.DrawHUD(dst, hud)
}

// renderView draws the first-person view: one wall slice per column, with
// the floor below and empty sky above.
func (g *Game) renderView(dst *core.Screen) {
	w := dst.Width()
	viewH := dst.Height() - dungeon.HUDHeight
	if viewH <= 0 {
		return
	}

	columns := g.cfg.View.Columns
	if columns <= 0 || columns > w {
		columns = w
	}
	hits := g.caster.CastFrame(g.cam, columns, w)

	for x := range w {
		hit := hits[x*columns/w]

		top, bottom := viewH/2, viewH/2
		if hit.Hit {
			lineH := int(float64(viewH) / hit.Distance)
			top = max(0, (viewH-lineH)/2)
			bottom = min(viewH, top+lineH)
			if lineH > viewH {
				top, bottom = 0, viewH
			}
			r, c := g.wallLook(hit)
			dst.DrawVLineColored(x, dungeon.HUDHeight+top, bottom-top, r, c)
		}
		if bottom < viewH {
			dst.DrawVLineColored(x, dungeon.HUDHeight+bottom, viewH-bottom, '.', core.ColorDarkGray)
		}
	}
}

// wallLook picks the glyph and color of a wall slice. Farther walls use
// lighter shades and walls hit on a y side are drawn dimmer.
func (g *Game) wallLook(hit raycast.RayHit) (rune, core.Color) {
	c := dungeon.WallColor(hit.WallType, hit.Side == raycast.SideY)

	u := hit.TextureU()
	if hit.Distance < seamDistance && (u < seamWidth || u > 1-seamWidth) {
		return seamGlyph, c
	}

	band := int(hit.Distance / g.caster.MaxDistance() * float64(len(shades)))
	return shades[min(band, len(shades)-1)], c
}

// renderAutomap draws the explored part of the level in a box in the top
// right corner, centered on the player where the map is larger than the box.
func (g *Game) renderAutomap(dst *core.Screen) {
	m := g.stage.Grid
	mapW := min(m.W, dst.Width()/2-2)
	mapH := min(m.H, dst.Height()-dungeon.HUDHeight-2)
	if mapW <= 0 || mapH <= 0 {
		return
	}

	box := core.NewRect(dst.Width()-mapW-2, dungeon.HUDHeight, mapW+2, mapH+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	view := core.Viewport(g.cell.X, g.cell.Y, mapW, mapH, m.W, m.H)
	for sy := range mapH {
		for sx := range mapW {
			p := grid.P(view.X+sx, view.Y+sy)
			if !g.engine.IsExplored(p.X, p.Y) {
				continue
			}
			r, c := g.mapLook(p)
			dst.SetColored(box.X+1+sx, box.Y+1+sy, r, c)
		}
	}
}

func (g *Game) mapLook(p grid.Point) (rune, core.Color) {
	if p == g.cell {
		return headingGlyph(g.cam.Angle()), core.ColorBrightYellow
	}

	tile := g.stage.Grid.Tile(p.X, p.Y)
	r := dungeon.WallGlyph(tile)
	c := dungeon.WallColor(tile, false)
	if tile == grid.Open && g.stage.IsExit(p) {
		r, c = '>', core.ColorBrightCyan
	}
	if !g.engine.IsVisible(p.X, p.Y) {
		c = core.ColorDarkGray
	}
	return r, c
}

// headingGlyph returns an arrow for the closest of the four directions.
func headingGlyph(angle float64) rune {
	arrows := []rune{'→', '↓', '←', '↑'}
	quarter := int(math.Round(angle/(math.Pi/2))) % 4
	if quarter < 0 {
		quarter += 4
	}
	return arrows[quarter]
}
