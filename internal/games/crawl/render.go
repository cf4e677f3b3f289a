package crawl

import (
	"fmt"

	"github.com/vovakirdan/tui-crawl/internal/core"
	"github.com/vovakirdan/tui-crawl/internal/games/dungeon"
	"github.com/vovakirdan/tui-crawl/internal/grid"
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

	g.renderMap(dst)

	switch {
	case g.won:
		dungeon.DrawOverlay(dst, "You escaped the dungeon!", fmt.Sprintf("Final Score: %d  [R] restart", g.Score()))
	case g.levelCleared:
		dungeon.DrawOverlay(dst, fmt.Sprintf("%s cleared!", g.stage.Level.Title()), fmt.Sprintf("Score: %d", g.Score()))
	case g.paused:
		dungeon.DrawOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Crawl | %s (%d/%d) | Score: %d | Torch: %d | Explored: %d/%d",
		g.stage.Level.Title(), g.campaign.Index()+1, g.campaign.Len(),
		g.Score(), g.radius, g.engine.ExploredCount(), g.stage.Explorable())
	dungeon.DrawHUD(dst, hud)
}

// renderMap draws the part of the level around the player. Lit cells use
// their own colors, remembered cells are gray, unknown cells stay blank.
func (g *Game) renderMap(dst *core.Screen) {
	m := g.stage.Grid
	viewW := dst.Width()
	viewH := dst.Height() - dungeon.HUDHeight
	view := core.Viewport(g.player.X, g.player.Y, viewW, viewH, m.W, m.H)

	// Center maps that are smaller than the screen
	offX := max(0, (viewW-m.W)/2)
	offY := max(0, (viewH-m.H)/2)

	for sy := range viewH {
		for sx := range viewW {
			wx := view.X + sx - offX
			wy := view.Y + sy - offY
			if !m.InBounds(wx, wy) || !g.engine.IsExplored(wx, wy) {
				continue
			}
			r, c := g.cellLook(grid.P(wx, wy))
			dst.SetColored(sx, sy+dungeon.HUDHeight, r, c)
		}
	}
}

// cellLook returns the glyph and color for an explored cell.
func (g *Game) cellLook(p grid.Point) (rune, core.Color) {
	if p == g.player {
		return '@', core.ColorBrightYellow
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
