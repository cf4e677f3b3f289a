package dungeon

import (
	"github.com/vovakirdan/tui-crawl/internal/core"
	"github.com/vovakirdan/tui-crawl/internal/grid"
	"github.com/vovakirdan/tui-crawl/internal/levels"
)

// WallGlyph returns the map glyph for a tile.
func WallGlyph(tile int) rune {
	switch tile {
	case grid.Open:
		return '.'
	case levels.TileBrick:
		return '%'
	case levels.TileMoss:
		return '&'
	case levels.TileDoor:
		return '+'
	default:
		return '#'
	}
}

// WallColor returns the color of a tile. Dim picks the darker variant used
// for the faces lit from the side in the first-person view.
func WallColor(tile int, dim bool) core.Color {
	bright, dark := core.ColorBrightWhite, core.ColorWhite
	switch tile {
	case grid.Open:
		bright, dark = core.ColorWhite, core.ColorGray
	case levels.TileBrick:
		bright, dark = core.ColorBrightRed, core.ColorRed
	case levels.TileMoss:
		bright, dark = core.ColorBrightGreen, core.ColorGreen
	case levels.TileDoor:
		bright, dark = core.ColorBrightYellow, core.ColorOrange
	case grid.Void:
		bright, dark = core.ColorGray, core.ColorDarkGray
	}
	if dim {
		return dark
	}
	return bright
}

// DrawHUD draws a status line on row 0 and a separator on row 1.
func DrawHUD(dst *core.Screen, text string) {
	dst.DrawTextColored(0, 0, text, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// HUDHeight is the number of rows DrawHUD uses.
const HUDHeight = 2

// DrawOverlay draws a centered two-line message box.
func DrawOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	h := 5
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	drawCentered(dst, line1, box.Y+1, core.ColorBrightYellow)
	drawCentered(dst, line2, box.Y+3, core.ColorDefault)
}

func drawCentered(dst *core.Screen, text string, y int, c core.Color) {
	x := (dst.Width() - len([]rune(text))) / 2
	dst.DrawTextColored(x, y, text, c)
}
