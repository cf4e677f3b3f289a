package raycast

import (
	"math"

	"github.com/vovakirdan/tui-crawl/internal/grid"
)

// MinDistance is the smallest distance a hit reports.
// Projection divides by distance, so hits closer than this are clamped.
const MinDistance = 0.1

// Side identifies which kind of grid line a ray crossed last.
const (
	SideX = 0 // vertical grid line, reached by an x step
	SideY = 1 // horizontal grid line, reached by a y step
)

// RayHit is the result of casting one ray.
type RayHit struct {
	Hit      bool    // false means the ray found nothing (draw background)
	Distance float64 // perpendicular distance, clamped to [MinDistance, maxDistance]
	WallType int     // tile value of the wall that was hit
	Side     int     // SideX or SideY
	HitX     float64 // world coordinates of the hit point
	HitY     float64
	MapX     int // grid cell that was hit
	MapY     int
}

// TextureU returns the horizontal texture coordinate in [0, 1) along the
// wall face that was hit.
func (h RayHit) TextureU() float64 {
	v := h.HitX
	if h.Side == SideX {
		v = h.HitY
	}
	return v - math.Floor(v)
}

// Caster casts rays against a grid.
type Caster struct {
	grid        grid.Grid
	maxDistance float64
}

// NewCaster creates a caster. Non-positive maxDistance falls back to 20.
func NewCaster(g grid.Grid, maxDistance float64) *Caster {
	if maxDistance <= 0 {
		maxDistance = 20
	}
	return &Caster{grid: g, maxDistance: maxDistance}
}

// MaxDistance returns the distance cap applied to hits.
func (c *Caster) MaxDistance() float64 {
	return c.maxDistance
}

// CastRay walks the grid from the origin along (dirX, dirY), stepping exactly
// from one grid line to the next, until it enters a non-open cell.
// Out-of-bounds cells count as walls of type grid.Void.
func (c *Caster) CastRay(originX, originY, dirX, dirY float64) RayHit {
	if dirX == 0 && dirY == 0 {
		return RayHit{}
	}

	mapX := int(math.Floor(originX))
	mapY := int(math.Floor(originY))

	deltaDistX := math.Inf(1)
	if dirX != 0 {
		deltaDistX = math.Abs(1 / dirX)
	}
	deltaDistY := math.Inf(1)
	if dirY != 0 {
		deltaDistY = math.Abs(1 / dirY)
	}

	var stepX, stepY int
	var sideDistX, sideDistY float64
	if dirX < 0 {
		stepX = -1
		sideDistX = (originX - float64(mapX)) * deltaDistX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1 - originX) * deltaDistX
	}
	if dirY < 0 {
		stepY = -1
		sideDistY = (originY - float64(mapY)) * deltaDistY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1 - originY) * deltaDistY
	}

	maxSteps := int(math.Ceil(2 * c.maxDistance))
	side := SideX
	hit := false
	for range maxSteps {
		if sideDistX < sideDistY {
			sideDistX += deltaDistX
			mapX += stepX
			side = SideX
		} else {
			sideDistY += deltaDistY
			mapY += stepY
			side = SideY
		}
		if c.grid.Tile(mapX, mapY) != grid.Open {
			hit = true
			break
		}
	}
	if !hit {
		return RayHit{}
	}

	// Distance to the camera plane rather than along the ray; this is what
	// keeps flat walls flat across the screen.
	var perp float64
	if side == SideX {
		perp = (float64(mapX) - originX + float64(1-stepX)/2) / dirX
	} else {
		perp = (float64(mapY) - originY + float64(1-stepY)/2) / dirY
	}

	return RayHit{
		Hit:      true,
		Distance: math.Max(MinDistance, math.Min(c.maxDistance, perp)),
		WallType: c.grid.Tile(mapX, mapY),
		Side:     side,
		HitX:     originX + perp*dirX,
		HitY:     originY + perp*dirY,
		MapX:     mapX,
		MapY:     mapY,
	}
}

// CastColumn casts the ray for one screen column.
// Column 0 is the left edge of the view, screenWidth the right edge.
func (c *Caster) CastColumn(cam Camera, column, screenWidth int) RayHit {
	if screenWidth <= 0 {
		return RayHit{}
	}
	cameraX := 2*float64(column)/float64(screenWidth) - 1
	return c.CastRay(
		cam.PosX, cam.PosY,
		cam.DirX+cam.PlaneX*cameraX,
		cam.DirY+cam.PlaneY*cameraX,
	)
}

// CastFrame casts numColumns rays spread evenly across a screen of
// screenWidth columns and returns them in column order. Columns whose ray
// found nothing have Hit == false.
func (c *Caster) CastFrame(cam Camera, numColumns, screenWidth int) []RayHit {
	if numColumns <= 0 || screenWidth <= 0 {
		return nil
	}
	hits := make([]RayHit, numColumns)
	for i := range hits {
		hits[i] = c.CastColumn(cam, i*screenWidth/numColumns, screenWidth)
	}
	return hits
}
