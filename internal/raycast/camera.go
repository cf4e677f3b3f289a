// Package raycast implements a DDA grid raycaster for column-based
// pseudo-3D views.
package raycast

import (
	"math"

	"github.com/vovakirdan/tui-crawl/internal/grid"
)

// Camera is a viewpoint on the grid.
// Dir is a unit forward vector; Plane is perpendicular to it and its length
// is tan(fov/2), so rays fanned across Plane span the field of view.
type Camera struct {
	PosX, PosY     float64
	DirX, DirY     float64
	PlaneX, PlaneY float64
}

// NewCamera creates a camera at (x, y) looking along angle (radians, 0 = +X,
// increasing toward +Y) with the given horizontal field of view in degrees.
func NewCamera(x, y, angle, fovDegrees float64) Camera {
	fovDegrees = math.Max(1, math.Min(179, fovDegrees))
	half := math.Tan(fovDegrees * math.Pi / 360)

	dirX, dirY := math.Cos(angle), math.Sin(angle)
	return Camera{
		PosX:   x,
		PosY:   y,
		DirX:   dirX,
		DirY:   dirY,
		PlaneX: -dirY * half,
		PlaneY: dirX * half,
	}
}

// Angle returns the heading of the camera in radians.
func (c Camera) Angle() float64 {
	return math.Atan2(c.DirY, c.DirX)
}

// Rotate turns the camera by angle radians, keeping Plane perpendicular to Dir.
func (c *Camera) Rotate(angle float64) {
	cos, sin := math.Cos(angle), math.Sin(angle)

	dirX := c.DirX*cos - c.DirY*sin
	c.DirY = c.DirX*sin + c.DirY*cos
	c.DirX = dirX

	planeX := c.PlaneX*cos - c.PlaneY*sin
	c.PlaneY = c.PlaneX*sin + c.PlaneY*cos
	c.PlaneX = planeX
}

// Cell returns the grid cell the camera stands in.
func (c Camera) Cell() grid.Point {
	return grid.P(int(math.Floor(c.PosX)), int(math.Floor(c.PosY)))
}

// Step moves the camera dist units along its direction (negative moves
// backward). Each axis is checked separately so the camera slides along
// walls instead of stopping dead, and it never enters an opaque cell.
// Returns true if the camera moved at all.
func Step(c *Camera, dist float64, g grid.Grid) bool {
	moved := false

	nx := c.PosX + c.DirX*dist
	if !g.IsOpaque(int(math.Floor(nx)), int(math.Floor(c.PosY))) {
		moved = moved || nx != c.PosX
		c.PosX = nx
	}

	ny := c.PosY + c.DirY*dist
	if !g.IsOpaque(int(math.Floor(c.PosX)), int(math.Floor(ny))) {
		moved = moved || ny != c.PosY
		c.PosY = ny
	}

	return moved
}
