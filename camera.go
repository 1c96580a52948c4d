package particlefield

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const nearPlane = 0.1

// Camera sits on the +Z axis looking at the origin and projects
// camera-space points onto a pixel surface. Resize keeps the projection
// aspect-correct when the viewport changes.
type Camera struct {
	view     *Matrix
	distance float64
	fovY     float64 // vertical field of view, radians
	width    int
	height   int
	focal    float64
}

func NewCamera(distance, fovYDegrees float64, width, height int) *Camera {
	c := &Camera{
		distance: distance,
		fovY:     fovYDegrees * math.Pi / 180,
	}
	c.view = FromMGL(mgl64.LookAtV(
		mgl64.Vec3{0, 0, distance},
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{0, 1, 0},
	))
	c.Resize(width, height)
	return c
}

// Resize recomputes the focal length for the new viewport size.
func (c *Camera) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c.width = width
	c.height = height
	c.focal = float64(height) / (2 * math.Tan(c.fovY/2))
}

func (c *Camera) Size() (int, int) {
	return c.width, c.height
}

func (c *Camera) Distance() float64 {
	return c.distance
}

// Project maps a world-space point to screen coordinates. The returned
// depth is the distance in front of the camera; ok is false when the point
// is behind the near plane.
func (c *Camera) Project(p Point3) (sx, sy, depth float64, ok bool) {
	cp := c.view.TransformPoint(p)
	depth = -cp.Z
	if depth <= nearPlane {
		return 0, 0, depth, false
	}
	sx = c.focal*cp.X/depth + float64(c.width)/2
	sy = -c.focal*cp.Y/depth + float64(c.height)/2
	return sx, sy, depth, true
}
