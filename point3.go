package particlefield

import "math"

// Point3 is a position in 3D space. Particle positions are generated once
// and never move; rotation is applied to the whole set as a render
// transform, never written back to the stored coordinates.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

func NewPoint3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// DistanceTo returns the Euclidean distance between p and other.
func (p Point3) DistanceTo(other Point3) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	dz := p.Z - other.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Rotate rotates the point around the X axis, then the Y axis.
func (p Point3) Rotate(ax, ay float64) Point3 {
	cosX, sinX := math.Cos(ax), math.Sin(ax)
	cosY, sinY := math.Cos(ay), math.Sin(ay)

	y := p.Y*cosX - p.Z*sinX
	z := p.Y*sinX + p.Z*cosX
	p.Y, p.Z = y, z

	x := p.X*cosY + p.Z*sinY
	z = -p.X*sinY + p.Z*cosY
	p.X, p.Z = x, z

	return p
}
