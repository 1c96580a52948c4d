package particlefield

import (
	"math"
	"math/rand"
)

// Cloud is the fixed, ordered set of particle positions. It is generated
// once at startup and never resized; a point's identity is its index.
// Alongside the points it keeps the flat count*3 float32 position buffer
// handed to renderers.
type Cloud struct {
	points    []Point3
	positions []float32
	spread    float64
}

// NewCloud samples count points with each coordinate drawn independently
// and uniformly from [-spread, spread].
func NewCloud(count int, spread float64, rng *rand.Rand) *Cloud {
	c := &Cloud{
		points:    make([]Point3, count),
		positions: make([]float32, count*3),
		spread:    spread,
	}
	for i := range c.points {
		p := Point3{
			X: (rng.Float64() - 0.5) * 2 * spread,
			Y: (rng.Float64() - 0.5) * 2 * spread,
			Z: (rng.Float64() - 0.5) * 2 * spread,
		}
		c.points[i] = p
		c.positions[i*3] = float32(p.X)
		c.positions[i*3+1] = float32(p.Y)
		c.positions[i*3+2] = float32(p.Z)
	}
	return c
}

// NewCloudFromPoints builds a cloud around an explicit point set. The
// spread is taken from the largest coordinate magnitude.
func NewCloudFromPoints(points []Point3) *Cloud {
	c := &Cloud{
		points:    make([]Point3, len(points)),
		positions: make([]float32, len(points)*3),
	}
	copy(c.points, points)
	for i, p := range points {
		for _, v := range []float64{p.X, p.Y, p.Z} {
			if a := math.Abs(v); a > c.spread {
				c.spread = a
			}
		}
		c.positions[i*3] = float32(p.X)
		c.positions[i*3+1] = float32(p.Y)
		c.positions[i*3+2] = float32(p.Z)
	}
	return c
}

func (c *Cloud) Len() int {
	return len(c.points)
}

func (c *Cloud) At(i int) Point3 {
	return c.points[i]
}

// Points returns the backing point slice. Callers must not modify it.
func (c *Cloud) Points() []Point3 {
	return c.points
}

// Positions returns the flat x,y,z position buffer. Callers must not
// modify it.
func (c *Cloud) Positions() []float32 {
	return c.positions
}

func (c *Cloud) Spread() float64 {
	return c.spread
}
