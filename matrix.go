package particlefield

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	ROTX = 0
	ROTY = 1
	ROTZ = 2
)

// Matrix is a 4x4 transform. m[c][r] holds row r of column c, so
// TransformPoint computes the usual M*v product.
type Matrix struct {
	m [4][4]float64
}

func IdentMatrix() *Matrix {
	out := &Matrix{}
	out.m[0][0], out.m[1][1], out.m[2][2], out.m[3][3] = 1.0, 1.0, 1.0, 1.0
	return out
}

func NewRotationMatrix(axis int, theta float64) *Matrix {
	out := &Matrix{}
	c, s := math.Cos(theta), math.Sin(theta)
	switch axis {
	case ROTX:
		out.m[0][0] = 1.0
		out.m[1][1] = c
		out.m[2][1] = -s
		out.m[1][2] = s
		out.m[2][2] = c
	case ROTY:
		out.m[0][0] = c
		out.m[2][0] = s
		out.m[0][2] = -s
		out.m[2][2] = c
		out.m[1][1] = 1.0
	case ROTZ:
		out.m[0][0] = c
		out.m[1][0] = -s
		out.m[0][1] = s
		out.m[1][1] = c
		out.m[2][2] = 1.0
	}
	out.m[3][3] = 1.0
	return out
}

func TransMatrix(x, y, z float64) *Matrix {
	out := IdentMatrix()
	out.m[3][0] = x
	out.m[3][1] = y
	out.m[3][2] = z
	return out
}

// FromMGL converts a column-major mgl64.Mat4 into a Matrix.
func FromMGL(src mgl64.Mat4) *Matrix {
	out := &Matrix{}
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out.m[c][r] = src[c*4+r]
		}
	}
	return out
}

func (m *Matrix) MultiplyBy(other *Matrix) *Matrix {
	out := &Matrix{}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out.m[c][r] = m.m[0][r]*other.m[c][0] +
				m.m[1][r]*other.m[c][1] +
				m.m[2][r]*other.m[c][2] +
				m.m[3][r]*other.m[c][3]
		}
	}
	return out
}

// TransformPoint applies the full transform, translation included, to p.
func (m *Matrix) TransformPoint(p Point3) Point3 {
	return Point3{
		X: m.m[0][0]*p.X + m.m[1][0]*p.Y + m.m[2][0]*p.Z + m.m[3][0],
		Y: m.m[0][1]*p.X + m.m[1][1]*p.Y + m.m[2][1]*p.Z + m.m[3][1],
		Z: m.m[0][2]*p.X + m.m[1][2]*p.Y + m.m[2][2]*p.Z + m.m[3][2],
	}
}

func (m *Matrix) Copy() *Matrix {
	out := &Matrix{}
	out.m = m.m
	return out
}
