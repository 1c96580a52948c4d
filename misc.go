package particlefield

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func DrawLine(screen *ebiten.Image, startX, startY, endX, endY, width float64, col color.Color) {
	vector.StrokeLine(screen, float32(startX), float32(startY), float32(endX), float32(endY), float32(width), col, true)
}

func drawFilledCircle(screen *ebiten.Image, cx, cy, radius float64, col color.Color) {
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(radius), col, true)
}

// scaleColor darkens a color by t in [0,1], alpha included.
func scaleColor(c color.RGBA, t float64) color.RGBA {
	t = clamp(t, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * t),
		G: uint8(float64(c.G) * t),
		B: uint8(float64(c.B) * t),
		A: uint8(float64(c.A) * t),
	}
}

// pointAt reads a coordinate triple out of a flat position buffer.
func pointAt(buf []float32, at int) Point3 {
	return Point3{
		X: float64(buf[at]),
		Y: float64(buf[at+1]),
		Z: float64(buf[at+2]),
	}
}
