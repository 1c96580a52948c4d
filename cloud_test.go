package particlefield

import (
	"math"
	"math/rand"
	"testing"
)

func TestNewCloudBounds(t *testing.T) {
	testCases := []struct {
		count  int
		spread float64
	}{
		{1, 0.5},
		{10, 5},
		{500, 5},
		{1000, 12.5},
	}

	for _, tc := range testCases {
		rng := rand.New(rand.NewSource(42))
		c := NewCloud(tc.count, tc.spread, rng)

		if c.Len() != tc.count {
			t.Fatalf("Len = %d, want %d", c.Len(), tc.count)
		}
		for i, p := range c.Points() {
			for _, v := range []float64{p.X, p.Y, p.Z} {
				if math.Abs(v) > tc.spread {
					t.Errorf("point %d coordinate %v outside [-%v, %v]", i, v, tc.spread, tc.spread)
				}
			}
		}
	}
}

func TestNewCloudEmpty(t *testing.T) {
	c := NewCloud(0, 5, rand.New(rand.NewSource(1)))
	if c.Len() != 0 {
		t.Errorf("Len = %d, want 0", c.Len())
	}
	if len(c.Positions()) != 0 {
		t.Errorf("Positions length = %d, want 0", len(c.Positions()))
	}
}

func TestNewCloudDeterministic(t *testing.T) {
	a := NewCloud(100, 5, rand.New(rand.NewSource(7)))
	b := NewCloud(100, 5, rand.New(rand.NewSource(7)))
	for i := range a.Points() {
		if a.At(i) != b.At(i) {
			t.Fatalf("point %d differs across identically seeded clouds", i)
		}
	}
}

func TestCloudPositionsMatchPoints(t *testing.T) {
	c := NewCloud(50, 5, rand.New(rand.NewSource(3)))
	pos := c.Positions()
	if len(pos) != c.Len()*3 {
		t.Fatalf("Positions length = %d, want %d", len(pos), c.Len()*3)
	}
	for i, p := range c.Points() {
		if pos[i*3] != float32(p.X) || pos[i*3+1] != float32(p.Y) || pos[i*3+2] != float32(p.Z) {
			t.Errorf("position buffer mismatch at point %d", i)
		}
	}
}

func TestNewCloudFromPoints(t *testing.T) {
	pts := []Point3{
		NewPoint3(0, 0, 0),
		NewPoint3(0.1, 0, 0),
		NewPoint3(-3, 2, 1),
	}
	c := NewCloudFromPoints(pts)
	if c.Len() != 3 {
		t.Fatalf("Len = %d, want 3", c.Len())
	}
	if !almostEqual(c.Spread(), 3) {
		t.Errorf("Spread = %v, want 3", c.Spread())
	}
	if c.At(1) != pts[1] {
		t.Errorf("At(1) = %+v, want %+v", c.At(1), pts[1])
	}
}
