package particlefield

import (
	"math/rand"
	"testing"
)

func edgeEndpoints(buf *EdgeBuffer, e int) (Point3, Point3) {
	data := buf.Valid()
	return pointAt(data, e*6), pointAt(data, e*6+3)
}

func TestFindEdgesSinglePair(t *testing.T) {
	c := NewCloudFromPoints([]Point3{
		NewPoint3(0, 0, 0),
		NewPoint3(0.1, 0, 0),
		NewPoint3(5, 5, 5),
		NewPoint3(-5, -5, -5),
	})
	buf := NewEdgeBuffer(2 * c.Len())

	n := NewBruteForceFinder().FindEdges(c, 0.8, buf)
	if n != 1 {
		t.Fatalf("edge count = %d, want 1", n)
	}
	a, b := edgeEndpoints(buf, 0)
	if !pointsAlmostEqual(a, c.At(0)) || !pointsAlmostEqual(b, c.At(1)) {
		t.Errorf("edge connects %+v -> %+v, want points 0 and 1", a, b)
	}
}

func TestFindEdgesZeroThreshold(t *testing.T) {
	c := NewCloud(100, 5, rand.New(rand.NewSource(11)))
	buf := NewEdgeBuffer(2 * c.Len())
	if n := NewBruteForceFinder().FindEdges(c, 0, buf); n != 0 {
		t.Errorf("edge count = %d, want 0 for zero threshold", n)
	}
}

func TestFindEdgesIdempotent(t *testing.T) {
	c := NewCloud(200, 2, rand.New(rand.NewSource(5)))
	finder := NewBruteForceFinder()

	buf := NewEdgeBuffer(2 * c.Len())
	first := finder.FindEdges(c, 0.8, buf)
	firstData := append([]float32(nil), buf.Valid()...)

	second := finder.FindEdges(c, 0.8, buf)
	if first != second {
		t.Fatalf("edge count changed across calls: %d vs %d", first, second)
	}
	for i, v := range buf.Valid() {
		if v != firstData[i] {
			t.Fatalf("edge data changed across calls at float %d", i)
		}
	}
}

func TestFindEdgesRespectsThreshold(t *testing.T) {
	c := NewCloud(200, 2, rand.New(rand.NewSource(9)))
	buf := NewEdgeBuffer(2 * c.Len())
	threshold := 0.5

	n := NewBruteForceFinder().FindEdges(c, threshold, buf)
	for e := 0; e < n; e++ {
		a, b := edgeEndpoints(buf, e)
		// Endpoints round-trip through float32, so allow a whisker.
		if d := a.DistanceTo(b); d >= threshold+1e-3 {
			t.Errorf("edge %d has length %v, threshold %v", e, d, threshold)
		}
	}
}

func TestFindEdgesCapacity(t *testing.T) {
	// Eight points packed inside the threshold produce C(8,2)=28
	// qualifying pairs; capacity 2n=16 keeps the first sixteen in nested
	// ascending order, ending at pair (2,5).
	pts := make([]Point3, 8)
	for i := range pts {
		pts[i] = NewPoint3(float64(i)*0.01, 0, 0)
	}
	c := NewCloudFromPoints(pts)
	buf := NewEdgeBuffer(2 * c.Len())

	n := NewBruteForceFinder().FindEdges(c, 0.8, buf)
	if n != 16 {
		t.Fatalf("edge count = %d, want 16 (capacity)", n)
	}

	first, second := edgeEndpoints(buf, 0)
	if !pointsAlmostEqual(first, pts[0]) || !pointsAlmostEqual(second, pts[1]) {
		t.Errorf("first edge is %+v -> %+v, want pair (0,1)", first, second)
	}
	lastA, lastB := edgeEndpoints(buf, 15)
	if !pointsAlmostEqual(lastA, pts[2]) || !pointsAlmostEqual(lastB, pts[5]) {
		t.Errorf("last edge is %+v -> %+v, want pair (2,5)", lastA, lastB)
	}
}

func TestEdgeBufferValidExcludesStale(t *testing.T) {
	c := NewCloudFromPoints([]Point3{
		NewPoint3(0, 0, 0),
		NewPoint3(0.1, 0, 0),
		NewPoint3(0.2, 0, 0),
	})
	buf := NewEdgeBuffer(2 * c.Len())
	finder := NewBruteForceFinder()

	if n := finder.FindEdges(c, 0.8, buf); n != 3 {
		t.Fatalf("edge count = %d, want 3", n)
	}
	// A tighter threshold writes fewer edges; the stale tail must not be
	// visible.
	if n := finder.FindEdges(c, 0.15, buf); n != 2 {
		t.Fatalf("edge count = %d, want 2", n)
	}
	if len(buf.Valid()) != 2*6 {
		t.Errorf("Valid length = %d, want 12", len(buf.Valid()))
	}
}
