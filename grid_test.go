package particlefield

import (
	"math/rand"
	"testing"
)

func TestGridMatchesBruteForce(t *testing.T) {
	testCases := []struct {
		name      string
		count     int
		spread    float64
		threshold float64
		seed      int64
	}{
		{"sparse", 200, 5, 0.8, 1},
		{"dense", 200, 1, 0.8, 2},
		{"tiny threshold", 300, 5, 0.05, 3},
		{"truncating", 100, 0.5, 2, 4}, // every pair qualifies, capacity hit
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCloud(tc.count, tc.spread, rand.New(rand.NewSource(tc.seed)))

			bruteBuf := NewEdgeBuffer(2 * c.Len())
			gridBuf := NewEdgeBuffer(2 * c.Len())

			nBrute := NewBruteForceFinder().FindEdges(c, tc.threshold, bruteBuf)
			nGrid := NewGridFinder().FindEdges(c, tc.threshold, gridBuf)

			if nBrute != nGrid {
				t.Fatalf("edge counts differ: brute %d, grid %d", nBrute, nGrid)
			}
			brute, grid := bruteBuf.Valid(), gridBuf.Valid()
			for i := range brute {
				if brute[i] != grid[i] {
					t.Fatalf("edge sequences diverge at float %d (edge %d)", i, i/6)
				}
			}
		})
	}
}

func TestGridReuseAcrossCalls(t *testing.T) {
	c := NewCloud(150, 2, rand.New(rand.NewSource(6)))
	finder := NewGridFinder()
	buf := NewEdgeBuffer(2 * c.Len())

	first := finder.FindEdges(c, 0.8, buf)
	second := finder.FindEdges(c, 0.8, buf)
	if first != second {
		t.Errorf("grid finder not idempotent: %d vs %d", first, second)
	}

	// Changing the threshold rebuilds the index.
	loose := finder.FindEdges(c, 1.6, buf)
	if loose < first {
		t.Errorf("looser threshold found fewer edges: %d < %d", loose, first)
	}
}

func TestGridZeroThreshold(t *testing.T) {
	c := NewCloud(50, 5, rand.New(rand.NewSource(8)))
	buf := NewEdgeBuffer(2 * c.Len())
	if n := NewGridFinder().FindEdges(c, 0, buf); n != 0 {
		t.Errorf("edge count = %d, want 0 for zero threshold", n)
	}
}
