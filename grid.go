package particlefield

import (
	"math"
	"sort"
)

// gridFinder indexes the cloud into a uniform hash grid with cells the
// size of the proximity threshold, so every qualifying pair lives in the
// same or an adjacent cell. The cloud is immutable, so the index is built
// once and reused until the cloud or the threshold changes.
//
// Candidates for each point are sorted ascending before the distance test,
// which keeps the emitted edge sequence identical to the brute-force
// finder, capacity truncation included.
type gridFinder struct {
	cloud    *Cloud
	cellSize float64
	cells    map[[3]int][]int
	scratch  []int
}

// NewGridFinder returns a spatial-grid edge finder.
func NewGridFinder() EdgeFinder {
	return &gridFinder{}
}

func (g *gridFinder) FindEdges(c *Cloud, threshold float64, buf *EdgeBuffer) int {
	buf.Reset()
	if threshold <= 0 {
		return 0
	}
	if g.cloud != c || g.cellSize != threshold {
		g.rebuild(c, threshold)
	}

	pts := c.Points()
	for i := 0; i < len(pts); i++ {
		if buf.Full() {
			return buf.Count()
		}
		g.scratch = g.scratch[:0]
		home := g.cellOf(pts[i])
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for dz := -1; dz <= 1; dz++ {
					cell := [3]int{home[0] + dx, home[1] + dy, home[2] + dz}
					for _, j := range g.cells[cell] {
						if j > i {
							g.scratch = append(g.scratch, j)
						}
					}
				}
			}
		}
		sort.Ints(g.scratch)
		for _, j := range g.scratch {
			if buf.Full() {
				return buf.Count()
			}
			if pts[i].DistanceTo(pts[j]) < threshold {
				buf.Append(pts[i], pts[j])
			}
		}
	}
	return buf.Count()
}

func (g *gridFinder) rebuild(c *Cloud, cellSize float64) {
	g.cloud = c
	g.cellSize = cellSize
	g.cells = make(map[[3]int][]int, c.Len())
	for i, p := range c.Points() {
		cell := g.cellOf(p)
		g.cells[cell] = append(g.cells[cell], i)
	}
}

func (g *gridFinder) cellOf(p Point3) [3]int {
	return [3]int{
		int(math.Floor(p.X / g.cellSize)),
		int(math.Floor(p.Y / g.cellSize)),
		int(math.Floor(p.Z / g.cellSize)),
	}
}
