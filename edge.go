package particlefield

// EdgeBuffer is a reusable flat buffer of proximity-edge endpoints. Each
// edge occupies six floats: the two endpoint coordinate triples. The buffer
// is allocated once at its fixed capacity; slots past the written count
// keep stale data from earlier frames, so renderers must only consume
// Valid().
type EdgeBuffer struct {
	data     []float32
	count    int
	maxEdges int
}

func NewEdgeBuffer(maxEdges int) *EdgeBuffer {
	if maxEdges < 0 {
		maxEdges = 0
	}
	return &EdgeBuffer{
		data:     make([]float32, maxEdges*6),
		maxEdges: maxEdges,
	}
}

func (b *EdgeBuffer) Reset() {
	b.count = 0
}

func (b *EdgeBuffer) Full() bool {
	return b.count >= b.maxEdges
}

// Append writes an edge from p to q at the next free slot. It reports
// whether the edge was written; a full buffer drops the edge silently.
func (b *EdgeBuffer) Append(p, q Point3) bool {
	if b.Full() {
		return false
	}
	at := b.count * 6
	b.data[at] = float32(p.X)
	b.data[at+1] = float32(p.Y)
	b.data[at+2] = float32(p.Z)
	b.data[at+3] = float32(q.X)
	b.data[at+4] = float32(q.Y)
	b.data[at+5] = float32(q.Z)
	b.count++
	return true
}

// Count returns the number of edges written since the last Reset.
func (b *EdgeBuffer) Count() int {
	return b.count
}

// Cap returns the fixed edge capacity.
func (b *EdgeBuffer) Cap() int {
	return b.maxEdges
}

// Valid returns the written prefix of the buffer, count*6 floats. Entries
// past it are stale and deliberately not exposed.
func (b *EdgeBuffer) Valid() []float32 {
	return b.data[:b.count*6]
}

// EdgeFinder recomputes the proximity edges of a cloud into buf and
// returns the number of edges written. Implementations must enumerate
// unordered pairs (i, j), i < j, in canonical nested ascending order so
// that capacity truncation keeps the first-found edges.
type EdgeFinder interface {
	FindEdges(c *Cloud, threshold float64, buf *EdgeBuffer) int
}

type bruteForceFinder struct{}

// NewBruteForceFinder returns the reference O(n^2) pairwise finder.
func NewBruteForceFinder() EdgeFinder {
	return bruteForceFinder{}
}

func (bruteForceFinder) FindEdges(c *Cloud, threshold float64, buf *EdgeBuffer) int {
	buf.Reset()
	if threshold <= 0 {
		return 0
	}
	pts := c.Points()
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
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
