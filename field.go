package particlefield

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrFieldStopped is returned by Update once Stop has been called.
var ErrFieldStopped = errors.New("particlefield: field is stopped")

// Options configures a Field at creation time.
type Options struct {
	// PointCount is the fixed number of particles. Zero is legal and
	// yields an empty cloud.
	PointCount int
	// SpreadRadius bounds every generated coordinate to
	// [-SpreadRadius, SpreadRadius].
	SpreadRadius float64
	// ProximityThreshold is the distance below which a pair of points is
	// connected by an edge.
	ProximityThreshold float64
	// RotationDelta is added to both rotation angles every update.
	RotationDelta float64
	// Seed drives point generation. Zero picks a time-based seed; any
	// other value makes the cloud, and therefore the edge set,
	// reproducible.
	Seed int64
	// SpatialGrid switches edge recomputation from the O(n^2) pairwise
	// scan to a uniform grid index.
	SpatialGrid bool
}

// DefaultOptions returns the reference configuration.
func DefaultOptions() Options {
	return Options{
		PointCount:         1000,
		SpreadRadius:       5,
		ProximityThreshold: 0.8,
		RotationDelta:      0.0001,
	}
}

type fieldState int

const (
	stateRunning fieldState = iota
	stateStopped
)

// Field owns a fixed 3D point cloud and its proximity-graph overlay. Every
// update advances a slow rigid rotation and recomputes which point pairs
// are close enough to connect. All state is touched only from the render
// tick, so Field needs no locking.
type Field struct {
	opts   Options
	cloud  *Cloud
	edges  *EdgeBuffer
	finder EdgeFinder

	angleX float64
	angleY float64
	state  fieldState
}

// New generates the point cloud and allocates the edge buffer at its
// worst-case capacity of 2*PointCount edges.
func New(opts Options) (*Field, error) {
	if opts.PointCount < 0 {
		return nil, fmt.Errorf("particlefield: point count %d is negative", opts.PointCount)
	}
	if opts.SpreadRadius < 0 {
		return nil, fmt.Errorf("particlefield: spread radius %g is negative", opts.SpreadRadius)
	}
	if opts.ProximityThreshold < 0 {
		return nil, fmt.Errorf("particlefield: proximity threshold %g is negative", opts.ProximityThreshold)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	finder := NewBruteForceFinder()
	if opts.SpatialGrid {
		finder = NewGridFinder()
	}

	return &Field{
		opts:   opts,
		cloud:  NewCloud(opts.PointCount, opts.SpreadRadius, rng),
		edges:  NewEdgeBuffer(2 * opts.PointCount),
		finder: finder,
	}, nil
}

// Update runs one repaint tick: both rotation angles grow by the
// configured delta (accumulation is unbounded, only sin/cos of the angles
// are ever consumed), then the edge set is recomputed from the unrotated
// point positions. The written edge count is returned.
func (f *Field) Update() (int, error) {
	if f.state != stateRunning {
		return 0, ErrFieldStopped
	}
	f.angleX += f.opts.RotationDelta
	f.angleY += f.opts.RotationDelta
	n := f.finder.FindEdges(f.cloud, f.opts.ProximityThreshold, f.edges)
	return n, nil
}

// Stop ends the field's life. Further Updates fail with ErrFieldStopped.
// Stopping twice is harmless.
func (f *Field) Stop() {
	f.state = stateStopped
}

func (f *Field) Stopped() bool {
	return f.state == stateStopped
}

// Angles returns the accumulated rotation around the X and Y axes.
func (f *Field) Angles() (x, y float64) {
	return f.angleX, f.angleY
}

func (f *Field) Cloud() *Cloud {
	return f.cloud
}

func (f *Field) EdgeCount() int {
	return f.edges.Count()
}

// Frame is one render submission: the immutable positions, the valid edge
// prefix with its count, and the rotation to apply at draw time. Renderers
// never see edge slots past EdgeCount.
type Frame struct {
	Positions []float32
	Edges     []float32
	EdgeCount int
	AngleX    float64
	AngleY    float64
}

func (f *Field) Frame() Frame {
	return Frame{
		Positions: f.cloud.Positions(),
		Edges:     f.edges.Valid(),
		EdgeCount: f.edges.Count(),
		AngleX:    f.angleX,
		AngleY:    f.angleY,
	}
}
