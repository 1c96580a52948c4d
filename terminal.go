package particlefield

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
)

// ErrScreenInit is returned when the terminal screen cannot be created.
var ErrScreenInit = errors.New("particlefield: terminal screen init failed")

// TerminalOptions configures the tcell render surface.
type TerminalOptions struct {
	TickInterval   time.Duration
	CameraDistance float64
	FOVDegrees     float64
	ShowStatus     bool
	NearColor      tcell.Color
	FarColor       tcell.Color
}

func DefaultTerminalOptions() TerminalOptions {
	return TerminalOptions{
		TickInterval:   33 * time.Millisecond,
		CameraDistance: 10,
		FOVDegrees:     75,
		ShowStatus:     true,
		NearColor:      tcell.NewRGBColor(160, 220, 255),
		FarColor:       tcell.NewRGBColor(40, 70, 140),
	}
}

// Light to dark with distance from the camera.
var depthRamp = []rune{'█', '▓', '▒', '░', '·'}

// TerminalRenderer draws the field into a terminal. A ticker stands in for
// the display's repaint signal. Input is polled on its own goroutine but
// delivered over a channel and applied on the render goroutine, so paused
// and the nudge angles are only ever touched from one goroutine.
type TerminalRenderer struct {
	field  *Field
	screen tcell.Screen
	cam    *Camera
	opts   TerminalOptions

	paused bool
	nudgeX float64
	nudgeY float64
}

// NewTerminalRenderer creates and initializes a real terminal screen.
// Failure to do so is the one creation-time error this package surfaces.
func NewTerminalRenderer(f *Field, opts TerminalOptions) (*TerminalRenderer, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScreenInit, err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScreenInit, err)
	}
	return NewTerminalRendererWithScreen(f, s, opts), nil
}

// NewTerminalRendererWithScreen wraps an already-initialized screen, which
// lets tests inject a tcell.SimulationScreen.
func NewTerminalRendererWithScreen(f *Field, s tcell.Screen, opts TerminalOptions) *TerminalRenderer {
	def := DefaultTerminalOptions()
	if opts.TickInterval <= 0 {
		opts.TickInterval = def.TickInterval
	}
	if opts.CameraDistance <= 0 {
		opts.CameraDistance = def.CameraDistance
	}
	if opts.FOVDegrees <= 0 {
		opts.FOVDegrees = def.FOVDegrees
	}
	if opts.NearColor == tcell.ColorDefault {
		opts.NearColor = def.NearColor
	}
	if opts.FarColor == tcell.ColorDefault {
		opts.FarColor = def.FarColor
	}

	w, h := s.Size()
	return &TerminalRenderer{
		field:  f,
		screen: s,
		cam:    NewCamera(opts.CameraDistance, opts.FOVDegrees, w, h),
		opts:   opts,
	}
}

// Run blocks until the user quits or the field stops.
func (t *TerminalRenderer) Run() error {
	defer t.screen.Fini()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event)
	go t.pollEvents(events, done)

	ticker := time.NewTicker(t.opts.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !t.handleEvent(ev) {
				t.field.Stop()
				return nil
			}
		case <-ticker.C:
			if t.field.Stopped() {
				return nil
			}
			if !t.paused {
				if _, err := t.field.Update(); err != nil {
					if errors.Is(err, ErrFieldStopped) {
						return nil
					}
					return err
				}
			}
			t.drawFrame()
		}
	}
}

// pollEvents forwards screen events to the render goroutine until the
// screen is finalized or the loop is done.
func (t *TerminalRenderer) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent applies one input event and reports whether the loop should
// keep running.
func (t *TerminalRenderer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			t.nudgeX -= 0.1
		case tcell.KeyDown:
			t.nudgeX += 0.1
		case tcell.KeyLeft:
			t.nudgeY -= 0.1
		case tcell.KeyRight:
			t.nudgeY += 0.1
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case ' ':
				t.paused = !t.paused
			case 'r':
				t.nudgeX, t.nudgeY = 0, 0
			}
		}
	case *tcell.EventResize:
		t.screen.Sync()
		w, h := t.screen.Size()
		t.cam.Resize(w, h)
	}
	return true
}

func (t *TerminalRenderer) drawFrame() {
	t.screen.Clear()

	frame := t.field.Frame()
	rot := NewRotationMatrix(ROTY, frame.AngleY+t.nudgeY).
		MultiplyBy(NewRotationMatrix(ROTX, frame.AngleX+t.nudgeX))

	w, h := t.screen.Size()
	edgeStyle := tcell.StyleDefault.Foreground(t.opts.FarColor)

	for e := 0; e < frame.EdgeCount; e++ {
		a := rot.TransformPoint(pointAt(frame.Edges, e*6))
		b := rot.TransformPoint(pointAt(frame.Edges, e*6+3))
		ax, ay, _, okA := t.projectCell(a)
		bx, by, _, okB := t.projectCell(b)
		if !okA || !okB {
			continue
		}
		t.strokeCells(ax, ay, bx, by, w, h, edgeStyle)
	}

	for i := 0; i+2 < len(frame.Positions); i += 3 {
		p := rot.TransformPoint(pointAt(frame.Positions, i))
		cx, cy, depth, ok := t.projectCell(p)
		if !ok || cx < 0 || cx >= w || cy < 0 || cy >= h {
			continue
		}
		nd := t.normalDepth(depth)
		ch := depthRamp[int(nd*float64(len(depthRamp)-1))]
		style := tcell.StyleDefault.Foreground(lerpColor(t.opts.NearColor, t.opts.FarColor, nd))
		t.screen.SetContent(cx, cy, ch, nil, style)
	}

	if t.opts.ShowStatus {
		status := fmt.Sprintf("particles: %d  edges: %d  q:quit space:pause arrows:rotate",
			t.field.Cloud().Len(), frame.EdgeCount)
		drawText(t.screen, 1, h-1, tcell.StyleDefault.Foreground(tcell.ColorDarkGray), status)
	}

	t.screen.Show()
}

// projectCell projects into cell coordinates, stretching x by two because
// terminal cells are about half as wide as they are tall.
func (t *TerminalRenderer) projectCell(p Point3) (int, int, float64, bool) {
	sx, sy, depth, ok := t.cam.Project(p)
	if !ok {
		return 0, 0, depth, false
	}
	w, _ := t.cam.Size()
	cx := float64(w)/2 + (sx-float64(w)/2)*2
	return int(cx), int(sy), depth, true
}

// normalDepth maps depth into [0,1] across the cloud's extent.
func (t *TerminalRenderer) normalDepth(depth float64) float64 {
	spread := t.field.Cloud().Spread()
	if spread <= 0 {
		return 0
	}
	near := t.cam.Distance() - spread
	return clamp((depth-near)/(2*spread), 0, 1)
}

// strokeCells walks the segment with Bresenham, skipping out-of-bounds
// cells.
func (t *TerminalRenderer) strokeCells(x0, y0, x1, y1, w, h int, style tcell.Style) {
	dx := int(math.Abs(float64(x1 - x0)))
	dy := -int(math.Abs(float64(y1 - y0)))
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		if x0 >= 0 && x0 < w && y0 >= 0 && y0 < h {
			t.screen.SetContent(x0, y0, '·', nil, style)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func lerpColor(near, far tcell.Color, t float64) tcell.Color {
	nr, ng, nb := near.RGB()
	fr, fg, fb := far.RGB()
	return tcell.NewRGBColor(
		int32(float64(nr)+(float64(fr)-float64(nr))*t),
		int32(float64(ng)+(float64(fg)-float64(ng))*t),
		int32(float64(nb)+(float64(fb)-float64(nb))*t),
	)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for i, r := range str {
		s.SetContent(x+i, y, r, nil, style)
	}
}
