package particlefield

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// WindowOptions configures the ebiten render surface.
type WindowOptions struct {
	Width          int
	Height         int
	Title          string
	VSync          bool
	ShowFPS        bool
	PointSize      float64
	LineWidth      float64
	CameraDistance float64
	FOVDegrees     float64
	Background     color.RGBA
	PointColor     color.RGBA
	EdgeColor      color.RGBA
}

func DefaultWindowOptions() WindowOptions {
	return WindowOptions{
		Width:          960,
		Height:         600,
		Title:          "particlefield",
		VSync:          true,
		PointSize:      2,
		LineWidth:      1,
		CameraDistance: 10,
		FOVDegrees:     75,
		Background:     color.RGBA{A: 255},
		PointColor:     color.RGBA{R: 140, G: 200, B: 255, A: 255},
		EdgeColor:      color.RGBA{R: 90, G: 130, B: 200, A: 255},
	}
}

// WindowRenderer drives a Field from ebiten's game loop. Ebiten guarantees
// one Update completes before the next is queued, which is the repaint
// scheduler contract the Field relies on.
type WindowRenderer struct {
	field  *Field
	cam    *Camera
	opts   WindowOptions
	paused bool
}

func NewWindowRenderer(f *Field, opts WindowOptions) *WindowRenderer {
	def := DefaultWindowOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.Title == "" {
		opts.Title = def.Title
	}
	if opts.PointSize <= 0 {
		opts.PointSize = def.PointSize
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = def.LineWidth
	}
	if opts.CameraDistance <= 0 {
		opts.CameraDistance = def.CameraDistance
	}
	if opts.FOVDegrees <= 0 {
		opts.FOVDegrees = def.FOVDegrees
	}
	if opts.Background == (color.RGBA{}) {
		opts.Background = def.Background
	}
	if opts.PointColor == (color.RGBA{}) {
		opts.PointColor = def.PointColor
	}
	if opts.EdgeColor == (color.RGBA{}) {
		opts.EdgeColor = def.EdgeColor
	}

	return &WindowRenderer{
		field: f,
		cam:   NewCamera(opts.CameraDistance, opts.FOVDegrees, opts.Width, opts.Height),
		opts:  opts,
	}
}

func (w *WindowRenderer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		w.field.Stop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w.paused = !w.paused
	}
	if w.field.Stopped() {
		return ebiten.Termination
	}
	if w.paused {
		return nil
	}
	if _, err := w.field.Update(); err != nil {
		if errors.Is(err, ErrFieldStopped) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (w *WindowRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(w.opts.Background)

	frame := w.field.Frame()
	rot := NewRotationMatrix(ROTY, frame.AngleY).MultiplyBy(NewRotationMatrix(ROTX, frame.AngleX))

	// Edges first so particles draw on top of their connections.
	for e := 0; e < frame.EdgeCount; e++ {
		a := rot.TransformPoint(pointAt(frame.Edges, e*6))
		b := rot.TransformPoint(pointAt(frame.Edges, e*6+3))
		ax, ay, ad, okA := w.cam.Project(a)
		bx, by, bd, okB := w.cam.Project(b)
		if !okA || !okB {
			continue
		}
		col := scaleColor(w.opts.EdgeColor, w.depthFade((ad+bd)/2))
		DrawLine(screen, ax, ay, bx, by, w.opts.LineWidth, col)
	}

	for i := 0; i+2 < len(frame.Positions); i += 3 {
		p := rot.TransformPoint(pointAt(frame.Positions, i))
		sx, sy, depth, ok := w.cam.Project(p)
		if !ok {
			continue
		}
		radius := w.opts.PointSize * w.cam.Distance() / depth
		col := scaleColor(w.opts.PointColor, w.depthFade(depth))
		drawFilledCircle(screen, sx, sy, radius, col)
	}

	if w.opts.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f  edges: %d", ebiten.ActualFPS(), frame.EdgeCount))
	}
}

// depthFade maps a camera-space depth onto a brightness factor so the far
// side of the cloud recedes.
func (w *WindowRenderer) depthFade(depth float64) float64 {
	spread := w.field.Cloud().Spread()
	if spread <= 0 {
		return 1
	}
	near := w.cam.Distance() - spread
	far := w.cam.Distance() + spread
	return clamp((far-depth)/(far-near), 0.15, 1)
}

func (w *WindowRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.cam.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until the field stops or the window
// closes.
func (w *WindowRenderer) Run() error {
	ebiten.SetWindowSize(w.opts.Width, w.opts.Height)
	ebiten.SetWindowTitle(w.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(w.opts.VSync)

	err := ebiten.RunGame(w)
	w.field.Stop()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window renderer: %w", err)
	}
	return nil
}
