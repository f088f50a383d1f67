package ui

import (
	"log/slog"
	"math"

	"LocalPaint/internal/geom"
	applog "LocalPaint/internal/log"
	"LocalPaint/internal/render"
	"LocalPaint/internal/state"
)

// Mode is the position of the pointer state machine.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDragging
)

func (m Mode) String() string {
	if m == ModeDragging {
		return "dragging"
	}
	return "idle"
}

// Controller turns pointer and button events into scene mutations and owns
// the dash toggle. Event handlers only update state; drawing happens in
// Render, once per frame.
//
// Like the scene it drives, a Controller must only be used from the UI
// goroutine.
type Controller struct {
	scene   *state.Scene
	painter *render.Painter

	mode   Mode
	origin geom.Point
	dashed bool
	redraw bool

	log *slog.Logger
}

func NewController(scene *state.Scene, painter *render.Painter) *Controller {
	return &Controller{
		scene:   scene,
		painter: painter,
		log:     applog.WithComponent("controller"),
	}
}

func (c *Controller) Mode() Mode            { return c.mode }
func (c *Controller) Dashed() bool          { return c.dashed }
func (c *Controller) Scene() *state.Scene   { return c.scene }
func (c *Controller) Origin() geom.Point    { return c.origin }
// RedrawRequested reports whether state changed since the last Render.
// It is informational: the widget redraws on every tick regardless.
func (c *Controller) RedrawRequested() bool { return c.redraw }

// PointerDown starts a stroke at p. The point is also the stroke's first
// vertex. A second press without a release starts a fresh stroke.
func (c *Controller) PointerDown(p geom.Point) {
	c.origin = p
	c.scene.StartStroke(p)
	c.scene.ExtendActiveStroke(p)
	c.mode = ModeDragging
	c.redraw = true
}

// PointerMove extends the active stroke. With shift held the point is
// snapped onto the horizontal or vertical line through the drag origin.
// Moves while idle are ignored.
func (c *Controller) PointerMove(p geom.Point, shift bool) {
	if c.mode != ModeDragging {
		return
	}
	if c.scene.ExtendActiveStroke(Snap(c.origin, p, shift)) {
		c.redraw = true
	}
}

func (c *Controller) PointerUp() {
	if c.mode != ModeDragging {
		return
	}
	c.scene.EndActiveStroke()
	c.mode = ModeIdle
	c.redraw = true
}

// ToggleDash flips the dash mode and returns the new value.
func (c *Controller) ToggleDash() bool {
	c.dashed = !c.dashed
	c.redraw = true
	c.log.Debug("dash mode", slog.Bool("dashed", c.dashed))
	return c.dashed
}

// Clear drops every stroke. A drag in progress is abandoned: its stroke goes
// with the rest and the remaining moves of that drag are ignored.
func (c *Controller) Clear() {
	if c.mode == ModeDragging {
		c.log.Debug("clear during drag", slog.Any("origin", c.origin))
	}
	c.scene.ClearStrokes()
	c.mode = ModeIdle
	c.redraw = true
}

// Render paints one frame onto dst for a window windowWidth units wide.
func (c *Controller) Render(dst render.Surface, windowWidth float64) render.Stats {
	c.redraw = false
	return c.painter.Paint(dst, c.scene, render.Frame{WindowWidth: windowWidth, Dashed: c.dashed})
}

// Snap returns the point a move to p records for a drag that began at origin.
// Ties go to the vertical axis.
func Snap(origin, p geom.Point, shift bool) geom.Point {
	if !shift {
		return p
	}
	dx, dy := p.X-origin.X, p.Y-origin.Y
	if math.Abs(dx) > math.Abs(dy) {
		return geom.Pt(p.X, origin.Y)
	}
	return geom.Pt(origin.X, p.Y)
}
