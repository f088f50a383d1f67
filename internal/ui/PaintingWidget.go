package ui

import (
	"image"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/gogpu/gg"

	"LocalPaint/internal/geom"
	applog "LocalPaint/internal/log"
	"LocalPaint/internal/render"
)

// PaintingWidget shows the scene and feeds mouse input to its controller.
// The picture is rasterised offscreen by gg and shown through a
// canvas.Raster that is refreshed on every animation tick.
type PaintingWidget struct {
	widget.BaseWidget

	ctrl    *Controller
	surface *render.Canvas
	ticker  *fyne.Animation
	minSize fyne.Size

	// OnChanged runs after input that changed the scene or the dash mode.
	OnChanged func()

	log *slog.Logger
}

var _ fyne.Widget = (*PaintingWidget)(nil)
var _ desktop.Mouseable = (*PaintingWidget)(nil)
var _ desktop.Hoverable = (*PaintingWidget)(nil)

func NewPaintingWidget(ctrl *Controller, background gg.RGBA) *PaintingWidget {
	p := &PaintingWidget{
		ctrl:    ctrl,
		surface: render.NewCanvas(1, 1, 1, background),
		minSize: fyne.NewSize(300, 300),
		log:     applog.WithComponent("widget"),
	}
	p.ExtendBaseWidget(p)
	return p
}

func (p *PaintingWidget) Controller() *Controller { return p.ctrl }

// StartTicker begins the continuous redraw loop. Calling it twice is a no-op.
func (p *PaintingWidget) StartTicker() {
	if p.ticker != nil {
		return
	}
	p.ticker = &fyne.Animation{
		Duration:    time.Second,
		RepeatCount: fyne.AnimationRepeatForever,
		Tick:        p.tick,
	}
	p.ticker.Start()
}

// tick asks for a new frame whether or not anything changed, so a window
// resize or any mutation shows up within one frame.
func (p *PaintingWidget) tick(float32) {
	p.Refresh()
}

// Close stops the redraw loop and releases the offscreen surface.
func (p *PaintingWidget) Close() {
	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
	}
	if err := p.surface.Close(); err != nil {
		p.log.Debug("close surface", slog.Any("err", err))
	}
}

func toPoint(pos fyne.Position) geom.Point {
	return geom.Pt(float64(pos.X), float64(pos.Y))
}

func (p *PaintingWidget) changed() {
	if p.OnChanged != nil {
		p.OnChanged()
	}
}

func (p *PaintingWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	p.ctrl.PointerDown(toPoint(e.Position))
	p.changed()
}

func (p *PaintingWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	p.ctrl.PointerUp()
	p.changed()
}

func (p *PaintingWidget) MouseMoved(e *desktop.MouseEvent) {
	if p.ctrl.Mode() != ModeDragging {
		return
	}
	p.ctrl.PointerMove(toPoint(e.Position), e.Modifier&fyne.KeyModifierShift != 0)
}

func (p *PaintingWidget) MouseIn(*desktop.MouseEvent) {}
func (p *PaintingWidget) MouseOut()                  {}

// ToggleDash flips the dash mode and reports the new value.
func (p *PaintingWidget) ToggleDash() bool {
	d := p.ctrl.ToggleDash()
	p.changed()
	return d
}

func (p *PaintingWidget) Clear() {
	p.ctrl.Clear()
	p.changed()
}

// windowWidth is the width of the window holding the widget, falling back
// to the widget's own width before it is shown.
func (p *PaintingWidget) windowWidth() float64 {
	if app := fyne.CurrentApp(); app != nil {
		if c := app.Driver().CanvasForObject(p); c != nil && c.Size().Width > 0 {
			return float64(c.Size().Width)
		}
	}
	return float64(p.Size().Width)
}

// frame renders the scene into a w x h pixel image.
func (p *PaintingWidget) frame(w, h int) image.Image {
	ratio := 1.0
	if size := p.Size(); size.Width > 0 {
		ratio = float64(w) / float64(size.Width)
	}
	if err := p.surface.Begin(w, h, ratio); err != nil {
		p.log.Warn("frame skipped", slog.Any("err", err))
		return image.NewRGBA(image.Rect(0, 0, w, h))
	}
	stats := p.ctrl.Render(p.surface, p.windowWidth())
	if stats.Skipped > 0 {
		p.log.Debug("frame drawn with gaps", slog.Int("skipped", stats.Skipped))
	}
	return p.surface.Image()
}

func (p *PaintingWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &paintingWidgetRenderer{painting: p}
	r.raster = canvas.NewRaster(p.frame)
	return r
}

type paintingWidgetRenderer struct {
	painting *PaintingWidget
	raster   *canvas.Raster
}

func (r *paintingWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster}
}

func (r *paintingWidgetRenderer) Refresh() {
	r.raster.Refresh()
}

func (r *paintingWidgetRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
}

func (r *paintingWidgetRenderer) MinSize() fyne.Size {
	return r.painting.minSize
}

func (r *paintingWidgetRenderer) Destroy() {}
