// Package render paints a scene frame: static shapes scaled to the window,
// then the user's strokes on top.
package render

import (
	"log/slog"

	"github.com/gogpu/gg"

	"LocalPaint/internal/geom"
	applog "LocalPaint/internal/log"
	"LocalPaint/internal/state"
)

// Surface receives one frame of draw calls in paint order. Later calls paint
// over earlier ones.
type Surface interface {
	Draw(p geom.Path, s geom.Style) error
}

// Scene is the read side of the scene model.
type Scene interface {
	StaticShapes() []state.Shape
	Strokes() []state.Stroke
}

// Options fix how freehand ink looks and the width static shapes were
// authored against.
type Options struct {
	DesignWidth float64
	Ink         gg.RGBA
	StrokeWidth float64
	Dash        []float64
}

// Frame carries the per-frame inputs.
type Frame struct {
	WindowWidth float64
	Dashed      bool
}

// Stats counts what a frame drew.
type Stats struct {
	Shapes  int
	Strokes int
	Skipped int
}

// Scale is the factor that maps authored coordinates onto the window.
// A non-positive design width leaves shapes at their authored size.
func Scale(windowWidth, designWidth float64) float64 {
	if designWidth <= 0 || windowWidth <= 0 {
		return 1
	}
	return windowWidth / designWidth
}

type Painter struct {
	opts Options
	log  *slog.Logger
}

func NewPainter(opts Options) *Painter {
	return &Painter{opts: opts, log: applog.WithComponent("render")}
}

// InkStyle is the stroke style applied to every freehand stroke.
func (p *Painter) InkStyle(dashed bool) geom.Style {
	if dashed {
		return geom.Stroked(p.opts.Ink, p.opts.StrokeWidth, gg.LineJoinMiter, p.opts.Dash...)
	}
	return geom.Stroked(p.opts.Ink, p.opts.StrokeWidth, gg.LineJoinMiter)
}

// Paint draws scene onto dst. Strokes with fewer than two points, and any
// path the surface cannot draw, are left out of this frame only.
func (p *Painter) Paint(dst Surface, scene Scene, f Frame) Stats {
	var st Stats
	scale := Scale(f.WindowWidth, p.opts.DesignWidth)

	for _, sh := range scene.StaticShapes() {
		path, style := sh.Path, sh.Style
		if scale != 1 {
			path, style = path.Scale(scale), style.Scale(scale)
		}
		if err := dst.Draw(path, style); err != nil {
			p.log.Debug("shape not drawn", slog.String("shape", sh.Name), slog.Any("err", err))
			st.Skipped++
			continue
		}
		st.Shapes++
	}

	ink := p.InkStyle(f.Dashed)
	for _, stroke := range scene.Strokes() {
		if !stroke.Drawable() {
			continue
		}
		path, err := geom.Build(geom.Polyline(stroke.Points))
		if err != nil {
			p.log.Debug("stroke not drawn", slog.String("id", stroke.ID), slog.Any("err", err))
			st.Skipped++
			continue
		}
		if err := dst.Draw(path, ink); err != nil {
			p.log.Debug("stroke not drawn", slog.String("id", stroke.ID), slog.Any("err", err))
			st.Skipped++
			continue
		}
		st.Strokes++
	}
	return st
}
