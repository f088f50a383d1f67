package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gg"

	"LocalPaint/internal/geom"
)

// Canvas is a Surface that rasterises into an offscreen gg context.
// PixelRatio maps logical units to device pixels.
type Canvas struct {
	dc         *gg.Context
	pixelRatio float64
	background gg.RGBA
}

func NewCanvas(width, height int, pixelRatio float64, background gg.RGBA) *Canvas {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	return &Canvas{
		dc:         gg.NewContext(width, height),
		pixelRatio: pixelRatio,
		background: background,
	}
}

// Begin prepares a new frame of the given pixel size and paints the
// background.
func (c *Canvas) Begin(width, height int, pixelRatio float64) error {
	if err := c.dc.Resize(width, height); err != nil {
		return fmt.Errorf("resize canvas: %w", err)
	}
	if pixelRatio > 0 {
		c.pixelRatio = pixelRatio
	}
	c.dc.ClearWithColor(c.background)
	return nil
}

func (c *Canvas) Width() int  { return c.dc.Width() }
func (c *Canvas) Height() int { return c.dc.Height() }

// Image returns a copy of the current pixels. Pending accelerated draws
// are flushed first.
func (c *Canvas) Image() image.Image {
	_ = c.dc.FlushGPU()
	return c.dc.Image()
}

func (c *Canvas) Close() error {
	return c.dc.Close()
}

var errNothingToDraw = errors.New("render: empty path")

// Draw paints p with s.
func (c *Canvas) Draw(p geom.Path, s geom.Style) error {
	if p.IsZero() {
		return errNothingToDraw
	}
	if c.pixelRatio != 1 {
		p, s = p.Scale(c.pixelRatio), s.Scale(c.pixelRatio)
	}
	replay(c.dc, p)

	switch s.Kind {
	case geom.KindFill:
		c.dc.SetFillRule(s.Rule)
		c.dc.SetFillBrush(gg.Solid(s.Color))
		return c.dc.Fill()
	case geom.KindGradient:
		c.dc.SetFillRule(s.Rule)
		c.dc.SetFillBrush(gradientBrush(s.Gradient, p))
		return c.dc.Fill()
	case geom.KindStroke:
		stroke := gg.DefaultStroke().WithWidth(s.Stroke.Width).WithJoin(s.Stroke.Join)
		if len(s.Stroke.Dash) > 0 {
			stroke = stroke.WithDashPattern(s.Stroke.Dash...)
		}
		c.dc.SetStroke(stroke)
		c.dc.SetStrokeBrush(gg.Solid(s.Color))
		return c.dc.Stroke()
	default:
		c.dc.ClearPath()
		return fmt.Errorf("render: unknown paint kind %d", s.Kind)
	}
}

// replay loads p into the context's current path.
func replay(dc *gg.Context, p geom.Path) {
	dc.ClearPath()
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			dc.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			dc.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			dc.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			dc.ClosePath()
		}
	}
}
