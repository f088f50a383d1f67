package geom

import (
	"math"

	"github.com/gogpu/gg"
)

// Path is a finalized, immutable vector path. The zero Path is empty and
// paints nothing. Transforms return new paths and never touch the receiver.
type Path struct {
	p *gg.Path
}

// IsZero reports whether the path has no elements.
func (p Path) IsZero() bool {
	return p.p == nil || len(p.p.Elements()) == 0
}

// Elements returns a copy of the path's elements.
func (p Path) Elements() []gg.PathElement {
	if p.p == nil {
		return nil
	}
	src := p.p.Elements()
	out := make([]gg.PathElement, len(src))
	copy(out, src)
	return out
}

// Transform returns the path mapped through m.
func (p Path) Transform(m gg.Matrix) Path {
	if p.p == nil {
		return p
	}
	return Path{p: p.p.Transform(m)}
}

// Scale returns the path scaled uniformly about the origin.
func (p Path) Scale(s float64) Path {
	return p.Transform(gg.Scale(s, s))
}

// Translate returns the path moved by (dx, dy).
func (p Path) Translate(dx, dy float64) Path {
	return p.Transform(gg.Translate(dx, dy))
}

// Vertices returns every point stored in the path, control points included,
// in element order.
func (p Path) Vertices() []Point {
	var pts []Point
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			pts = append(pts, e.Point)
		case gg.LineTo:
			pts = append(pts, e.Point)
		case gg.QuadTo:
			pts = append(pts, e.Control, e.Point)
		case gg.CubicTo:
			pts = append(pts, e.Control1, e.Control2, e.Point)
		}
	}
	return pts
}

// Bounds returns the box enclosing all vertices. Curves lie inside the hull
// of their control points, so the box also encloses the painted outline.
func (p Path) Bounds() (min, max Point, ok bool) {
	pts := p.Vertices()
	if len(pts) == 0 {
		return Point{}, Point{}, false
	}
	min = Pt(math.Inf(1), math.Inf(1))
	max = Pt(math.Inf(-1), math.Inf(-1))
	for _, v := range pts {
		min.X = math.Min(min.X, v.X)
		min.Y = math.Min(min.Y, v.Y)
		max.X = math.Max(max.X, v.X)
		max.Y = math.Max(max.Y, v.Y)
	}
	return min, max, true
}
