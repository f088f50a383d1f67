package state

import (
	"time"

	"LocalPaint/internal/geom"
)

type Point = geom.Point

// Shape is a decorative path with its paint. Shapes are built once and never
// change afterwards.
type Shape struct {
	Name  string
	Path  geom.Path
	Style geom.Style
}

// Stroke is one freehand drag: its points in insertion order and when the
// drag began.
type Stroke struct {
	ID      string
	Seq     uint64
	Points  []Point
	Started time.Time
}

// Drawable reports whether the stroke has at least one segment.
func (s Stroke) Drawable() bool {
	return len(s.Points) >= 2
}

func (s Stroke) clone() Stroke {
	pts := make([]Point, len(s.Points))
	copy(pts, s.Points)
	s.Points = pts
	return s
}
