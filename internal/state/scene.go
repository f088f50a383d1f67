package state

import (
	"log/slog"

	applog "LocalPaint/internal/log"
)

// Scene holds the static shapes and the user's strokes. Static shapes never
// change after construction; strokes only grow by whole-stroke append or are
// dropped all at once by ClearStrokes.
//
// A Scene is owned by a single goroutine and is not safe for concurrent use.
type Scene struct {
	shapes  []Shape
	strokes []*Stroke
	active  *Stroke
	clock   strokeClock
	log     *slog.Logger
}

// NewScene builds the static shapes and returns an empty scene around them.
func NewScene() (*Scene, error) {
	shapes, err := BuildStaticShapes()
	if err != nil {
		return nil, err
	}
	return NewSceneWithShapes(shapes), nil
}

// NewSceneWithShapes returns a scene over the given shapes, in paint order.
func NewSceneWithShapes(shapes []Shape) *Scene {
	s := make([]Shape, len(shapes))
	copy(s, shapes)
	return &Scene{
		shapes: s,
		log:    applog.WithComponent("scene"),
	}
}

// StaticShapes returns the static shapes in paint order.
func (s *Scene) StaticShapes() []Shape {
	out := make([]Shape, len(s.shapes))
	copy(out, s.shapes)
	return out
}

// Strokes returns a snapshot of every stroke, oldest first.
func (s *Scene) Strokes() []Stroke {
	out := make([]Stroke, 0, len(s.strokes))
	for _, st := range s.strokes {
		out = append(out, st.clone())
	}
	return out
}

func (s *Scene) StrokeCount() int {
	return len(s.strokes)
}

// StartStroke appends a new empty stroke and makes it the active one.
// It returns the stroke id.
func (s *Scene) StartStroke(at Point) string {
	st := s.clock.newStroke()
	s.strokes = append(s.strokes, st)
	s.active = st
	s.log.Debug("stroke started", slog.String("id", st.ID), slog.Uint64("seq", st.Seq),
		slog.Float64("x", at.X), slog.Float64("y", at.Y))
	return st.ID
}

// ExtendActiveStroke appends p to the active stroke. It reports false and
// does nothing when no stroke is active.
func (s *Scene) ExtendActiveStroke(p Point) bool {
	if s.active == nil {
		return false
	}
	s.active.Points = append(s.active.Points, p)
	return true
}

// EndActiveStroke marks no stroke active. The stroke's points are kept.
func (s *Scene) EndActiveStroke() {
	if s.active == nil {
		return
	}
	s.log.Debug("stroke ended",
		slog.String("id", s.active.ID),
		slog.Int("points", len(s.active.Points)),
		slog.Duration("took", s.clock.stamp().Sub(s.active.Started)))
	s.active = nil
}

// ActiveStroke returns a snapshot of the stroke being drawn, if any.
func (s *Scene) ActiveStroke() (Stroke, bool) {
	if s.active == nil {
		return Stroke{}, false
	}
	return s.active.clone(), true
}

// ClearStrokes drops every stroke, including an active one. Static shapes
// are untouched.
func (s *Scene) ClearStrokes() {
	if n := len(s.strokes); n > 0 {
		s.log.Info("strokes cleared", slog.Int("count", n))
	}
	s.strokes = nil
	s.active = nil
}
