package geom

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
)

var (
	// ErrEmptyPath is returned for a command list with no commands.
	ErrEmptyPath = errors.New("geom: empty path")
	// ErrNoCurrentPoint is returned when a segment or close precedes any move.
	ErrNoCurrentPoint = errors.New("geom: no current point")
	// ErrInsufficientGeometry is returned when the commands visit fewer than
	// two distinct points, so nothing could be painted.
	ErrInsufficientGeometry = errors.New("geom: insufficient geometry")
)

// Build finalizes cmds into an immutable Path.
func Build(cmds []Command) (Path, error) {
	if len(cmds) == 0 {
		return Path{}, ErrEmptyPath
	}

	b := builder{path: gg.NewPath()}
	for i, c := range cmds {
		if err := b.apply(c); err != nil {
			return Path{}, fmt.Errorf("command %d (%s): %w", i, c.Verb, err)
		}
	}
	if b.distinct < 2 {
		return Path{}, ErrInsufficientGeometry
	}
	return Path{p: b.path}, nil
}

// MustBuild is Build for authored geometry that is known to be valid.
func MustBuild(cmds []Command) Path {
	p, err := Build(cmds)
	if err != nil {
		panic(err)
	}
	return p
}

type builder struct {
	path       *gg.Path
	current    Point
	start      Point
	hasCurrent bool

	first    Point
	distinct int
}

// visit records pt for the distinct-vertex count; two is all Build needs.
func (b *builder) visit(pt Point) {
	switch {
	case b.distinct == 0:
		b.first = pt
		b.distinct = 1
	case b.distinct == 1 && pt != b.first:
		b.distinct = 2
	}
}

func (b *builder) apply(c Command) error {
	switch c.Verb {
	case VerbMove:
		b.path.MoveTo(c.To.X, c.To.Y)
		b.current, b.start, b.hasCurrent = c.To, c.To, true
		b.visit(c.To)
		return nil
	case VerbPolygon:
		if len(c.Points) == 0 {
			return nil
		}
		b.path.MoveTo(c.Points[0].X, c.Points[0].Y)
		b.start, b.hasCurrent = c.Points[0], true
		b.visit(c.Points[0])
		for _, p := range c.Points[1:] {
			b.path.LineTo(p.X, p.Y)
			b.visit(p)
		}
		b.current = c.Points[len(c.Points)-1]
		if c.Closed {
			b.path.Close()
			b.current = b.start
		}
		return nil
	}

	if !b.hasCurrent {
		return ErrNoCurrentPoint
	}

	switch c.Verb {
	case VerbLine:
		b.path.LineTo(c.To.X, c.To.Y)
		b.visit(c.To)
		b.current = c.To
	case VerbCubic:
		b.path.CubicTo(c.Ctrl1.X, c.Ctrl1.Y, c.Ctrl2.X, c.Ctrl2.Y, c.To.X, c.To.Y)
		b.visit(c.Ctrl1)
		b.visit(c.Ctrl2)
		b.visit(c.To)
		b.current = c.To
	case VerbArc:
		appendArc(b.path, b.current, c.Radii, c.Rotation, c.LargeArc, c.Sweep, c.To)
		b.visit(c.To)
		b.current = c.To
	case VerbClose:
		b.path.Close()
		b.current = b.start
	default:
		return fmt.Errorf("unknown verb %d", c.Verb)
	}
	return nil
}
