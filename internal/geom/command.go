// Package geom builds finalized vector paths from ordered command lists.
//
// A path is described as a plain []Command and turned into an immutable Path
// by Build. Build is pure: the same commands always produce the same path,
// and degenerate input is reported as an error instead of a half-built path.
package geom

import "github.com/gogpu/gg"

// Point is a 2D coordinate in logical units.
type Point = gg.Point

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return gg.Pt(x, y) }

// Verb identifies the kind of a Command.
type Verb uint8

const (
	VerbMove Verb = iota
	VerbLine
	VerbCubic
	VerbArc
	VerbClose
	VerbPolygon
)

func (v Verb) String() string {
	switch v {
	case VerbMove:
		return "move"
	case VerbLine:
		return "line"
	case VerbCubic:
		return "cubic"
	case VerbArc:
		return "arc"
	case VerbClose:
		return "close"
	case VerbPolygon:
		return "polygon"
	default:
		return "unknown"
	}
}

// Command is one entry of a path description. Which fields are meaningful
// depends on Verb; use the constructors below rather than filling it by hand.
type Command struct {
	Verb Verb

	// To is the end point for move, line, cubic and arc.
	To Point
	// Ctrl1 and Ctrl2 are the cubic control points.
	Ctrl1, Ctrl2 Point

	// Arc parameters, SVG endpoint form. Rotation is in degrees.
	Radii    Point
	Rotation float64
	LargeArc bool
	Sweep    bool

	// Polygon vertices; Closed appends a close after the last vertex.
	Points []Point
	Closed bool
}

func MoveTo(p Point) Command { return Command{Verb: VerbMove, To: p} }

func LineTo(p Point) Command { return Command{Verb: VerbLine, To: p} }

func CubicTo(c1, c2, to Point) Command {
	return Command{Verb: VerbCubic, Ctrl1: c1, Ctrl2: c2, To: to}
}

// ArcTo draws an elliptical arc from the current point to to, following the
// SVG "A" command: radii, x-axis rotation in degrees, large-arc and sweep flags.
func ArcTo(radii Point, rotation float64, largeArc, sweep bool, to Point) Command {
	return Command{Verb: VerbArc, Radii: radii, Rotation: rotation, LargeArc: largeArc, Sweep: sweep, To: to}
}

func Close() Command { return Command{Verb: VerbClose} }

// Polygon starts a new subpath through points. The slice is copied.
func Polygon(points []Point, closed bool) Command {
	pts := make([]Point, len(points))
	copy(pts, points)
	return Command{Verb: VerbPolygon, Points: pts, Closed: closed}
}

// Polyline returns a move to the first point followed by a line to each
// remaining point, in order.
func Polyline(points []Point) []Command {
	if len(points) == 0 {
		return nil
	}
	cmds := make([]Command, 0, len(points))
	cmds = append(cmds, MoveTo(points[0]))
	for _, p := range points[1:] {
		cmds = append(cmds, LineTo(p))
	}
	return cmds
}
