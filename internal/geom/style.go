package geom

import (
	"math"

	"github.com/gogpu/gg"
)

// Paint kinds.
type Kind uint8

const (
	KindFill Kind = iota
	KindGradient
	KindStroke
)

// ColorSpace selects where gradient stops are blended.
type ColorSpace uint8

const (
	// ColorSpaceDefault blends in linear sRGB.
	ColorSpaceDefault ColorSpace = iota
	// ColorSpaceOKLab blends in the perceptually uniform OKLab space.
	ColorSpaceOKLab
)

type ColorStop struct {
	Color  gg.RGBA
	Offset float64
}

// Gradient is a linear gradient. Angle follows CSS: 0 points up, 90 right,
// 180 down.
type Gradient struct {
	Angle float64
	Stops []ColorStop
	Space ColorSpace
}

// Line returns the gradient line for a box, CSS style: it passes through the
// box center along Angle and is long enough for the corners to sit on the
// 0 and 1 offsets.
func (g Gradient) Line(min, max Point) (start, end Point) {
	rad := g.Angle * math.Pi / 180
	dir := Pt(math.Sin(rad), -math.Cos(rad))
	w, h := max.X-min.X, max.Y-min.Y
	half := (math.Abs(w*dir.X) + math.Abs(h*dir.Y)) / 2
	c := Pt((min.X+max.X)/2, (min.Y+max.Y)/2)
	return c.Sub(dir.Mul(half)), c.Add(dir.Mul(half))
}

type StrokeStyle struct {
	Width float64
	Join  gg.LineJoin
	// Dash holds alternating on/off lengths; nil is solid.
	Dash []float64
}

// Style is how a path is painted: a solid fill, a gradient fill or a stroke.
type Style struct {
	Kind     Kind
	Color    gg.RGBA
	Rule     gg.FillRule
	Gradient Gradient
	Stroke   StrokeStyle
}

func Solid(c gg.RGBA) Style {
	return Style{Kind: KindFill, Color: c}
}

func LinearGradient(angle float64, space ColorSpace, stops ...ColorStop) Style {
	s := make([]ColorStop, len(stops))
	copy(s, stops)
	return Style{Kind: KindGradient, Gradient: Gradient{Angle: angle, Stops: s, Space: space}}
}

func Stroked(c gg.RGBA, width float64, join gg.LineJoin, dash ...float64) Style {
	var d []float64
	if len(dash) > 0 {
		d = make([]float64, len(dash))
		copy(d, dash)
	}
	return Style{Kind: KindStroke, Color: c, Stroke: StrokeStyle{Width: width, Join: join, Dash: d}}
}

// WithRule returns the style using rule for fills.
func (s Style) WithRule(rule gg.FillRule) Style {
	s.Rule = rule
	return s
}

// Scale returns the style with stroke width and dash lengths multiplied by f,
// so a stroke keeps its proportions when its path is scaled.
func (s Style) Scale(f float64) Style {
	if s.Kind != KindStroke {
		return s
	}
	s.Stroke.Width *= f
	if s.Stroke.Dash != nil {
		d := make([]float64, len(s.Stroke.Dash))
		for i, l := range s.Stroke.Dash {
			d[i] = l * f
		}
		s.Stroke.Dash = d
	}
	return s
}
