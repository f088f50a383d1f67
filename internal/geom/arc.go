package geom

import (
	"math"

	"github.com/gogpu/gg"
)

// appendArc converts an SVG endpoint arc to its center parameterization and
// appends it as cubic segments of at most 90 degrees. The final segment ends
// exactly on to.
func appendArc(p *gg.Path, from, radii Point, rotation float64, largeArc, sweep bool, to Point) {
	if from == to {
		return
	}
	rx, ry := math.Abs(radii.X), math.Abs(radii.Y)
	if rx == 0 || ry == 0 {
		p.LineTo(to.X, to.Y)
		return
	}

	phi := rotation * math.Pi / 180
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)

	dx2 := (from.X - to.X) / 2
	dy2 := (from.Y - to.Y) / 2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	// Radii too small to span the chord are scaled up uniformly.
	if lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	coef := 0.0
	if num > 0 && den > 0 {
		coef = math.Sqrt(num / den)
	}
	if largeArc == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx

	cx := cosPhi*cxp - sinPhi*cyp + (from.X+to.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (from.Y+to.Y)/2

	ux, uy := (x1p-cxp)/rx, (y1p-cyp)/ry
	vx, vy := (-x1p-cxp)/rx, (-y1p-cyp)/ry
	theta := vectorAngle(1, 0, ux, uy)
	delta := vectorAngle(ux, uy, vx, vy)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	e := ellipse{cx: cx, cy: cy, rx: rx, ry: ry, cos: cosPhi, sin: sinPhi}
	n := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	step := delta / float64(n)
	alpha := 4.0 / 3.0 * math.Tan(step/4)

	for i := 0; i < n; i++ {
		a1 := theta + float64(i)*step
		a2 := a1 + step
		p1, p2 := e.at(a1), e.at(a2)
		d1, d2 := e.deriv(a1), e.deriv(a2)
		if i == n-1 {
			p2 = to
		}
		p.CubicTo(
			p1.X+alpha*d1.X, p1.Y+alpha*d1.Y,
			p2.X-alpha*d2.X, p2.Y-alpha*d2.Y,
			p2.X, p2.Y,
		)
	}
}

type ellipse struct {
	cx, cy, rx, ry float64
	cos, sin       float64
}

func (e ellipse) at(a float64) Point {
	x, y := e.rx*math.Cos(a), e.ry*math.Sin(a)
	return Pt(e.cx+x*e.cos-y*e.sin, e.cy+x*e.sin+y*e.cos)
}

func (e ellipse) deriv(a float64) Point {
	x, y := -e.rx*math.Sin(a), e.ry*math.Cos(a)
	return Pt(x*e.cos-y*e.sin, x*e.sin+y*e.cos)
}

func vectorAngle(ux, uy, vx, vy float64) float64 {
	return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
}
