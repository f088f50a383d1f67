package state

import (
	"math"

	"LocalPaint/internal/geom"
)

// The logo is a cog authored in its own 190x190 box: square teeth around a
// ring with a round hole and a diamond in the middle. It is filled even-odd,
// so the hole stays open and the diamond is solid again.
const (
	logoTeeth  = 32
	logoCenter = 95.0
	logoTip    = 90.0
	logoRoot   = 78.0
	logoHole   = 52.0
	logoGem    = 22.0
)

func logoCommands() []geom.Command {
	step := 2 * math.Pi / logoTeeth
	ring := make([]geom.Point, 0, logoTeeth*4)
	for i := 0; i < logoTeeth; i++ {
		a := float64(i) * step
		ring = append(ring,
			polar(logoRoot, a),
			polar(logoTip, a+step*0.15),
			polar(logoTip, a+step*0.5),
			polar(logoRoot, a+step*0.65),
		)
	}

	top := geom.Pt(logoCenter, logoCenter-logoHole)
	bottom := geom.Pt(logoCenter, logoCenter+logoHole)
	r := geom.Pt(logoHole, logoHole)

	return []geom.Command{
		geom.Polygon(ring, true),
		geom.MoveTo(top),
		geom.ArcTo(r, 0, false, true, bottom),
		geom.ArcTo(r, 0, false, true, top),
		geom.Close(),
		geom.Polygon([]geom.Point{
			geom.Pt(logoCenter, logoCenter-logoGem),
			geom.Pt(logoCenter+logoGem, logoCenter),
			geom.Pt(logoCenter, logoCenter+logoGem),
			geom.Pt(logoCenter-logoGem, logoCenter),
		}, true),
	}
}

func polar(r, a float64) geom.Point {
	return geom.Pt(logoCenter+r*math.Cos(a), logoCenter+r*math.Sin(a))
}
