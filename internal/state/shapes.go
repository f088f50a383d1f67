package state

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"LocalPaint/internal/geom"
)

// Shape names, in paint order.
const (
	ShapeLogo  = "logo"
	ShapeBolt  = "bolt"
	ShapeStar  = "star"
	ShapeBlob  = "blob"
	ShapeWave  = "wave"
	WedgeCount = 5
)

// PieCenter is the point every wedge closes back to.
var PieCenter = geom.Pt(775, 155)

type shapeDef struct {
	name      string
	cmds      []geom.Command
	style     geom.Style
	transform func(geom.Path) geom.Path
}

// BuildStaticShapes builds the decorative shapes. The result is the same on
// every call.
func BuildStaticShapes() ([]Shape, error) {
	defs := staticDefs()
	shapes := make([]Shape, 0, len(defs))
	for _, def := range defs {
		p, err := geom.Build(def.cmds)
		if err != nil {
			return nil, fmt.Errorf("shape %s: %w", def.name, err)
		}
		if def.transform != nil {
			p = def.transform(p)
		}
		shapes = append(shapes, Shape{Name: def.name, Path: p, Style: def.style})
	}
	return shapes, nil
}

func staticDefs() []shapeDef {
	defs := []shapeDef{
		{
			name:  ShapeLogo,
			cmds:  logoCommands(),
			style: geom.Solid(gg.Black).WithRule(gg.FillRuleEvenOdd),
			transform: func(p geom.Path) geom.Path {
				return p.Translate(10, 100).Scale(0.9)
			},
		},
		{
			name: ShapeBolt,
			cmds: []geom.Command{geom.Polygon([]geom.Point{
				geom.Pt(150, 200),
				geom.Pt(200, 125),
				geom.Pt(200, 175),
				geom.Pt(250, 100),
			}, true)},
			style: geom.Solid(gg.Hex("1d4ed8")),
		},
		{
			name: ShapeStar,
			cmds: geom.Polyline([]geom.Point{
				geom.Pt(350, 100),
				geom.Pt(370, 160),
				geom.Pt(430, 160),
				geom.Pt(380, 200),
				geom.Pt(400, 260),
				geom.Pt(350, 220),
				geom.Pt(300, 260),
				geom.Pt(320, 200),
				geom.Pt(270, 160),
				geom.Pt(330, 160),
				geom.Pt(350, 100),
			}),
			style: geom.LinearGradient(180, geom.ColorSpaceOKLab,
				geom.ColorStop{Color: gg.Hex("FACC15"), Offset: 0.7},
				geom.ColorStop{Color: gg.Hex("D56D0C"), Offset: 1},
			),
		},
		{
			name: ShapeBlob,
			cmds: blobCommands(geom.Pt(450, 100), geom.Pt(200, 80), 30),
			style: geom.LinearGradient(180, geom.ColorSpaceDefault,
				geom.ColorStop{Color: gg.RGB(0, 0, 1), Offset: 0.4},
				geom.ColorStop{Color: gg.RGB(1, 0, 0), Offset: 1},
			),
		},
	}
	defs = append(defs, wedgeDefs()...)
	defs = append(defs, shapeDef{
		name:  ShapeWave,
		cmds:  waveCommands(),
		style: geom.Stroked(gg.Black, 1, gg.LineJoinBevel),
	})
	return defs
}

// blobCommands traces a box whose two upper corners are swept in by
// quarter-round sides. origin and size describe the box; lift is how far the
// straight top sits below the box's top edge.
func blobCommands(origin, size geom.Point, lift float64) []geom.Command {
	bottomLeft := geom.Pt(origin.X, origin.Y+size.Y)
	bottomRight := geom.Pt(origin.X+size.X, origin.Y+size.Y)
	topRight := geom.Pt(origin.X+size.X, origin.Y)
	inset := size.Y

	return []geom.Command{
		geom.MoveTo(bottomLeft),
		roundSide(bottomLeft, origin.Add(geom.Pt(0, lift)), origin.Add(geom.Pt(inset, lift))),
		geom.LineTo(topRight.Add(geom.Pt(-inset, lift))),
		roundSide(topRight.Add(geom.Pt(-inset, lift)), topRight.Add(geom.Pt(0, lift)), bottomRight),
		geom.LineTo(bottomLeft),
	}
}

// roundSide is the cubic equivalent of the quadratic curve from -> ctrl -> to.
func roundSide(from, ctrl, to geom.Point) geom.Command {
	c1 := from.Add(ctrl.Sub(from).Mul(2.0 / 3.0))
	c2 := to.Add(ctrl.Sub(to).Mul(2.0 / 3.0))
	return geom.CubicTo(c1, c2, to)
}

type wedge struct {
	start, end geom.Point
	color      string
}

var wedges = [WedgeCount]wedge{
	{geom.Pt(871, 155), geom.Pt(747, 63), "1374e9"},
	{geom.Pt(747, 63), geom.Pt(679, 163), "e13527"},
	{geom.Pt(679, 163), geom.Pt(754, 249), "0751ce"},
	{geom.Pt(754, 249), geom.Pt(854, 210), "209742"},
	{geom.Pt(854, 210), geom.Pt(871, 155), "fbc10a"},
}

// WedgeName returns the shape name of the i-th pie wedge, counting from 1.
func WedgeName(i int) string {
	return fmt.Sprintf("wedge-%d", i)
}

func wedgeDefs() []shapeDef {
	const radius = 96
	defs := make([]shapeDef, 0, len(wedges))
	for i, w := range wedges {
		defs = append(defs, shapeDef{
			name: WedgeName(i + 1),
			cmds: []geom.Command{
				geom.MoveTo(w.start),
				geom.ArcTo(geom.Pt(radius, radius), 0, false, false, w.end),
				geom.LineTo(PieCenter),
				geom.Close(),
			},
			style: geom.Solid(gg.Hex(w.color)),
		})
	}
	return defs
}

// waveCommands samples 320 + 40*sin(x) every 10 units, 49 segments in all.
func waveCommands() []geom.Command {
	pts := make([]geom.Point, 0, 50)
	pts = append(pts, geom.Pt(40, 320))
	for i := 1; i < 50; i++ {
		x := float64(i) * 10
		pts = append(pts, geom.Pt(40+x, 320+math.Sin(x)*40))
	}
	return geom.Polyline(pts)
}
