package render

import (
	"sort"

	"github.com/gogpu/gg"

	"LocalPaint/internal/geom"
)

// gradientBrush resolves g against the bounds of the path being painted.
func gradientBrush(g geom.Gradient, p geom.Path) gg.Brush {
	min, max, ok := p.Bounds()
	if !ok || len(g.Stops) == 0 {
		return gg.Solid(gg.Transparent)
	}
	start, end := g.Line(min, max)

	if g.Space == geom.ColorSpaceOKLab {
		return oklabBrush(start, end, g.Stops)
	}
	lg := gg.NewLinearGradientBrush(start.X, start.Y, end.X, end.Y)
	for _, s := range g.Stops {
		lg.AddColorStop(s.Offset, s.Color)
	}
	return lg
}

// oklabBrush projects each sample onto start->end and blends the
// neighbouring stops in OKLab.
func oklabBrush(start, end geom.Point, stops []geom.ColorStop) gg.Brush {
	sorted := make([]geom.ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })

	d := end.Sub(start)
	lengthSq := d.Dot(d)

	return gg.NewCustomBrush(func(x, y float64) gg.RGBA {
		if lengthSq == 0 {
			return sorted[0].Color
		}
		t := gg.Pt(x, y).Sub(start).Dot(d) / lengthSq
		return oklabAt(sorted, t)
	}).WithName("oklab-linear")
}

// oklabAt returns the color at offset t; stops must be sorted. Offsets
// outside the first and last stop take the edge color.
func oklabAt(stops []geom.ColorStop, t float64) gg.RGBA {
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	i := sort.Search(len(stops), func(i int) bool { return stops[i].Offset >= t })
	a, b := stops[i-1], stops[i]
	if b.Offset == a.Offset {
		return a.Color
	}
	local := (t - a.Offset) / (b.Offset - a.Offset)

	la, aa, ba := toOKLab(a.Color)
	lb, ab, bb := toOKLab(b.Color)
	mixed := fromOKLab(
		la+(lb-la)*local,
		aa+(ab-aa)*local,
		ba+(bb-ba)*local,
	).Clamped()
	return gg.RGBA{
		R: mixed.R,
		G: mixed.G,
		B: mixed.B,
		A: a.Color.A + (b.Color.A-a.Color.A)*local,
	}
}
