package render

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"
)

// toOKLab converts an sRGB color to OKLab (Ottosson 2020). Linearisation is
// done by go-colorful; the LMS matrices are the published ones.
func toOKLab(c gg.RGBA) (l, a, b float64) {
	r, g, bl := colorful.Color{R: c.R, G: c.G, B: c.B}.LinearRgb()

	lm := math.Cbrt(0.4122214708*r + 0.5363325363*g + 0.0514459929*bl)
	mm := math.Cbrt(0.2119034982*r + 0.6806995451*g + 0.1073969566*bl)
	sm := math.Cbrt(0.0883024619*r + 0.2817188376*g + 0.6299787005*bl)

	l = 0.2104542553*lm + 0.7936177850*mm - 0.0040720468*sm
	a = 1.9779984951*lm - 2.4285922050*mm + 0.4505937099*sm
	b = 0.0259040371*lm + 0.7827717662*mm - 0.8086757660*sm
	return l, a, b
}

func fromOKLab(l, a, b float64) colorful.Color {
	lm := l + 0.3963377774*a + 0.2158037573*b
	mm := l - 0.1055613458*a - 0.0638541728*b
	sm := l - 0.0894841775*a - 1.2914855480*b
	lm, mm, sm = lm*lm*lm, mm*mm*mm, sm*sm*sm

	return colorful.LinearRgb(
		+4.0767416621*lm-3.3077115913*mm+0.2309699292*sm,
		-1.2684380046*lm+2.6097574011*mm-0.3413193965*sm,
		-0.0041960863*lm-0.7034186147*mm+1.7076147010*sm,
	)
}
