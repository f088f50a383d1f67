package render

import (
	"errors"
	"image/color"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalPaint/internal/geom"
	"LocalPaint/internal/state"
)

type drawCall struct {
	path  geom.Path
	style geom.Style
}

// recorder is a Surface that keeps every call. Calls whose style matches
// failKind return an error.
type recorder struct {
	calls    []drawCall
	failKind *geom.Kind
}

func (r *recorder) Draw(p geom.Path, s geom.Style) error {
	if r.failKind != nil && *r.failKind == s.Kind {
		return errors.New("refused")
	}
	r.calls = append(r.calls, drawCall{path: p, style: s})
	return nil
}

func testOptions() Options {
	return Options{DesignWidth: 1024, Ink: gg.Black, StrokeWidth: 1, Dash: []float64{4, 2}}
}

func newScene(t *testing.T) *state.Scene {
	t.Helper()
	s, err := state.NewScene()
	require.NoError(t, err)
	return s
}

func drawStroke(s *state.Scene, pts ...geom.Point) {
	s.StartStroke(pts[0])
	for _, p := range pts {
		s.ExtendActiveStroke(p)
	}
	s.EndActiveStroke()
}

func TestScale(t *testing.T) {
	assert.Equal(t, 1.0, Scale(1024, 1024))
	assert.Equal(t, 2.0, Scale(2048, 1024))
	assert.Equal(t, 0.5, Scale(512, 1024))
	assert.Equal(t, 1.0, Scale(0, 1024))
	assert.Equal(t, 1.0, Scale(800, 0))
}

func TestPaint_StaticsThenStrokes(t *testing.T) {
	scene := newScene(t)
	drawStroke(scene, geom.Pt(10, 10), geom.Pt(20, 20))

	rec := &recorder{}
	stats := NewPainter(testOptions()).Paint(rec, scene, Frame{WindowWidth: 1024})

	shapes := scene.StaticShapes()
	require.Len(t, rec.calls, len(shapes)+1)
	for i, sh := range shapes {
		assert.Equal(t, sh.Path.Elements(), rec.calls[i].path.Elements(), sh.Name)
		assert.Equal(t, sh.Style, rec.calls[i].style, sh.Name)
	}
	last := rec.calls[len(rec.calls)-1]
	assert.Equal(t, geom.KindStroke, last.style.Kind)
	assert.Equal(t, Stats{Shapes: len(shapes), Strokes: 1}, stats)
}

func TestPaint_ShortStrokesSkipped(t *testing.T) {
	scene := state.NewSceneWithShapes(nil)
	scene.StartStroke(geom.Pt(1, 1)) // no points
	scene.EndActiveStroke()
	drawStroke(scene, geom.Pt(5, 5)) // one point

	rec := &recorder{}
	var stats Stats
	assert.NotPanics(t, func() {
		stats = NewPainter(testOptions()).Paint(rec, scene, Frame{WindowWidth: 1024})
	})
	assert.Empty(t, rec.calls)
	assert.Equal(t, Stats{}, stats)
	assert.Equal(t, 2, scene.StrokeCount(), "short strokes stay in the model")
}

func TestPaint_CollapsedStrokeSkipped(t *testing.T) {
	scene := state.NewSceneWithShapes(nil)
	drawStroke(scene, geom.Pt(5, 5), geom.Pt(5, 5), geom.Pt(5, 5))
	drawStroke(scene, geom.Pt(0, 0), geom.Pt(3, 4))

	rec := &recorder{}
	stats := NewPainter(testOptions()).Paint(rec, scene, Frame{WindowWidth: 1024})
	assert.Len(t, rec.calls, 1)
	assert.Equal(t, Stats{Strokes: 1, Skipped: 1}, stats)
}

func TestPaint_SurfaceFailureIsLocal(t *testing.T) {
	scene := newScene(t)
	drawStroke(scene, geom.Pt(0, 0), geom.Pt(10, 0))

	fail := geom.KindStroke
	rec := &recorder{failKind: &fail}
	stats := NewPainter(testOptions()).Paint(rec, scene, Frame{WindowWidth: 1024})

	// The wave and the freehand stroke are refused; every fill still lands.
	assert.Equal(t, 2, stats.Skipped)
	assert.Equal(t, len(scene.StaticShapes())-1, stats.Shapes)
	assert.Zero(t, stats.Strokes)
}

func TestPaint_ScaleInvariance(t *testing.T) {
	scene := newScene(t)
	shapes := scene.StaticShapes()

	at1 := &recorder{}
	NewPainter(testOptions()).Paint(at1, scene, Frame{WindowWidth: 1024})
	at2 := &recorder{}
	NewPainter(testOptions()).Paint(at2, scene, Frame{WindowWidth: 2048})

	require.Len(t, at1.calls, len(shapes))
	require.Len(t, at2.calls, len(shapes))
	for i, sh := range shapes {
		authored := sh.Path.Vertices()
		assert.Equal(t, authored, at1.calls[i].path.Vertices(), sh.Name)

		doubled := at2.calls[i].path.Vertices()
		require.Len(t, doubled, len(authored))
		for j := range authored {
			assert.InDelta(t, authored[j].X*2, doubled[j].X, 1e-9)
			assert.InDelta(t, authored[j].Y*2, doubled[j].Y, 1e-9)
		}
	}
	wave := at2.calls[len(shapes)-1]
	assert.Equal(t, 2.0, wave.style.Stroke.Width)
}

func TestPaint_StrokesIgnoreWindowScale(t *testing.T) {
	scene := state.NewSceneWithShapes(nil)
	drawStroke(scene, geom.Pt(100, 100), geom.Pt(140, 100))

	rec := &recorder{}
	NewPainter(testOptions()).Paint(rec, scene, Frame{WindowWidth: 2048})
	require.Len(t, rec.calls, 1)
	assert.Equal(t, []geom.Point{geom.Pt(100, 100), geom.Pt(140, 100)}, rec.calls[0].path.Vertices())
}

func TestPaint_DashToggle(t *testing.T) {
	scene := newScene(t)
	drawStroke(scene, geom.Pt(0, 0), geom.Pt(10, 10), geom.Pt(20, 0))
	before := scene.Strokes()
	p := NewPainter(testOptions())

	solid := &recorder{}
	p.Paint(solid, scene, Frame{WindowWidth: 1024})
	dashed := &recorder{}
	p.Paint(dashed, scene, Frame{WindowWidth: 1024, Dashed: true})

	require.Len(t, dashed.calls, len(solid.calls))
	n := len(solid.calls)
	for i := 0; i < n-1; i++ {
		assert.Equal(t, solid.calls[i], dashed.calls[i], "static shapes are unaffected")
	}
	assert.Nil(t, solid.calls[n-1].style.Stroke.Dash)
	assert.Equal(t, []float64{4, 2}, dashed.calls[n-1].style.Stroke.Dash)
	assert.Equal(t, solid.calls[n-1].path.Elements(), dashed.calls[n-1].path.Elements())
	assert.Equal(t, before, scene.Strokes(), "point data is never mutated")
}

func TestGradientBrush_Default(t *testing.T) {
	p := geom.MustBuild(geom.Polyline([]geom.Point{geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(100, 50)}))
	g := geom.Gradient{Angle: 180, Stops: []geom.ColorStop{
		{Color: gg.RGB(0, 0, 1), Offset: 0.4},
		{Color: gg.RGB(1, 0, 0), Offset: 1},
	}}

	brush, ok := gradientBrush(g, p).(*gg.LinearGradientBrush)
	require.True(t, ok)
	assert.Equal(t, gg.Pt(50, 0), brush.Start)
	assert.Equal(t, gg.Pt(50, 50), brush.End)
	assert.Len(t, brush.Stops, 2)
}

func TestOKLab(t *testing.T) {
	stops := []geom.ColorStop{
		{Color: gg.Hex("FACC15"), Offset: 0.7},
		{Color: gg.Hex("D56D0C"), Offset: 1},
	}
	assert.Equal(t, stops[0].Color, oklabAt(stops, 0))
	assert.Equal(t, stops[0].Color, oklabAt(stops, 0.7))
	assert.Equal(t, stops[1].Color, oklabAt(stops, 1.2))

	l, a, b := toOKLab(stops[0].Color)
	back := fromOKLab(l, a, b)
	assert.InDelta(t, stops[0].Color.R, back.R, 1e-4)
	assert.InDelta(t, stops[0].Color.G, back.G, 1e-4)
	assert.InDelta(t, stops[0].Color.B, back.B, 1e-4)

	white, _, _ := toOKLab(gg.White)
	assert.InDelta(t, 1, white, 1e-4)

	mid := oklabAt(stops, 0.85)
	assert.Less(t, mid.G, stops[0].Color.G)
	assert.Greater(t, mid.G, stops[1].Color.G)
	assert.Equal(t, 1.0, mid.A)
}

func near(t *testing.T, want, got color.Color) {
	t.Helper()
	wr, wg, wb, _ := want.RGBA()
	gr, gg_, gb, _ := got.RGBA()
	assert.InDelta(t, float64(wr>>8), float64(gr>>8), 3, "red")
	assert.InDelta(t, float64(wg>>8), float64(gg_>>8), 3, "green")
	assert.InDelta(t, float64(wb>>8), float64(gb>>8), 3, "blue")
}

func TestCanvas_PaintsScene(t *testing.T) {
	scene := newScene(t)
	c := NewCanvas(1024, 768, 1, gg.White)
	defer c.Close()
	require.NoError(t, c.Begin(1024, 768, 1))

	stats := NewPainter(testOptions()).Paint(c, scene, Frame{WindowWidth: 1024})
	assert.Zero(t, stats.Skipped)

	img := c.Image()
	near(t, color.NRGBA{R: 0x13, G: 0x74, B: 0xe9, A: 0xff}, img.At(807, 117))
	near(t, color.White, img.At(1000, 700))
}

func TestCanvas_RejectsEmptyPath(t *testing.T) {
	c := NewCanvas(16, 16, 1, gg.White)
	defer c.Close()
	assert.Error(t, c.Draw(geom.Path{}, geom.Solid(gg.Black)))
}
