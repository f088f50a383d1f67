package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"LocalPaint/internal/config"
	applog "LocalPaint/internal/log"
	"LocalPaint/internal/render"
	"LocalPaint/internal/state"
)

// NewPainting wires scene to a controller and widget configured by cfg.
func NewPainting(cfg config.Config, scene *state.Scene) *PaintingWidget {
	painter := render.NewPainter(render.Options{
		DesignWidth: cfg.DesignWidth,
		Ink:         cfg.Ink(),
		StrokeWidth: cfg.StrokeWidth,
		Dash:        cfg.DashPattern,
	})
	return NewPaintingWidget(NewController(scene, painter), cfg.Background())
}

// RunApp opens the painting window and blocks until it is closed.
func RunApp(cfg config.Config, scene *state.Scene) {
	myApp := app.New()
	myWindow := myApp.NewWindow(cfg.Title)
	myWindow.Resize(fyne.NewSize(float32(cfg.DesignWidth), float32(cfg.DesignHeight)))

	painting := NewPainting(cfg, scene)
	toolbar := NewToolbar(painting)

	content := container.NewBorder(toolbar, nil, nil, nil, painting)
	myWindow.SetContent(content)
	myWindow.SetOnClosed(painting.Close)

	painting.StartTicker()
	applog.WithComponent("app").Info("window open",
		slog.String("title", cfg.Title),
		slog.Float64("design_width", cfg.DesignWidth),
		slog.Int("shapes", len(scene.StaticShapes())))
	myWindow.ShowAndRun()
}
