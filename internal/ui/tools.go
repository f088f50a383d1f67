package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const Instructions = "Mouse down any point and drag to draw lines (Hold on shift key to draw straight lines)"

// dashLabel names the mode the button switches to.
func dashLabel(dashed bool) string {
	if dashed {
		return "Solid"
	}
	return "Dashed"
}

func strokeStatus(n int) string {
	if n == 1 {
		return "1 stroke"
	}
	return fmt.Sprintf("%d strokes", n)
}

type toolbar struct {
	header *widget.Label
	dash   *widget.Button
	clear  *widget.Button
	status *widget.Label
}

func newToolbar(painting *PaintingWidget) *toolbar {
	t := &toolbar{
		header: widget.NewLabel(Instructions),
		status: widget.NewLabel(strokeStatus(0)),
	}
	t.dash = widget.NewButton(dashLabel(painting.Controller().Dashed()), func() {
		t.dash.SetText(dashLabel(painting.ToggleDash()))
	})
	t.clear = widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), painting.Clear)

	painting.OnChanged = func() {
		t.status.SetText(strokeStatus(painting.Controller().Scene().StrokeCount()))
	}
	return t
}

func (t *toolbar) object() fyne.CanvasObject {
	return container.NewVBox(
		t.header,
		container.NewHBox(
			t.dash,
			t.clear,
			widget.NewSeparator(),
			t.status,
			layout.NewSpacer(),
		),
	)
}

// NewToolbar builds the header text and the dash and clear controls for
// painting.
func NewToolbar(painting *PaintingWidget) fyne.CanvasObject {
	return newToolbar(painting).object()
}
