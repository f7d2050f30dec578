// Package viewfyne hosts decorated views in fyne applications.
//
// View is a widget implementing view.View: its layer is painted
// with viewraster each time the widget is refreshed.
// Scheduler plays decor transitions on the fyne animation loop.
package viewfyne

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/benoitkugler/viewdecor/view"
	"github.com/benoitkugler/viewdecor/viewpath"
	"github.com/benoitkugler/viewdecor/viewraster"
)

var _ view.View = (*View)(nil) // assert interface conformance

// View is a widget drawing a decorated layer.
// Shadows and transforms are clipped to the widget area:
// use SetMargin to leave room for them.
type View struct {
	widget.BaseWidget

	layer   view.Layer
	minSize fyne.Size
	margin  float32
}

// NewView returns an empty view, with the given minimum size.
func NewView(minSize fyne.Size) *View {
	v := &View{layer: view.NewLayer(), minSize: minSize}
	v.ExtendBaseWidget(v)
	return v
}

// SetMargin reserves `m` units on each side of the widget,
// outside of the view bounds. See viewraster.FitMargin.
func (v *View) SetMargin(m float32) {
	if m < 0 {
		m = 0
	}
	v.margin = m
	v.Refresh()
}

// Bounds returns the current size of the widget, without the margins,
// at the origin.
func (v *View) Bounds() viewpath.Rect {
	s := v.Size()
	w, h := s.Width-2*v.margin, s.Height-2*v.margin
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return viewpath.Rect{W: float64(w), H: float64(h)}
}

// Layer returns the layer painted by the widget.
// Call Refresh after modifying it outside of a Scheduler.
func (v *View) Layer() *view.Layer { return &v.layer }

func (v *View) MinSize() fyne.Size {
	v.ExtendBaseWidget(v)
	return v.BaseWidget.MinSize().Max(v.minSize.AddWidthHeight(2*v.margin, 2*v.margin))
}

// paint renders the layer at the resolution of the raster
func (v *View) paint(w, h int) image.Image {
	size := v.Size()
	scale := 1.
	if size.Width > 0 {
		scale = float64(w) / float64(size.Width)
	}
	return viewraster.Render(v, viewraster.Options{Scale: scale, Margin: float64(v.margin)})
}

func (v *View) CreateRenderer() fyne.WidgetRenderer {
	v.ExtendBaseWidget(v)
	raster := canvas.NewRaster(v.paint)
	raster.ScaleMode = canvas.ImageScaleSmooth
	return widget.NewSimpleRenderer(raster)
}
