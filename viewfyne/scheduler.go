package viewfyne

import (
	"fyne.io/fyne/v2"

	"github.com/benoitkugler/viewdecor/decor"
	"github.com/benoitkugler/viewdecor/view"
)

var _ decor.Scheduler = Scheduler{}

// Scheduler plays animations with fyne.Animation.
// Views implementing fyne.Widget are refreshed at each tick.
type Scheduler struct{}

// Schedule starts the animation and returns immediately.
// The easing is computed by the decor animation, so the
// fyne curve is linear.
func (Scheduler) Schedule(v view.View, a decor.Animation) {
	anim := fyne.NewAnimation(a.Duration, tick(v, a))
	anim.Curve = fyne.AnimationLinear
	anim.Start()
}

func tick(v view.View, a decor.Animation) func(float32) {
	return func(f float32) {
		a.Apply(v.Layer(), float64(f))
		if w, ok := v.(fyne.Widget); ok {
			w.Refresh()
		}
	}
}
