// Package decor implements declarative decorations of views:
// rounded corners, borders, shadows, inner glows, directional fades,
// gradient backgrounds, curved masks and entrance transitions.
//
// Every operation is a function of the current bounds and layer of the
// view, and of its explicit parameters. Parameters are validated before
// the layer is touched: a failed call leaves the view unchanged.
// An operation installing a mask or a background layer first removes the
// one of the same kind installed by a previous call, so that repeated
// calls do not pile up layers.
//
// Decorators must be called from the goroutine owning the view. Transitions
// are the only operations with a temporal dimension: the interpolation is
// delegated to a Scheduler, provided by the host.
package decor

import (
	"io"
	"log"

	"github.com/benoitkugler/viewdecor/view"
	"github.com/benoitkugler/viewdecor/viewpath"
)

// Decorator applies visual effects to views.
// The zero value is not usable: see New.
type Decorator struct {
	scheduler Scheduler
	logger    *log.Logger
}

// Option customizes a Decorator.
type Option func(*Decorator)

// WithScheduler sets the animation scheduler used by transitions.
// By default, animations are not played: the view stays in its
// pre-transition state (see Detached).
func WithScheduler(s Scheduler) Option {
	return func(d *Decorator) { d.scheduler = s }
}

// WithLogger sets the logger used to report suspicious but valid
// calls, such as masks built on zero sized views.
// By default, nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(d *Decorator) { d.logger = l }
}

// New returns a decorator, customized by `opts`.
func New(opts ...Option) *Decorator {
	d := &Decorator{
		scheduler: Detached{},
		logger:    log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.scheduler == nil {
		d.scheduler = Detached{}
	}
	if d.logger == nil {
		d.logger = log.New(io.Discard, "", 0)
	}
	return d
}

// installMask replaces the mask of the view by a shape layer covering `path`.
func (d *Decorator) installMask(v view.View, op string, path viewpath.Path) {
	bounds := v.Bounds()
	if bounds.IsEmpty() {
		d.logger.Printf("decor: %s: view has zero sized bounds %v, installing a degenerate mask", op, bounds)
	}
	v.Layer().Mask = &view.ShapeLayer{Frame: bounds, Path: path, Role: view.RoleMask}
}

// ApplyPathMask installs `path` (in the coordinates of the view bounds)
// as the mask of the view, replacing the previous mask.
func (d *Decorator) ApplyPathMask(v view.View, path viewpath.Path) {
	d.installMask(v, "ApplyPathMask", path.Copy())
}

// RemoveMask removes the mask of the view, whichever decorator installed it.
func (d *Decorator) RemoveMask(v view.View) {
	v.Layer().Mask = nil
}
