package decor

import (
	"math"
	"time"

	"github.com/benoitkugler/viewdecor/view"
)

// Easing is the timing function of an animation.
type Easing uint8

const (
	EaseInOut Easing = iota
	EaseOut
	EaseLinear
)

// Curve maps the elapsed fraction of an animation to its progress.
// When Damping is positive, the progress follows a damped spring,
// which may overshoot 1.
type Curve struct {
	Easing Easing
	// Damping is the damping ratio of the spring, in (0, 1].
	Damping float64
	// Velocity is the initial velocity of the spring, relative to
	// the total distance covered in one second.
	Velocity float64
}

// IsSpring returns true for spring based curves.
func (c Curve) IsSpring() bool { return c.Damping > 0 }

func ease(e Easing, t float64) float64 {
	switch e {
	case EaseOut:
		return t * (2 - t)
	case EaseLinear:
		return t
	default:
		if t <= 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	}
}

// settle is the residual amplitude of a spring at the end of the animation.
const settle = 1e-3

// spring returns the position at time t in [0, 1] of a damped oscillator
// released from 0 towards 1.
func spring(damping, velocity, t float64) float64 {
	omega := -math.Log(settle) / damping
	decay := math.Exp(-damping * omega * t)
	if damping >= 1 {
		return 1 - decay*(1+(omega-velocity)*t)
	}
	omegaD := omega * math.Sqrt(1-damping*damping)
	b := (velocity - damping*omega) / omegaD
	return 1 + decay*(-math.Cos(omegaD*t)+b*math.Sin(omegaD*t))
}

// Property is a set of animated layer properties.
type Property uint8

const (
	AnimateOpacity Property = 1 << iota
	AnimateTransform
)

// Keyframe is the state of the animated properties.
type Keyframe struct {
	Opacity   float64
	Transform view.Transform
}

// Animation interpolates some properties of a layer, from a starting
// keyframe to an ending one.
type Animation struct {
	Properties Property
	From, To   Keyframe
	Duration   time.Duration
	Curve      Curve
}

// Progress returns the eased progress at the elapsed fraction t,
// clamped to [0, 1]. Springs may return values above 1.
func (a Animation) Progress(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	if a.Curve.IsSpring() {
		return spring(a.Curve.Damping, a.Curve.Velocity*a.Duration.Seconds(), t)
	}
	return ease(a.Curve.Easing, t)
}

// At returns the keyframe reached at the elapsed fraction t in [0, 1].
// At(0) is From and At(1) is To.
func (a Animation) At(t float64) Keyframe {
	switch {
	case t <= 0:
		return a.From
	case t >= 1:
		return a.To
	}
	p := a.Progress(t)
	opacity := a.From.Opacity + (a.To.Opacity-a.From.Opacity)*p
	return Keyframe{
		Opacity:   math.Max(0, math.Min(1, opacity)),
		Transform: a.From.Transform.Lerp(a.To.Transform, p),
	}
}

// Apply sets the animated properties of `l` to their value at t.
// The other properties are left untouched.
func (a Animation) Apply(l *view.Layer, t float64) {
	k := a.At(t)
	if a.Properties&AnimateOpacity != 0 {
		l.Opacity = k.Opacity
	}
	if a.Properties&AnimateTransform != 0 {
		l.Transform = k.Transform
	}
}

// Scheduler drives animations, usually from the frame clock of a UI host.
type Scheduler interface {
	// Schedule starts animating the layer of `v` with `a`,
	// starting from the current state. It must not block.
	Schedule(v view.View, a Animation)
}

// Detached is the Scheduler used when the host provides none: animations
// are dropped, so the view keeps its pre-transition state until the host
// moves it.
type Detached struct{}

func (Detached) Schedule(view.View, Animation) {}

// Immediate is a Scheduler without clock: animations jump to their final state.
type Immediate struct{}

func (Immediate) Schedule(v view.View, a Animation) { a.Apply(v.Layer(), 1) }

// Scheduled is an animation registered by a Recorder.
type Scheduled struct {
	View      view.View
	Animation Animation
}

// Recorder is a Scheduler storing the animations, for
// hosts which drive them manually (and for tests).
type Recorder struct {
	Scheduled []Scheduled
}

func (r *Recorder) Schedule(v view.View, a Animation) {
	r.Scheduled = append(r.Scheduled, Scheduled{View: v, Animation: a})
}

// Seek applies every recorded animation at the elapsed fraction t.
func (r *Recorder) Seek(t float64) {
	for _, s := range r.Scheduled {
		s.Animation.Apply(s.View.Layer(), t)
	}
}

// Finish applies the final state of every recorded animation,
// and clears the record.
func (r *Recorder) Finish() {
	r.Seek(1)
	r.Scheduled = nil
}
