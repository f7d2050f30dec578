package decor

import (
	"math"
	"time"

	"github.com/benoitkugler/viewdecor/view"
	"github.com/benoitkugler/viewdecor/viewpath"
)

// TransitionKind selects an entrance animation.
type TransitionKind uint8

const (
	TransitionFade TransitionKind = iota
	TransitionSlideFromLeft
	TransitionSlideFromRight
	TransitionSlideUp
	TransitionSlideDown
	TransitionScale
	TransitionFlip
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionFade:
		return "fade"
	case TransitionSlideFromLeft:
		return "slideFromLeft"
	case TransitionSlideFromRight:
		return "slideFromRight"
	case TransitionSlideUp:
		return "slideUp"
	case TransitionSlideDown:
		return "slideDown"
	case TransitionScale:
		return "scale"
	case TransitionFlip:
		return "flip"
	default:
		return "<unknown TransitionKind>"
	}
}

// ParseTransitionKind is the inverse of TransitionKind.String.
func ParseTransitionKind(s string) (TransitionKind, bool) {
	for k := TransitionFade; k <= TransitionFlip; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// DefaultTransitionDuration is used when TransitionSpec.Duration is zero.
const DefaultTransitionDuration = 600 * time.Millisecond

const (
	scaleFactor = 0.1
	// perspective used by flips: -1/eye distance
	flipPerspective = -1. / 500
)

// TransitionSpec configures ApplyTransition.
type TransitionSpec struct {
	Kind TransitionKind
	// Duration is the length of the animation, DefaultTransitionDuration if zero.
	Duration time.Duration
}

// Animation returns the animation bringing a view with the given bounds
// from its pre-transition state to its resting state.
func (s TransitionSpec) Animation(bounds viewpath.Rect) (Animation, error) {
	if s.Kind > TransitionFlip {
		return Animation{}, &OutOfRangeParameterError{Op: "ApplyTransition", Param: "kind", Value: float64(s.Kind), Min: 0, Max: float64(TransitionFlip)}
	}
	if s.Duration < 0 {
		return Animation{}, &OutOfRangeParameterError{Op: "ApplyTransition", Param: "duration", Value: s.Duration.Seconds(), Min: 0, Max: math.Inf(1)}
	}
	out := Animation{
		Duration: s.Duration,
		From:     Keyframe{Opacity: 1, Transform: view.Identity},
		To:       Keyframe{Opacity: 1, Transform: view.Identity},
		Curve:    Curve{Easing: EaseInOut},
	}
	if out.Duration == 0 {
		out.Duration = DefaultTransitionDuration
	}

	slide := func(tx, ty float64) {
		out.Properties = AnimateOpacity | AnimateTransform
		out.From = Keyframe{Opacity: 0, Transform: view.Translation(tx, ty)}
	}
	switch s.Kind {
	case TransitionFade:
		out.Properties = AnimateOpacity
		out.From.Opacity = 0
	case TransitionSlideFromLeft:
		slide(-bounds.W, 0)
	case TransitionSlideFromRight:
		slide(bounds.W, 0)
	case TransitionSlideUp:
		slide(0, bounds.H)
	case TransitionSlideDown:
		slide(0, -bounds.H)
	case TransitionScale:
		out.Properties = AnimateTransform
		out.From.Transform = view.Scaling(scaleFactor, scaleFactor)
		out.Curve = Curve{Easing: EaseOut, Damping: 0.5, Velocity: 0.7}
	case TransitionFlip:
		out.Properties = AnimateTransform
		out.From.Transform = view.RotationAroundY(math.Pi/2, flipPerspective)
		out.Curve = Curve{Easing: EaseInOut, Damping: 0.7, Velocity: 0.5}
	}
	return out, nil
}

// ApplyTransition plays an entrance animation: the view is synchronously
// moved to its pre-transition state (for instance transparent, or scaled
// down), then the Scheduler animates it back to rest.
func (d *Decorator) ApplyTransition(v view.View, s TransitionSpec) error {
	anim, err := s.Animation(v.Bounds())
	if err != nil {
		return err
	}
	anim.Apply(v.Layer(), 0)
	d.scheduler.Schedule(v, anim)
	return nil
}
