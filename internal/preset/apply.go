package preset

import (
	"fmt"

	"github.com/benoitkugler/viewdecor/decor"
	"github.com/benoitkugler/viewdecor/view"
	"github.com/benoitkugler/viewdecor/viewpath"
)

// NewNode returns the in-memory view described by the preset,
// with its background color and content shapes, but without effects.
func (p *Preset) NewNode() (*view.Node, error) {
	n := view.NewNode(p.View.Width, p.View.Height)
	if p.View.Background != "" {
		c, err := ParseColor(p.View.Background)
		if err != nil {
			return nil, fmt.Errorf("view.background: %w", err)
		}
		n.Layer().BackgroundColor = c
	}
	for i, cc := range p.Content {
		path, err := viewpath.ParseSVGPath(cc.Path)
		if err != nil {
			return nil, fmt.Errorf("content[%d].path: %w", i, err)
		}
		c, err := ParseColor(cc.Color)
		if err != nil {
			return nil, fmt.Errorf("content[%d].color: %w", i, err)
		}
		n.Layer().AddSublayer(&view.ShapeLayer{Frame: n.Bounds(), Path: path, FillColor: c, Role: view.RoleContent})
	}
	return n, nil
}

// Apply decorates `v` with the effects of the preset.
// The effects are applied in a fixed order: background, corners, border,
// shadow, glow, fade, curve and finally transition.
// The first failing effect stops the process.
func (p *Preset) Apply(d *decor.Decorator, v view.View) error {
	if b := p.Background; b != nil {
		spec, err := b.spec()
		if err != nil {
			return err
		}
		if err := d.ApplyGradient(v, spec); err != nil {
			return fmt.Errorf("applying background: %w", err)
		}
	}
	if c := p.Corners; c != nil {
		corners, err := parseCorners(c.Only)
		if err != nil {
			return err
		}
		if corners == viewpath.AllCorners {
			err = d.ApplyCornerRadius(v, c.Radius)
		} else {
			err = d.RoundCorners(v, corners, c.Radius)
		}
		if err != nil {
			return fmt.Errorf("applying corners: %w", err)
		}
	}
	if b := p.Border; b != nil {
		c, err := ParseColor(b.Color)
		if err != nil {
			return fmt.Errorf("border.color: %w", err)
		}
		if err := d.ApplyBorder(v, b.Radius, c, b.Width); err != nil {
			return fmt.Errorf("applying border: %w", err)
		}
	}
	if s := p.Shadow; s != nil {
		c, err := ParseColor(s.Color)
		if err != nil {
			return fmt.Errorf("shadow.color: %w", err)
		}
		shadow := decor.Shadow{Color: c, Opacity: s.Opacity, Offset: viewpath.Point{X: s.OffsetX, Y: s.OffsetY}, Radius: s.Radius}
		if err := d.ApplyShadow(v, shadow); err != nil {
			return fmt.Errorf("applying shadow: %w", err)
		}
	}
	if g := p.Glow; g != nil {
		c, err := ParseColor(g.Color)
		if err != nil {
			return fmt.Errorf("glow.color: %w", err)
		}
		if err := d.ApplyInnerGlow(v, c, g.Radius, g.Opacity); err != nil {
			return fmt.Errorf("applying glow: %w", err)
		}
	}
	if f := p.Fade; f != nil {
		style, err := parseFadeStyle(f.Style)
		if err != nil {
			return err
		}
		percentage := f.Percentage
		if percentage == 0 {
			percentage = decor.DefaultFadePercentage
		}
		if err := d.ApplyFade(v, decor.FadeSpec{Style: style, Percentage: percentage}); err != nil {
			return fmt.Errorf("applying fade: %w", err)
		}
	}
	if c := p.Curve; c != nil {
		var err error
		if c.Edge == "bottom" {
			err = d.ApplyBottomCurve(v, c.Divisor)
		} else {
			err = d.ApplyTopCurve(v, c.Divisor)
		}
		if err != nil {
			return fmt.Errorf("applying curve: %w", err)
		}
	}
	if t := p.Transition; t != nil {
		spec, err := t.spec()
		if err != nil {
			return err
		}
		if err := d.ApplyTransition(v, spec); err != nil {
			return fmt.Errorf("applying transition: %w", err)
		}
	}
	return nil
}
