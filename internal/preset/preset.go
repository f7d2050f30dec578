// Package preset handles decoration presets: a view size and a list
// of effects, loaded from TOML files, defaults and environment variables.
package preset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/benoitkugler/viewdecor/decor"
	"github.com/benoitkugler/viewdecor/view"
	"github.com/benoitkugler/viewdecor/viewpath"
)

// Preset holds a view description and its decorations.
// Effects are optional: nil sections are not applied.
type Preset struct {
	View       ViewConfig        `toml:"view"`
	Content    []ContentConfig   `toml:"content,omitempty"`
	Corners    *CornersConfig    `toml:"corners,omitempty"`
	Border     *BorderConfig     `toml:"border,omitempty"`
	Shadow     *ShadowConfig     `toml:"shadow,omitempty"`
	Glow       *GlowConfig       `toml:"glow,omitempty"`
	Background *BackgroundConfig `toml:"background,omitempty"`
	Fade       *FadeConfig       `toml:"fade,omitempty"`
	Curve      *CurveConfig      `toml:"curve,omitempty"`
	Transition *TransitionConfig `toml:"transition,omitempty"`
}

// ViewConfig holds the size of the decorated view.
type ViewConfig struct {
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	Background string  `toml:"background"` // e.g. "#ffffff", empty for transparent
}

// ContentConfig is a shape drawn by the view itself, above its background.
type ContentConfig struct {
	Path  string `toml:"path"` // SVG path data, in view coordinates
	Color string `toml:"color"`
}

// CornersConfig rounds the corners of the view.
type CornersConfig struct {
	Radius float64  `toml:"radius"`
	Only   []string `toml:"only,omitempty"` // e.g. ["topLeft", "topRight"]; empty means all
}

// BorderConfig strokes the outline of the view.
type BorderConfig struct {
	Width  float64 `toml:"width"`
	Color  string  `toml:"color"`
	Radius float64 `toml:"radius"`
}

// ShadowConfig casts a drop shadow.
type ShadowConfig struct {
	Color   string  `toml:"color"`
	Opacity float64 `toml:"opacity"`
	OffsetX float64 `toml:"offset_x"`
	OffsetY float64 `toml:"offset_y"`
	Radius  float64 `toml:"radius"`
}

// GlowConfig draws an inner glow.
type GlowConfig struct {
	Color   string  `toml:"color"`
	Radius  float64 `toml:"radius"`
	Opacity float64 `toml:"opacity"`
}

// BackgroundConfig installs a gradient background.
type BackgroundConfig struct {
	Kind      string    `toml:"kind"` // "linear" or "radial"
	Colors    []string  `toml:"colors"`
	Locations []float64 `toml:"locations,omitempty"`
	Direction string    `toml:"direction,omitempty"` // e.g. "vertical", "topLeftToBottomRight"
}

// FadeConfig fades some edges of the view.
type FadeConfig struct {
	Style      string  `toml:"style"` // "top", "bottom", "left", "right", "vertical", "horizontal"
	Percentage float64 `toml:"percentage"`
}

// CurveConfig bends the top or bottom edge.
type CurveConfig struct {
	Edge    string  `toml:"edge"` // "top" or "bottom"
	Divisor float64 `toml:"divisor"`
}

// TransitionConfig plays an entrance transition.
type TransitionConfig struct {
	Kind     string `toml:"kind"`     // e.g. "fade", "slideUp", "flip"
	Duration string `toml:"duration"` // e.g. "600ms", empty for the default
}

// Default returns a plain white card, without effects.
func Default() *Preset {
	return &Preset{
		View: ViewConfig{
			Width:      320,
			Height:     200,
			Background: "#ffffff",
		},
	}
}

// LoadFrom loads a preset from the specified path.
// It starts with defaults, overlays the file, then applies env overrides.
// The file is required: a missing file is an error.
func LoadFrom(path string) (*Preset, error) {
	p := Default()

	if err := loadFromFile(path, p); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(p); err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid preset: %w", err)
	}

	return p, nil
}

// loadFromFile overlays the preset file on p.
func loadFromFile(path string, p *Preset) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading preset file: %w", err)
	}

	if err := toml.Unmarshal(data, p); err != nil {
		return fmt.Errorf("parsing preset file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the preset.
// Environment variables take precedence over the file.
func applyEnvOverrides(p *Preset) error {
	for _, env := range [...]struct {
		name string
		dst  *float64
	}{{"VIEWDECOR_WIDTH", &p.View.Width}, {"VIEWDECOR_HEIGHT", &p.View.Height}} {
		v := os.Getenv(env.name)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", env.name, err)
		}
		*env.dst = f
	}
	if v := os.Getenv("VIEWDECOR_BACKGROUND"); v != "" {
		p.View.Background = v
	}
	return nil
}

// Validate checks that the preset is well formed.
// Numeric ranges are checked by the decorators when the preset is applied.
func (p *Preset) Validate() error {
	if p.View.Width <= 0 || p.View.Height <= 0 {
		return fmt.Errorf("view size must be positive, got %gx%g", p.View.Width, p.View.Height)
	}
	if err := validateColor(p.View.Background, "view.background", true); err != nil {
		return err
	}
	for i, c := range p.Content {
		if _, err := viewpath.ParseSVGPath(c.Path); err != nil {
			return fmt.Errorf("content[%d].path: %w", i, err)
		}
		if err := validateColor(c.Color, fmt.Sprintf("content[%d].color", i), false); err != nil {
			return err
		}
	}
	if c := p.Corners; c != nil {
		if _, err := parseCorners(c.Only); err != nil {
			return err
		}
	}
	if b := p.Border; b != nil {
		if err := validateColor(b.Color, "border.color", false); err != nil {
			return err
		}
	}
	if s := p.Shadow; s != nil {
		if err := validateColor(s.Color, "shadow.color", false); err != nil {
			return err
		}
	}
	if g := p.Glow; g != nil {
		if err := validateColor(g.Color, "glow.color", false); err != nil {
			return err
		}
	}
	if b := p.Background; b != nil {
		if _, err := b.spec(); err != nil {
			return err
		}
	}
	if f := p.Fade; f != nil {
		if _, err := parseFadeStyle(f.Style); err != nil {
			return err
		}
	}
	if c := p.Curve; c != nil && c.Edge != "top" && c.Edge != "bottom" {
		return fmt.Errorf("invalid curve edge: %q", c.Edge)
	}
	if t := p.Transition; t != nil {
		if _, err := t.spec(); err != nil {
			return err
		}
	}
	return nil
}

func validateColor(s, field string, optional bool) error {
	if s == "" && optional {
		return nil
	}
	if _, err := ParseColor(s); err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	return nil
}

var cornerNames = map[string]viewpath.Corner{
	"topleft":     viewpath.TopLeft,
	"topright":    viewpath.TopRight,
	"bottomleft":  viewpath.BottomLeft,
	"bottomright": viewpath.BottomRight,
}

func parseCorners(names []string) (viewpath.Corner, error) {
	if len(names) == 0 {
		return viewpath.AllCorners, nil
	}
	var out viewpath.Corner
	for _, name := range names {
		c, ok := cornerNames[strings.ToLower(name)]
		if !ok {
			return 0, fmt.Errorf("invalid corner: %s", name)
		}
		out |= c
	}
	return out, nil
}

func parseFadeStyle(s string) (decor.FadeStyle, error) {
	if s == "" {
		return decor.DefaultFade.Style, nil
	}
	for style := decor.FadeBottom; style <= decor.FadeHorizontal; style++ {
		if style.String() == s {
			return style, nil
		}
	}
	return 0, fmt.Errorf("invalid fade style: %s", s)
}

func (b *BackgroundConfig) spec() (decor.GradientSpec, error) {
	var out decor.GradientSpec
	switch b.Kind {
	case "", "linear":
		out.Type = view.Axial
	case "radial":
		out.Type = view.Radial
	default:
		return out, fmt.Errorf("invalid background kind: %s", b.Kind)
	}
	if len(b.Colors) == 0 {
		return out, errors.New("background needs at least one color")
	}
	for i, s := range b.Colors {
		c, err := ParseColor(s)
		if err != nil {
			return out, fmt.Errorf("background.colors[%d]: %w", i, err)
		}
		out.Colors = append(out.Colors, c)
	}
	out.Locations = b.Locations
	if b.Direction != "" {
		dir, ok := decor.ParseDirection(b.Direction)
		if !ok {
			return out, fmt.Errorf("invalid background direction: %s", b.Direction)
		}
		out.Direction = dir
	}
	return out, nil
}

func (t *TransitionConfig) spec() (decor.TransitionSpec, error) {
	kind, ok := decor.ParseTransitionKind(t.Kind)
	if !ok {
		return decor.TransitionSpec{}, fmt.Errorf("invalid transition kind: %s", t.Kind)
	}
	out := decor.TransitionSpec{Kind: kind}
	if t.Duration != "" {
		d, err := time.ParseDuration(t.Duration)
		if err != nil {
			return out, fmt.Errorf("invalid transition duration: %w", err)
		}
		out.Duration = d
	}
	return out, nil
}

// SaveTo writes the preset to the specified path.
func (p *Preset) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating preset directory: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling preset: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing preset file: %w", err)
	}

	return nil
}
