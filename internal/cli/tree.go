package cli

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/benoitkugler/viewdecor/decor"
	"github.com/benoitkugler/viewdecor/internal/preset"
	"github.com/benoitkugler/viewdecor/view"
	"github.com/benoitkugler/viewdecor/viewpath"
)

func (a *App) treeCmd() *cobra.Command {
	var at float64

	cmd := &cobra.Command{
		Use:   "tree <preset.toml>",
		Short: "Print the layer tree of a decorated view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var rec decor.Recorder
			_, n, err := a.load(cmd, args[0], decor.WithScheduler(&rec))
			if err != nil {
				return err
			}
			rec.Seek(at)
			printTree(cmd.OutOrStdout(), n, termWidth())
			return nil
		},
	}

	cmd.Flags().Float64Var(&at, "at", 1, "Transition progress, in [0, 1]")

	return cmd
}

// treePrinter writes aligned key/value lines
type treePrinter struct {
	w     io.Writer
	width int
}

func (tp treePrinter) prop(indent int, key string, format string, args ...interface{}) {
	value := fmt.Sprintf(format, args...)
	prefix := strings.Repeat("  ", indent)
	// paths may be very long
	if room := tp.width - len(prefix) - len(key) - 2; room > 3 && len(value) > room {
		value = value[:room-3] + "..."
	}
	fmt.Fprint(tp.w, prefix)
	colorKey.Fprint(tp.w, key)
	fmt.Fprintf(tp.w, ": %s\n", value)
}

func printTree(w io.Writer, v view.View, width int) {
	tp := treePrinter{w: w, width: width}
	l := v.Layer()
	b := v.Bounds()

	colorHeader.Fprintf(w, "view %gx%g at (%g, %g)\n", b.W, b.H, b.X, b.Y)
	tp.prop(1, "background", "%s", formatColor(l.BackgroundColor))
	tp.prop(1, "opacity", "%g", l.Opacity)
	if l.CornerRadius != 0 {
		tp.prop(1, "cornerRadius", "%g", l.CornerRadius)
	}
	tp.prop(1, "masksToBounds", "%t", l.MasksToBounds)
	if l.BorderWidth != 0 {
		tp.prop(1, "border", "%g %s", l.BorderWidth, formatColor(l.BorderColor))
	}
	if s := l.Shadow; s.IsVisible() {
		tp.prop(1, "shadow", "%s opacity %g offset (%g, %g) radius %g",
			formatColor(s.Color), s.Opacity, s.Offset.X, s.Offset.Y, s.Radius)
		if len(s.Path) != 0 {
			tp.prop(2, "path", "%s", s.Path.ToSVGPath())
		}
	}
	if t := l.Transform; !t.IsIdentity() {
		m := t.Affine
		tp.prop(1, "transform", "[%g %g %g %g %g %g] rotationY %g", m.A, m.B, m.C, m.D, m.E, m.F, t.RotationY)
	}
	if l.Mask != nil {
		tp.prop(1, "mask", "")
		printSublayer(tp, 2, l.Mask)
	}
	if len(l.Sublayers) != 0 {
		tp.prop(1, "sublayers", "%d", len(l.Sublayers))
		for _, s := range l.Sublayers {
			printSublayer(tp, 2, s)
		}
	}
}

func printSublayer(tp treePrinter, indent int, s view.Sublayer) {
	switch s := s.(type) {
	case *view.ShapeLayer:
		fmt.Fprint(tp.w, strings.Repeat("  ", indent))
		colorHeader.Fprint(tp.w, "shape")
		colorMuted.Fprintf(tp.w, " (%s)\n", s.Kind())
		tp.prop(indent+1, "frame", "%s", formatRect(s.Frame))
		tp.prop(indent+1, "path", "%s", s.Path.ToSVGPath())
	case *view.GradientLayer:
		fmt.Fprint(tp.w, strings.Repeat("  ", indent))
		colorHeader.Fprintf(tp.w, "%s gradient", s.Type)
		colorMuted.Fprintf(tp.w, " (%s)\n", s.Kind())
		tp.prop(indent+1, "frame", "%s", formatRect(s.Frame))
		colors := make([]string, len(s.Colors))
		for i, c := range s.Colors {
			colors[i] = formatColor(c)
		}
		tp.prop(indent+1, "colors", "%s", strings.Join(colors, " "))
		if s.Locations != nil {
			tp.prop(indent+1, "locations", "%v", s.Locations)
		}
		tp.prop(indent+1, "points", "(%g, %g) -> (%g, %g)", s.Start.X, s.Start.Y, s.End.X, s.End.Y)
	}
}

func formatColor(c color.Color) string {
	if c == nil {
		return "none"
	}
	return preset.FormatColor(c)
}

func formatRect(r viewpath.Rect) string {
	return fmt.Sprintf("%gx%g at (%g, %g)", r.W, r.H, r.X, r.Y)
}
