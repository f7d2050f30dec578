package cli

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/benoitkugler/viewdecor/internal/preset"
	"github.com/benoitkugler/viewdecor/view"
	"github.com/benoitkugler/viewdecor/viewpath"
)

func (a *App) svgCmd() *cobra.Command {
	var shadow bool

	cmd := &cobra.Command{
		Use:   "svg <preset.toml>",
		Short: "Print the clipping outline of a preset as SVG",
		Long: `Print the outline clipping the decorated view as an SVG document:
its path mask when one is installed, or its rounded bounds otherwise.
With --shadow, the outline of the shadow is printed instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, n, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}
			l := n.Layer()

			var path viewpath.Path
			if shadow {
				if !l.Shadow.IsVisible() {
					return fmt.Errorf("%s casts no shadow", args[0])
				}
				path = l.Shadow.Path
				if len(path) == 0 {
					path = outline(n)
				}
			} else {
				switch mask := l.Mask.(type) {
				case *view.ShapeLayer:
					path = mask.Path
				case nil:
					path = outline(n)
				default:
					colorWarn.Fprintln(cmd.ErrOrStderr(), "warning: the mask is not a shape, printing the view outline")
					path = outline(n)
				}
			}
			return writeSVG(cmd.OutOrStdout(), n.Bounds(), path, l.Shadow, shadow)
		},
	}

	cmd.Flags().BoolVar(&shadow, "shadow", false, "Print the shadow outline")

	return cmd
}

// outline returns the rounded bounds of the view.
func outline(v view.View) viewpath.Path {
	return viewpath.RoundedRectPath(v.Bounds(), viewpath.AllCorners, v.Layer().CornerRadius)
}

func writeSVG(w io.Writer, bounds viewpath.Rect, path viewpath.Path, s view.Shadow, isShadow bool) error {
	fill, attrs := "#000000", ""
	if isShadow {
		fill = preset.FormatColor(s.Color)
		attrs = fmt.Sprintf(` fill-opacity="%g" transform="translate(%g %g)"`, s.Opacity, s.Offset.X, s.Offset.Y)
		// leave room for the offset shadow
		m := 1.5*s.Radius + math.Max(math.Abs(s.Offset.X), math.Abs(s.Offset.Y))
		bounds = bounds.Inset(-m, -m)
	}
	_, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%g %g %g %g">
  <path d="%s" fill="%s"%s/>
</svg>
`, bounds.X, bounds.Y, bounds.W, bounds.H, path.ToSVGPath(), fill, attrs)
	return err
}
