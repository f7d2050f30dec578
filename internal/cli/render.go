package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/srwiley/rasterx"

	"github.com/benoitkugler/viewdecor/decor"
	"github.com/benoitkugler/viewdecor/view"
	"github.com/benoitkugler/viewdecor/viewpath"
	"github.com/benoitkugler/viewdecor/viewpdf"
	"github.com/benoitkugler/viewdecor/viewraster"
)

func (a *App) renderCmd() *cobra.Command {
	var (
		output string
		scale  float64
		margin float64
		at     float64
		mask   string
	)

	cmd := &cobra.Command{
		Use:   "render <preset.toml>",
		Short: "Render a preset to a PNG image or a PDF page",
		Long: `Render the view described by a preset to a PNG image, or to
a vector PDF page when the output file ends with .pdf (one point per
view unit: --scale is ignored).

The margin around the view defaults to the room needed by its shadow.
With --at, the transition of the preset is frozen at the given
fraction of its duration (0 is the initial state, 1 the final one).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if at < 0 || at > 1 {
				return fmt.Errorf("--at must be in [0, 1], got %g", at)
			}
			var rec decor.Recorder
			_, n, err := a.load(cmd, args[0], decor.WithScheduler(&rec))
			if err != nil {
				return err
			}
			if mask != "" {
				if err := a.applyMaskFile(cmd, n, mask); err != nil {
					return err
				}
			}
			rec.Seek(at)

			if output == "" {
				base := filepath.Base(args[0])
				output = base[:len(base)-len(filepath.Ext(base))] + ".png"
			}
			if !cmd.Flags().Changed("margin") {
				margin = viewraster.FitMargin(n.Layer(), n.Bounds())
			}

			if strings.EqualFold(filepath.Ext(output), ".pdf") {
				err = viewpdf.WriteFile(output, n, viewpdf.Options{Margin: margin})
			} else {
				err = writePNG(output, n, viewraster.Options{Scale: scale, Margin: margin})
			}
			if err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			colorDone.Fprintf(cmd.OutOrStdout(), "Rendered %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: preset name with .png)")
	cmd.Flags().Float64Var(&scale, "scale", 1, "Pixels per view unit")
	cmd.Flags().Float64Var(&margin, "margin", 0, "Room around the view, in view units")
	cmd.Flags().Float64Var(&at, "at", 1, "Transition progress, in [0, 1]")
	cmd.Flags().StringVar(&mask, "mask", "", "SVG file whose shapes are used as mask")

	return cmd
}

func writePNG(output string, v view.View, opts viewraster.Options) error {
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	err = viewraster.WritePNG(f, v, opts)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// applyMaskFile reads the shapes of an SVG file, maps its viewBox
// onto the view bounds and installs them as mask.
func (a *App) applyMaskFile(cmd *cobra.Command, v view.View, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	path, viewBox, err := viewpath.ReadMaskSVG(f)
	if err != nil {
		return fmt.Errorf("reading mask %s: %w", file, err)
	}
	a.decorator(cmd).ApplyPathMask(v, path.Transform(fitMatrix(viewBox, v.Bounds())))
	return nil
}

// fitMatrix maps `from` onto `to`.
func fitMatrix(from, to viewpath.Rect) rasterx.Matrix2D {
	if from.IsEmpty() {
		return rasterx.Identity.Translate(to.X, to.Y)
	}
	return rasterx.Identity.
		Translate(to.X, to.Y).
		Scale(to.W/from.W, to.H/from.H).
		Translate(-from.X, -from.Y)
}
