package cli

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/spf13/cobra"

	"github.com/benoitkugler/viewdecor/decor"
	"github.com/benoitkugler/viewdecor/internal/preset"
	"github.com/benoitkugler/viewdecor/viewfyne"
	"github.com/benoitkugler/viewdecor/viewraster"
)

func (a *App) previewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview <preset.toml>",
		Short: "Show a preset in a window",
		Long: `Open a window showing the decorated view, and play its transition.
The Replay button plays the transition again.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := preset.LoadFrom(args[0])
			if err != nil {
				return err
			}
			n, err := p.NewNode()
			if err != nil {
				return err
			}

			previewApp := app.NewWithID("com.benoitkugler.viewdecor")
			win := previewApp.NewWindow("viewdecor - " + args[0])

			size := fyne.NewSize(float32(p.View.Width), float32(p.View.Height))
			fv := viewfyne.NewView(size)
			// the decorators need the final size
			fv.Resize(size)
			*fv.Layer() = *n.Layer()

			var rec decor.Recorder
			if err := p.Apply(a.decorator(cmd, decor.WithScheduler(&rec)), fv); err != nil {
				return err
			}
			replay := func() {
				for _, s := range rec.Scheduled {
					s.Animation.Apply(s.View.Layer(), 0)
					viewfyne.Scheduler{}.Schedule(s.View, s.Animation)
				}
			}
			replayButton := widget.NewButton("Replay", replay)
			if len(rec.Scheduled) == 0 {
				replayButton.Disable()
			}

			// room for the shadow, keeping the decorated bounds
			margin := float32(viewraster.FitMargin(fv.Layer(), fv.Bounds()))
			fv.SetMargin(margin)
			fv.Resize(size.AddWidthHeight(2*margin, 2*margin))
			win.SetContent(container.NewBorder(nil, replayButton, nil, nil, container.NewCenter(fv)))
			win.Resize(fv.MinSize().AddWidthHeight(40, 80))

			replay()
			win.ShowAndRun()
			return nil
		},
	}
}
