// Package cli implements the viewdecor command line.
package cli

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/benoitkugler/viewdecor/decor"
	"github.com/benoitkugler/viewdecor/internal/preset"
	"github.com/benoitkugler/viewdecor/view"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	root    *cobra.Command
	verbose bool // log decorator warnings
	noColor bool
}

// NewApp creates a new CLI application.
func NewApp() *App {
	a := &App{}

	a.root = &cobra.Command{
		Use:   "viewdecor",
		Short: "Render decorated views",
		Long: `viewdecor applies the decorations described by a TOML preset
(rounded corners, borders, shadows, glows, fades, gradients,
curved edges and transitions) to a view and renders it.`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if a.noColor {
				DisableColor()
			}
		},
	}

	a.root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Print decorator warnings")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.renderCmd())
	a.root.AddCommand(a.svgCmd())
	a.root.AddCommand(a.treeCmd())
	a.root.AddCommand(a.previewCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "viewdecor %s (commit: %s)\n", Version, Commit)
		},
	}
}

// SetOutput redirects the standard and error outputs, for tests.
func (a *App) SetOutput(w io.Writer) {
	a.root.SetOut(w)
	a.root.SetErr(w)
}

// Execute runs the CLI application with the given arguments.
func (a *App) Execute(args ...string) error {
	a.root.SetArgs(args)
	return a.root.Execute()
}

// decorator returns a decorator logging to the error output in verbose mode.
func (a *App) decorator(cmd *cobra.Command, opts ...decor.Option) *decor.Decorator {
	if a.verbose {
		logger := log.New(warnWriter{cmd.ErrOrStderr()}, "", 0)
		opts = append(opts, decor.WithLogger(logger))
	}
	return decor.New(opts...)
}

// load reads the preset and builds the decorated node.
func (a *App) load(cmd *cobra.Command, path string, opts ...decor.Option) (*preset.Preset, *view.Node, error) {
	p, err := preset.LoadFrom(path)
	if err != nil {
		return nil, nil, fmt.Errorf("loading preset: %w", err)
	}
	n, err := p.NewNode()
	if err != nil {
		return nil, nil, err
	}
	if err := p.Apply(a.decorator(cmd, opts...), n); err != nil {
		return nil, nil, err
	}
	return p, n, nil
}
