package main

import (
	"github.com/spf13/cobra"

	"github.com/philipparndt/idfview/internal/app"
	"github.com/philipparndt/idfview/internal/config"
	"github.com/philipparndt/idfview/pkg/scene"
)

var viewOpts config.Options

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Draw the geometry of an IDF model or of polygon groups",
	Long: `Draw an IDF model file, IDF text passed with --text, or a JSON file of
polygon groups passed with --polygons. Exactly one input is required.

Backends:
  window  interactive desktop window (drag rotates, scroll zooms)
  term    braille wireframe in the terminal
  png     software rendered image written to --output
  plot    orthographic chart written to --output (svg, png, pdf)`,
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)

	flags := viewCmd.Flags()
	flags.StringVar(&viewOpts.Text, "text", "", "IDF model text")
	flags.StringVar(&viewOpts.Polygons, "polygons", "", "JSON file mapping colour names to polygon lists")
	flags.StringVarP(&viewOpts.Backend, "backend", "b", config.BackendWindow, "Rendering backend (window, term, png, plot)")
	flags.StringVarP(&viewOpts.Output, "output", "o", "", "Output file for png and plot backends")
	flags.Float64Var(&viewOpts.Opacity, "opacity", scene.DefaultOpacity, "Fill opacity between 0 and 1")
	flags.StringVar(&viewOpts.Size, "size", "1200x900", "Image or window size as WIDTHxHEIGHT")
	flags.StringVar(&viewOpts.Projection, "projection", "plan", "Plot projection (plan, front, side)")
	flags.BoolVarP(&viewOpts.Watch, "watch", "w", false, "Redraw when the model file changes")
	flags.BoolVar(&viewOpts.Test, "test", false, "Build everything but skip the display")
}

func runView(cmd *cobra.Command, args []string) error {
	opts := viewOpts
	if len(args) == 1 {
		opts.File = args[0]
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	backend, err := app.NewBackend(opts)
	if err != nil {
		return err
	}

	return app.Run(cmd.Context(), opts, backend, log)
}
