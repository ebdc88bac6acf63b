package app

import (
	"fmt"

	"github.com/philipparndt/idfview/internal/config"
	"github.com/philipparndt/idfview/pkg/idf"
	"github.com/philipparndt/idfview/pkg/scene"
	"github.com/philipparndt/idfview/pkg/viewer"
)

// Load reads the selected input and builds the frame to draw
func Load(opts config.Options) (viewer.Frame, error) {
	var (
		collections []scene.Collection
		err         error
	)

	switch opts.Input() {
	case config.InputPolygons:
		groups, loadErr := scene.LoadGroupsFile(opts.Polygons)
		if loadErr != nil {
			return viewer.Frame{}, loadErr
		}
		collections, err = scene.BuildFromGroups(groups, opts.Opacity)

	case config.InputText:
		m, parseErr := idf.ParseString(opts.Text)
		if parseErr != nil {
			return viewer.Frame{}, fmt.Errorf("failed to parse model text: %w", parseErr)
		}
		collections, err = scene.BuildModel(m, scene.DefaultPalette, opts.Opacity)

	default:
		m, parseErr := idf.ParseFile(opts.File)
		if parseErr != nil {
			return viewer.Frame{}, parseErr
		}
		collections, err = scene.BuildModel(m, scene.DefaultPalette, opts.Opacity)
	}
	if err != nil {
		return viewer.Frame{}, err
	}

	cube, err := scene.ComputeBounds(scene.CollectionsSource{Collections: collections})
	if err != nil {
		return viewer.Frame{}, err
	}

	return viewer.Frame{
		Title:       opts.Title(),
		Collections: collections,
		Bounds:      cube,
	}, nil
}

// NewBackend creates the backend selected in opts. Call opts.Validate first.
func NewBackend(opts config.Options) (viewer.Backend, error) {
	width, height, err := opts.Dimensions()
	if err != nil {
		return nil, err
	}

	switch opts.Backend {
	case config.BackendPNG:
		return &viewer.PNGBackend{Path: opts.Output, Width: width, Height: height}, nil
	case config.BackendPlot:
		return &viewer.PlotBackend{Path: opts.Output, Width: width, Height: height, Projection: opts.Projection}, nil
	case config.BackendWindow:
		return &viewer.WindowBackend{Width: width, Height: height}, nil
	case config.BackendTerm:
		return &viewer.TermBackend{}, nil
	default:
		return nil, &config.UsageError{Msg: fmt.Sprintf("unknown backend %q", opts.Backend)}
	}
}
