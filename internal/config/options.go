// Package config holds the command line options of idfview and the logger
// they configure.
package config

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
)

// Backend names accepted by --backend.
const (
	BackendPNG    = "png"
	BackendPlot   = "plot"
	BackendWindow = "window"
	BackendTerm   = "term"
)

// Backends lists the accepted backend names.
var Backends = []string{BackendWindow, BackendPNG, BackendPlot, BackendTerm}

// UsageError reports invalid command line input.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

// Input selects what is viewed.
type Input int

const (
	InputFile Input = iota
	InputText
	InputPolygons
)

// Options are the settings of the view command.
type Options struct {
	File     string
	Text     string
	Polygons string

	Backend    string
	Output     string
	Size       string
	Opacity    float64
	Projection string
	Watch      bool
	Test       bool
}

// Input returns the selected input. Call Validate first.
func (o Options) Input() Input {
	switch {
	case o.Text != "":
		return InputText
	case o.Polygons != "":
		return InputPolygons
	default:
		return InputFile
	}
}

// Validate checks that exactly one input is selected and that the
// rendering settings make sense.
func (o *Options) Validate() error {
	selected := 0
	for _, in := range []string{o.File, o.Text, o.Polygons} {
		if in != "" {
			selected++
		}
	}
	switch {
	case selected == 0:
		return &UsageError{Msg: "pass a model file, --text or --polygons"}
	case selected > 1:
		return &UsageError{Msg: "pass either a model file, --text or --polygons, not more than one"}
	}

	if math.IsNaN(o.Opacity) || o.Opacity < 0 || o.Opacity > 1 {
		return &UsageError{Msg: fmt.Sprintf("--opacity must be between 0 and 1, got %g", o.Opacity)}
	}

	if o.Backend == "" {
		o.Backend = BackendWindow
	}
	known := false
	for _, b := range Backends {
		if o.Backend == b {
			known = true
		}
	}
	if !known {
		return &UsageError{Msg: fmt.Sprintf("unknown backend %q (expected one of %s)", o.Backend, strings.Join(Backends, ", "))}
	}

	if _, _, err := o.Dimensions(); err != nil {
		return err
	}

	switch o.Projection {
	case "", "plan", "front", "side":
	default:
		return &UsageError{Msg: fmt.Sprintf("unknown --projection %q (expected plan, front or side)", o.Projection)}
	}

	if o.Watch && o.File == "" {
		return &UsageError{Msg: "--watch needs a model file"}
	}

	if o.Output == "" {
		o.Output = o.defaultOutput()
	}
	return nil
}

// Dimensions parses Size as WIDTHxHEIGHT.
func (o Options) Dimensions() (int, int, error) {
	if o.Size == "" {
		return 1200, 900, nil
	}
	w, h, ok := strings.Cut(strings.ToLower(o.Size), "x")
	if !ok {
		return 0, 0, &UsageError{Msg: fmt.Sprintf("--size must look like 1200x900, got %q", o.Size)}
	}
	width, errW := strconv.Atoi(w)
	height, errH := strconv.Atoi(h)
	if errW != nil || errH != nil || width <= 0 || height <= 0 {
		return 0, 0, &UsageError{Msg: fmt.Sprintf("--size must look like 1200x900, got %q", o.Size)}
	}
	return width, height, nil
}

// Title names the viewed input for window titles and image captions.
func (o Options) Title() string {
	switch o.Input() {
	case InputText:
		return "inline model"
	case InputPolygons:
		return filepath.Base(o.Polygons)
	default:
		return filepath.Base(o.File)
	}
}

func (o Options) defaultOutput() string {
	ext := ".png"
	if o.Backend == BackendPlot {
		ext = ".svg"
	}
	base := "idfview"
	switch o.Input() {
	case InputFile:
		base = strings.TrimSuffix(filepath.Base(o.File), filepath.Ext(o.File))
	case InputPolygons:
		base = strings.TrimSuffix(filepath.Base(o.Polygons), filepath.Ext(o.Polygons))
	}
	return base + ext
}
