// Package scene groups resolved surfaces into styled collections and fits
// the cubic axis limits a renderer needs to show them undistorted.
package scene

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/philipparndt/idfview/pkg/building"
	"github.com/philipparndt/idfview/pkg/geometry"
)

var (
	// ErrEmptyGeometry is returned when bounds are requested for zero points.
	ErrEmptyGeometry = errors.New("no geometry to fit")
	// ErrUnknownColor is returned for colour names that are neither SVG names nor #rrggbb.
	ErrUnknownColor = errors.New("unknown color")
)

// DefaultEdge is the edge colour of every collection.
const DefaultEdge = "black"

// DefaultOpacity is the fill opacity used by the viewer.
const DefaultOpacity = 0.5

// Style is the look shared by every polygon of a collection.
type Style struct {
	Fill    color.RGBA
	Edge    color.RGBA
	Opacity float64
}

// Collection is a named group of resolved polygons drawn with one style.
type Collection struct {
	Name     string
	Polygons [][]geometry.Vector3
	Style    Style
}

// Len returns the number of polygons.
func (c Collection) Len() int {
	return len(c.Polygons)
}

// Points returns all vertices of all polygons.
func (c Collection) Points() []geometry.Vector3 {
	var points []geometry.Vector3
	for _, poly := range c.Polygons {
		points = append(points, poly...)
	}
	return points
}

// Palette maps surface types to colour names.
type Palette map[building.SurfaceType]string

// DefaultPalette colours surfaces the way building modellers expect.
var DefaultPalette = Palette{
	building.Wall:    "lightyellow",
	building.Floor:   "dimgray",
	building.Roof:    "firebrick",
	building.Window:  "cornflowerblue",
	building.Shading: "darkolivegreen",
}

// Style returns the style for a surface type.
func (p Palette) Style(t building.SurfaceType, opacity float64) (Style, error) {
	name, ok := p[t]
	if !ok {
		return Style{}, fmt.Errorf("no colour for surface type %s", t)
	}
	return NewStyle(name, opacity)
}

// NewStyle builds a style with the given fill and the default edge colour.
func NewStyle(fill string, opacity float64) (Style, error) {
	fillColor, err := NamedColor(fill)
	if err != nil {
		return Style{}, err
	}
	edgeColor, err := NamedColor(DefaultEdge)
	if err != nil {
		return Style{}, err
	}
	return Style{Fill: fillColor, Edge: edgeColor, Opacity: opacity}, nil
}

// NamedColor resolves an SVG colour name or a #rrggbb value.
func NamedColor(name string) (color.RGBA, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	if strings.HasPrefix(name, "#") && len(name) == 7 {
		v, err := strconv.ParseUint(name[1:], 16, 32)
		if err == nil {
			return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
		}
	}
	return color.RGBA{}, fmt.Errorf("%w %q", ErrUnknownColor, name)
}
