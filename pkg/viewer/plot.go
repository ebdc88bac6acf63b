package viewer

import (
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Orthographic projections supported by the plot backend.
const (
	ProjectionPlan  = "plan"
	ProjectionFront = "front"
	ProjectionSide  = "side"
)

// PlotBackend draws an orthographic chart and saves it. The output format
// follows the file extension (svg, png, pdf, eps).
type PlotBackend struct {
	Path          string
	Width, Height int
	Projection    string
}

// Name implements Backend
func (b *PlotBackend) Name() string {
	return "plot"
}

// Available implements Backend
func (b *PlotBackend) Available() error {
	return nil
}

// Show builds the chart and saves it to Path
func (b *PlotBackend) Show(f Frame) error {
	plt, err := b.Plot(f)
	if err != nil {
		return err
	}

	side := b.canvasSide()
	if err := plt.Save(side, side, b.Path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}

// canvasSide is the edge of the square canvas. The axes span equal data
// ranges, so a non-square canvas would stretch one of them.
func (b *PlotBackend) canvasSide() vg.Length {
	return vg.Points(float64(min(b.Width, b.Height)))
}

// Plot builds the chart without saving it
func (b *PlotBackend) Plot(f Frame) (*plot.Plot, error) {
	axes, err := projectionAxes(b.Projection)
	if err != nil {
		return nil, err
	}

	plt := plot.New()
	plt.Title.Text = f.Title
	plt.X.Label.Text = axisNames[axes.u]
	plt.Y.Label.Text = axisNames[axes.v]

	// Both axes span the cube so the drawing keeps its proportions
	plt.X.Min, plt.X.Max = f.Bounds.Axis(axes.u).Low, f.Bounds.Axis(axes.u).High
	plt.Y.Min, plt.Y.Max = f.Bounds.Axis(axes.v).Low, f.Bounds.Axis(axes.v).High

	type shape struct {
		poly  *plotter.Polygon
		depth float64
	}

	var shapes []shape
	for _, c := range f.Collections {
		var first *plotter.Polygon
		for _, vertices := range c.Polygons {
			if len(vertices) == 0 {
				continue
			}

			xys := make(plotter.XYs, len(vertices))
			depth := 0.0
			for i, v := range vertices {
				xys[i].X = v.Axis(axes.u)
				xys[i].Y = v.Axis(axes.v)
				depth += v.Axis(axes.depth)
			}

			poly, err := plotter.NewPolygon(xys)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", c.Name, err)
			}
			poly.Color = withOpacity(c.Style.Fill, c.Style.Opacity)
			poly.LineStyle.Color = c.Style.Edge
			poly.LineStyle.Width = vg.Points(0.5)

			shapes = append(shapes, shape{poly: poly, depth: axes.sign * depth / float64(len(vertices))})
			if first == nil {
				first = poly
			}
		}
		if first != nil {
			plt.Legend.Add(c.Name, first)
		}
	}

	// Farthest from the viewer first
	sort.SliceStable(shapes, func(i, j int) bool {
		return shapes[i].depth < shapes[j].depth
	})
	for _, s := range shapes {
		plt.Add(s.poly)
	}

	return plt, nil
}

var axisNames = [3]string{"x", "y", "z"}

// view axes for a projection; depth grows toward the viewer when sign is 1
type viewAxes struct {
	u, v, depth int
	sign        float64
}

func projectionAxes(name string) (viewAxes, error) {
	switch name {
	case "", ProjectionPlan:
		return viewAxes{u: 0, v: 1, depth: 2, sign: 1}, nil
	case ProjectionFront:
		// Looking north along +y
		return viewAxes{u: 0, v: 2, depth: 1, sign: -1}, nil
	case ProjectionSide:
		// Looking west along -x
		return viewAxes{u: 1, v: 2, depth: 0, sign: 1}, nil
	default:
		return viewAxes{}, fmt.Errorf("unknown projection %q", name)
	}
}

func withOpacity(c color.RGBA, opacity float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(opacity * 255)}
}
