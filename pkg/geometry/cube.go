package geometry

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrNoPoints is returned when a cube is requested for an empty point set.
var ErrNoPoints = errors.New("no points")

// Range is a closed interval on one axis.
type Range struct {
	Low, High float64
}

// Width returns High-Low.
func (r Range) Width() float64 {
	return r.High - r.Low
}

// Contains reports whether v lies in the range, allowing tol of rounding slack.
func (r Range) Contains(v, tol float64) bool {
	return v >= r.Low-tol && v <= r.High+tol
}

// Cube holds axis limits with one shared extent, so a plot fitted to it is
// not stretched along any axis. Each range starts at that axis' minimum.
type Cube struct {
	X, Y, Z Range
}

// Extent returns the shared width of all three ranges.
func (c Cube) Extent() float64 {
	return c.X.Width()
}

// Axis returns the range for axis 0=X, 1=Y, 2=Z.
func (c Cube) Axis(axis int) Range {
	switch axis {
	case 0:
		return c.X
	case 1:
		return c.Y
	default:
		return c.Z
	}
}

// Center returns the middle of the cube.
func (c Cube) Center() Vector3 {
	return NewVector3(
		(c.X.Low+c.X.High)/2,
		(c.Y.Low+c.Y.High)/2,
		(c.Z.Low+c.Z.High)/2,
	)
}

// CubeFromPoints fits a cube to flattened coordinate sequences. The three
// slices must have the same length.
func CubeFromPoints(xs, ys, zs []float64) (Cube, error) {
	if len(xs) == 0 || len(ys) == 0 || len(zs) == 0 {
		return Cube{}, ErrNoPoints
	}

	minX, minY, minZ := floats.Min(xs), floats.Min(ys), floats.Min(zs)
	extent := math.Max(floats.Max(xs)-minX, math.Max(floats.Max(ys)-minY, floats.Max(zs)-minZ))

	return Cube{
		X: Range{Low: minX, High: minX + extent},
		Y: Range{Low: minY, High: minY + extent},
		Z: Range{Low: minZ, High: minZ + extent},
	}, nil
}

// CubeAround flattens the given point lists and fits a cube to them.
func CubeAround(polygons ...[]Vector3) (Cube, error) {
	var xs, ys, zs []float64
	for _, poly := range polygons {
		for _, p := range poly {
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
			zs = append(zs, p.Z)
		}
	}
	return CubeFromPoints(xs, ys, zs)
}
