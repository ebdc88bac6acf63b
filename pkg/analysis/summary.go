// Package analysis summarises what a viewer would draw, for the info command.
package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/idfview/pkg/building"
	"github.com/philipparndt/idfview/pkg/geometry"
	"github.com/philipparndt/idfview/pkg/idf"
	"github.com/philipparndt/idfview/pkg/scene"
)

// CollectionStats describes one collection
type CollectionStats struct {
	Name     string
	Polygons int
	Vertices int
}

// EdgeStats contains the polygon edge lengths of a scene
type EdgeStats struct {
	Count int
	Min   float64
	Max   float64
	Avg   float64
}

// Summary contains counts and extents of a scene
type Summary struct {
	// Model details, zero for polygon group input
	Version idf.Version
	Mode    building.Mode
	Zones   int

	Collections []CollectionStats
	BoundingBox geometry.BoundingBox
	Dimensions  geometry.Vector3
	Cube        geometry.Cube
	Edges       EdgeStats
}

// Polygons returns the total number of polygons
func (s *Summary) Polygons() int {
	total := 0
	for _, c := range s.Collections {
		total += c.Polygons
	}
	return total
}

// AnalyzeCollections summarises built collections
func AnalyzeCollections(collections []scene.Collection) (*Summary, error) {
	cube, err := scene.ComputeBounds(scene.CollectionsSource{Collections: collections})
	if err != nil {
		return nil, err
	}

	result := &Summary{
		BoundingBox: geometry.NewBoundingBox(),
		Cube:        cube,
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for _, c := range collections {
		stats := CollectionStats{Name: c.Name, Polygons: c.Len()}
		for _, poly := range c.Polygons {
			stats.Vertices += len(poly)
			for i, p := range poly {
				result.BoundingBox.Extend(p)

				length := p.Sub(poly[(i+1)%len(poly)]).Length()
				totalLength += length
				minLength = math.Min(minLength, length)
				maxLength = math.Max(maxLength, length)
				result.Edges.Count++
			}
		}
		result.Collections = append(result.Collections, stats)
	}

	result.Dimensions = result.BoundingBox.Size()
	if result.Edges.Count > 0 {
		result.Edges.Min = minLength
		result.Edges.Max = maxLength
		result.Edges.Avg = totalLength / float64(result.Edges.Count)
	}

	return result, nil
}

// AnalyzeModel builds the collections of a model and summarises them
func AnalyzeModel(m *idf.Model, palette scene.Palette) (*Summary, error) {
	mode, err := building.CoordinateMode(m)
	if err != nil {
		return nil, err
	}
	zones, err := building.ExtractZones(m)
	if err != nil {
		return nil, err
	}
	collections, err := scene.BuildModel(m, palette, scene.DefaultOpacity)
	if err != nil {
		return nil, err
	}

	result, err := AnalyzeCollections(collections)
	if err != nil {
		return nil, err
	}
	result.Version = m.Version()
	result.Mode = mode
	result.Zones = len(zones)
	return result, nil
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

// FormatRange formats an axis range
func FormatRange(r geometry.Range) string {
	return fmt.Sprintf("[%.3f, %.3f]", r.Low, r.High)
}
