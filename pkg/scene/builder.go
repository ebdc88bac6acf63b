package scene

import (
	"fmt"

	"github.com/philipparndt/idfview/pkg/building"
	"github.com/philipparndt/idfview/pkg/geometry"
	"github.com/philipparndt/idfview/pkg/idf"
)

// BuildByType collects the surfaces of type t into one collection. When
// zones are given in relative mode the vertices are moved into the global
// frame; otherwise local vertices are used as they are. Surfaces without
// vertices are left out.
func BuildByType(t building.SurfaceType, surfaces []building.Surface, zones []building.Zone, mode building.Mode, style Style) (Collection, error) {
	matched := building.GroupByType(surfaces, t)
	collection := Collection{Name: t.String(), Style: style}

	var origins building.Origins
	if len(zones) > 0 && mode == building.Relative {
		var err error
		origins, err = building.NewOrigins(surfaces, zones)
		if err != nil {
			return Collection{}, fmt.Errorf("failed to resolve %s origins: %w", t, err)
		}
	}

	for _, s := range matched {
		points := s.Vertices
		if origins != nil {
			resolved, err := origins.Resolve(s, mode)
			if err != nil {
				return Collection{}, err
			}
			points = resolved
		}
		if len(points) == 0 {
			continue
		}
		collection.Polygons = append(collection.Polygons, points)
	}

	return collection, nil
}

// BuildShading collects shading surfaces, which are always in the global frame.
func BuildShading(shading []building.Surface, style Style) Collection {
	collection := Collection{Name: building.Shading.String(), Style: style}
	for _, s := range shading {
		if len(s.Vertices) == 0 {
			continue
		}
		collection.Polygons = append(collection.Polygons, s.Vertices)
	}
	return collection
}

// BuildFromGroups returns one collection per colour group, in group order.
// The colour name is the collection name and its fill.
func BuildFromGroups(groups PolygonGroups, opacity float64) ([]Collection, error) {
	collections := make([]Collection, 0, len(groups))
	for _, g := range groups {
		style, err := NewStyle(g.Color, opacity)
		if err != nil {
			return nil, err
		}

		c := Collection{Name: g.Color, Style: style}
		for _, p := range g.Polygons {
			c.Polygons = append(c.Polygons, p.Points())
		}
		collections = append(collections, c)
	}
	return collections, nil
}

// modelOrder is the order collections are handed to a renderer.
var modelOrder = []building.SurfaceType{building.Wall, building.Roof, building.Floor, building.Window}

// BuildModel builds the wall, roof, floor, window and shading collections of
// a model.
func BuildModel(m *idf.Model, palette Palette, opacity float64) ([]Collection, error) {
	mode, err := building.CoordinateMode(m)
	if err != nil {
		return nil, err
	}

	surfaces, err := building.ExtractSurfaces(m)
	if err != nil {
		return nil, err
	}

	var zones []building.Zone
	if mode == building.Relative {
		zones, err = building.ExtractZones(m)
		if err != nil {
			return nil, err
		}
	}

	collections := make([]Collection, 0, len(modelOrder)+1)
	for _, t := range modelOrder {
		style, err := palette.Style(t, opacity)
		if err != nil {
			return nil, err
		}
		c, err := BuildByType(t, surfaces, zones, mode, style)
		if err != nil {
			return nil, err
		}
		collections = append(collections, c)
	}

	shading, err := building.ExtractShading(m)
	if err != nil {
		return nil, err
	}
	style, err := palette.Style(building.Shading, opacity)
	if err != nil {
		return nil, err
	}
	collections = append(collections, BuildShading(shading, style))

	return collections, nil
}

// Polygons flattens collections into their point lists.
func Polygons(collections []Collection) [][]geometry.Vector3 {
	var polygons [][]geometry.Vector3
	for _, c := range collections {
		polygons = append(polygons, c.Polygons...)
	}
	return polygons
}
