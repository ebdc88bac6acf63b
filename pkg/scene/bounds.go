package scene

import (
	"errors"

	"github.com/philipparndt/idfview/pkg/building"
	"github.com/philipparndt/idfview/pkg/geometry"
	"github.com/philipparndt/idfview/pkg/idf"
)

// Source is the geometry bounds are computed over. It is one of
// ModelSource, GroupsSource or CollectionsSource.
type Source interface {
	polygons() ([][]geometry.Vector3, error)
}

// ModelSource fits bounds to the raw vertices of a model's building and
// fenestration surfaces.
type ModelSource struct {
	Model *idf.Model
}

func (s ModelSource) polygons() ([][]geometry.Vector3, error) {
	surfaces, err := building.ExtractSurfaces(s.Model)
	if err != nil {
		return nil, err
	}
	out := make([][]geometry.Vector3, 0, len(surfaces))
	for _, surface := range surfaces {
		out = append(out, surface.Vertices)
	}
	return out, nil
}

// GroupsSource fits bounds to caller-supplied polygon groups.
type GroupsSource struct {
	Groups PolygonGroups
}

func (s GroupsSource) polygons() ([][]geometry.Vector3, error) {
	var out [][]geometry.Vector3
	for _, g := range s.Groups {
		for _, p := range g.Polygons {
			out = append(out, p.Points())
		}
	}
	return out, nil
}

// CollectionsSource fits bounds to already built collections.
type CollectionsSource struct {
	Collections []Collection
}

func (s CollectionsSource) polygons() ([][]geometry.Vector3, error) {
	return Polygons(s.Collections), nil
}

// ComputeBounds returns the cube that contains every point of src.
func ComputeBounds(src Source) (geometry.Cube, error) {
	polygons, err := src.polygons()
	if err != nil {
		return geometry.Cube{}, err
	}

	cube, err := geometry.CubeAround(polygons...)
	if errors.Is(err, geometry.ErrNoPoints) {
		return geometry.Cube{}, ErrEmptyGeometry
	}
	return cube, err
}
