package scene

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/idfview/pkg/geometry"
	"github.com/philipparndt/idfview/pkg/idf"
)

func TestComputeBoundsFromModel(t *testing.T) {
	model, err := idf.ParseString(`
BuildingSurface:Detailed, A, Wall, C, Z1, Outdoors, , , , , 1, 0,0,0;
BuildingSurface:Detailed, B, Wall, C, Z1, Outdoors, , , , , 1, 2,0,0;
BuildingSurface:Detailed, C, Floor, C, Z1, Outdoors, , , , , 1, 0,3,0;
FenestrationSurface:Detailed, D, Window, G, A, , , , , 1, 1, 0,0,1;
`)
	require.NoError(t, err)

	cube, err := ComputeBounds(ModelSource{Model: model})
	require.NoError(t, err)

	expected := geometry.Range{Low: 0, High: 3}
	assert.Equal(t, expected, cube.X)
	assert.Equal(t, expected, cube.Y)
	assert.Equal(t, expected, cube.Z)
}

func TestComputeBoundsAxisIndependence(t *testing.T) {
	collections := []Collection{
		{Polygons: [][]geometry.Vector3{{v(-4, 20, 7)}, {v(-1, 21, 9)}}},
		{Polygons: [][]geometry.Vector3{{v(-3, 22, 8)}}},
	}

	cube, err := ComputeBounds(CollectionsSource{Collections: collections})
	require.NoError(t, err)

	assert.Equal(t, geometry.Range{Low: -4, High: -1}, cube.X)
	assert.Equal(t, geometry.Range{Low: 20, High: 23}, cube.Y)
	assert.Equal(t, geometry.Range{Low: 7, High: 10}, cube.Z)
}

func TestComputeBoundsContainsEveryPoint(t *testing.T) {
	groups := PolygonGroups{
		{Color: "red", Polygons: []Polygon{
			geometry.NewPolygon(v(0.5, -3, 12), v(4, 1, 11), v(2, 7.5, 10)),
		}},
		{Color: "green", Polygons: []Polygon{
			geometry.NewPolygon(v(-6, 0, 10.25), v(1, 1, 1)),
		}},
	}

	cube, err := ComputeBounds(GroupsSource{Groups: groups})
	require.NoError(t, err)

	extent := cube.Extent()
	for axis := 0; axis < 3; axis++ {
		assert.InDelta(t, extent, cube.Axis(axis).Width(), 1e-10)
	}
	for _, g := range groups {
		for _, p := range g.Polygons {
			for _, pt := range p.Points() {
				for axis := 0; axis < 3; axis++ {
					assert.True(t, cube.Axis(axis).Contains(pt.Axis(axis), 1e-10), "axis %d point %v", axis, pt)
				}
			}
		}
	}
}

func TestComputeBoundsEmpty(t *testing.T) {
	_, err := ComputeBounds(CollectionsSource{})
	assert.True(t, errors.Is(err, ErrEmptyGeometry))

	_, err = ComputeBounds(GroupsSource{Groups: PolygonGroups{{Color: "red"}}})
	assert.True(t, errors.Is(err, ErrEmptyGeometry))

	model, err := idf.ParseString("Zone, Z1;")
	require.NoError(t, err)
	_, err = ComputeBounds(ModelSource{Model: model})
	assert.True(t, errors.Is(err, ErrEmptyGeometry))
}

func TestLoadGroupsKeepsOrder(t *testing.T) {
	groups, err := LoadGroups(strings.NewReader(`{
		"red":  [[[0, 0, 0], [1, 0, 0], [1, 1, 0]]],
		"blue": [[[0, 0, 1], [1, 0, 1], [1, 1, 1]], [[2, 2, 2], [3, 2, 2], [3, 3, 2]]],
		"green": []
	}`))
	require.NoError(t, err)
	require.Len(t, groups, 3)

	assert.Equal(t, "red", groups[0].Color)
	assert.Equal(t, "blue", groups[1].Color)
	assert.Len(t, groups[1].Polygons, 2)
	assert.Equal(t, v(3, 3, 2), groups[1].Polygons[1].Points()[2])
	assert.Empty(t, groups[2].Polygons)
}

func TestLoadGroupsErrors(t *testing.T) {
	for _, in := range []string{
		`[]`,
		`{"red": [[[0, 0]]]`,
		`{"red": "nope"}`,
		``,
	} {
		_, err := LoadGroups(strings.NewReader(in))
		assert.Error(t, err, in)
	}
}

func TestLoadGroupsRejectsMalformedPoints(t *testing.T) {
	for _, in := range []string{
		`{"red": [[[1, 2], [4, 5, 6]]]}`,
		`{"red": [[[1, 2, 3], [4, 5, 6, 7]]]}`,
		`{"blue": [[[0, 0, 0]]], "red": [[[]]]}`,
	} {
		groups, err := LoadGroups(strings.NewReader(in))
		require.Error(t, err, in)
		assert.Nil(t, groups)
		assert.Contains(t, err.Error(), `"red"`)
	}
}
