package scene

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/idfview/pkg/building"
	"github.com/philipparndt/idfview/pkg/geometry"
	"github.com/philipparndt/idfview/pkg/idf"
)

func v(x, y, z float64) geometry.Vector3 {
	return geometry.NewVector3(x, y, z)
}

const relativeIDF = `
Version,8.9;
GlobalGeometryRules, UpperLeftCorner, Counterclockwise, Relative;
Zone, Z1, 0, 10, 0, 0;
BuildingSurface:Detailed, W1, Wall, C, Z1, Outdoors, , , , , 4,
  0,0,0, 5,0,0, 5,0,3, 0,0,3;
BuildingSurface:Detailed, Empty, Wall, C, Z1, Outdoors, , , , , 0;
BuildingSurface:Detailed, F1, Floor, C, Z1, Ground, , , , , 3,
  0,0,0, 5,0,0, 5,5,0;
BuildingSurface:Detailed, R1, Roof, C, Z1, Outdoors, , , , , 3,
  0,0,3, 5,0,3, 5,5,3;
FenestrationSurface:Detailed, WinA, Window, G, W1, , , , , 1, 3,
  1,1,0, 2,1,0, 2,1,1;
Shading:Zone:Detailed, S1, W1, , 3, 0,-1,3, 5,-1,3, 5,-2,3;
`

func mustStyle(t *testing.T, fill string) Style {
	t.Helper()
	style, err := NewStyle(fill, DefaultOpacity)
	require.NoError(t, err)
	return style
}

func TestBuildByTypeResolvesAndDropsEmpty(t *testing.T) {
	surfaces := []building.Surface{
		{Name: "W1", Type: building.Wall, Zone: "Z1", Vertices: []geometry.Vector3{v(0, 0, 0)}},
		{Name: "W2", Type: building.Wall, Zone: "Z1"},
		{Name: "F1", Type: building.Floor, Zone: "Z1", Vertices: []geometry.Vector3{v(1, 1, 0)}},
		{Name: "WinA", Type: building.Window, Host: "W1", Vertices: []geometry.Vector3{v(1, 1, 0)}},
	}
	zones := []building.Zone{{Name: "Z1", Origin: v(10, 0, 0)}}
	style := mustStyle(t, "lightyellow")

	walls, err := BuildByType(building.Wall, surfaces, zones, building.Relative, style)
	require.NoError(t, err)
	assert.Equal(t, "wall", walls.Name)
	assert.Equal(t, [][]geometry.Vector3{{v(10, 0, 0)}}, walls.Polygons)
	assert.Equal(t, style, walls.Style)

	windows, err := BuildByType(building.Window, surfaces, zones, building.Relative, style)
	require.NoError(t, err)
	assert.Equal(t, [][]geometry.Vector3{{v(11, 1, 0)}}, windows.Polygons)

	again, err := BuildByType(building.Wall, surfaces, zones, building.Relative, style)
	require.NoError(t, err)
	assert.Equal(t, walls, again)
	for _, poly := range again.Polygons {
		assert.NotEmpty(t, poly)
	}

	assert.Equal(t, []geometry.Vector3{v(0, 0, 0)}, surfaces[0].Vertices)
}

func TestBuildByTypeWithoutZonesUsesLocalVertices(t *testing.T) {
	surfaces := []building.Surface{
		{Name: "W1", Type: building.Wall, Zone: "Missing", Vertices: []geometry.Vector3{v(5, 5, 5)}},
	}

	walls, err := BuildByType(building.Wall, surfaces, nil, building.Absolute, mustStyle(t, "lightyellow"))
	require.NoError(t, err)
	assert.Equal(t, [][]geometry.Vector3{{v(5, 5, 5)}}, walls.Polygons)
}

func TestBuildByTypeUnknownZone(t *testing.T) {
	surfaces := []building.Surface{
		{Name: "W1", Type: building.Wall, Zone: "Nowhere", Vertices: []geometry.Vector3{v(0, 0, 0)}},
	}
	zones := []building.Zone{{Name: "Z1"}}

	_, err := BuildByType(building.Wall, surfaces, zones, building.Relative, mustStyle(t, "lightyellow"))
	assert.True(t, errors.Is(err, building.ErrUnknownZone))
}

func TestBuildShading(t *testing.T) {
	shading := []building.Surface{
		{Name: "S1", Type: building.Shading, Vertices: []geometry.Vector3{v(1, 2, 3)}},
		{Name: "S2", Type: building.Shading},
	}

	c := BuildShading(shading, mustStyle(t, "darkolivegreen"))
	assert.Equal(t, "shading", c.Name)
	assert.Equal(t, [][]geometry.Vector3{{v(1, 2, 3)}}, c.Polygons)
}

func TestBuildModel(t *testing.T) {
	model, err := idf.ParseString(relativeIDF)
	require.NoError(t, err)

	collections, err := BuildModel(model, DefaultPalette, 0.5)
	require.NoError(t, err)

	names := make([]string, 0, len(collections))
	for _, c := range collections {
		names = append(names, c.Name)
		assert.Equal(t, 0.5, c.Style.Opacity)
		assert.Equal(t, color.RGBA{A: 0xff}, c.Style.Edge)
	}
	assert.Equal(t, []string{"wall", "roof", "floor", "window", "shading"}, names)

	walls := collections[0]
	require.Equal(t, 1, walls.Len(), "empty wall must be dropped")
	assert.Equal(t, v(10, 0, 0), walls.Polygons[0][0])
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xe0, A: 0xff}, walls.Style.Fill)

	windows := collections[3]
	assert.Equal(t, v(11, 1, 0), windows.Polygons[0][0])

	shading := collections[4]
	assert.Equal(t, v(0, -1, 3), shading.Polygons[0][0], "shading is never moved")
}

func TestBuildModelAbsoluteIgnoresZones(t *testing.T) {
	model, err := idf.ParseString(`
GlobalGeometryRules, UpperLeftCorner, Counterclockwise, World;
Zone, Z1, 0, 100, 100, 100;
BuildingSurface:Detailed, W1, Wall, C, Z1, Outdoors, , , , , 3, 5,5,5, 6,5,5, 6,5,6;
`)
	require.NoError(t, err)

	collections, err := BuildModel(model, DefaultPalette, 1)
	require.NoError(t, err)
	assert.Equal(t, v(5, 5, 5), collections[0].Polygons[0][0])
}

func TestBuildModelRequiresRule(t *testing.T) {
	model, err := idf.ParseString(`Zone, Z1;`)
	require.NoError(t, err)

	_, err = BuildModel(model, DefaultPalette, 1)
	var cfgErr *building.ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestBuildFromGroups(t *testing.T) {
	groups := PolygonGroups{
		{Color: "red", Polygons: []Polygon{geometry.NewPolygon(v(0, 0, 0), v(1, 0, 0), v(1, 1, 0))}},
		{Color: "blue", Polygons: []Polygon{geometry.NewPolygon(v(0, 0, 1))}},
	}

	collections, err := BuildFromGroups(groups, 0.25)
	require.NoError(t, err)
	require.Len(t, collections, 2)

	assert.Equal(t, "red", collections[0].Name)
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, collections[0].Style.Fill)
	assert.Equal(t, color.RGBA{A: 0xff}, collections[0].Style.Edge)
	assert.Equal(t, 0.25, collections[0].Style.Opacity)
	assert.Len(t, collections[0].Polygons[0], 3)
	assert.Equal(t, "blue", collections[1].Name)

	_, err = BuildFromGroups(PolygonGroups{{Color: "notacolour"}}, 1)
	assert.True(t, errors.Is(err, ErrUnknownColor))
}

func TestNamedColor(t *testing.T) {
	c, err := NamedColor("CornflowerBlue")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x64, G: 0x95, B: 0xed, A: 0xff}, c)

	c, err = NamedColor("#102030")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, c)

	_, err = NamedColor("#12")
	assert.Error(t, err)
}
