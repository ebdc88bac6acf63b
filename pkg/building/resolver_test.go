package building

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/idfview/pkg/geometry"
)

func v(x, y, z float64) geometry.Vector3 {
	return geometry.NewVector3(x, y, z)
}

var (
	zoneZ1 = Zone{Name: "Z1", Origin: v(10, 0, 0)}
	wallW1 = Surface{Name: "W1", Type: Wall, Zone: "Z1", Vertices: []geometry.Vector3{v(0, 0, 0)}}
	winA   = Surface{Name: "WinA", Type: Window, Host: "W1", Vertices: []geometry.Vector3{v(1, 1, 0)}}
)

func TestResolveWallInRelativeZone(t *testing.T) {
	got, err := Resolve(wallW1, []Surface{wallW1}, []Zone{zoneZ1}, Relative)
	require.NoError(t, err)
	assert.Equal(t, []geometry.Vector3{v(10, 0, 0)}, got)
}

func TestResolveWindowUsesHostOrigin(t *testing.T) {
	surfaces := []Surface{winA, wallW1}

	got, err := Resolve(winA, surfaces, []Zone{zoneZ1}, Relative)
	require.NoError(t, err)
	assert.Equal(t, []geometry.Vector3{v(11, 1, 0)}, got)

	origins, err := NewOrigins(surfaces, []Zone{zoneZ1})
	require.NoError(t, err)
	hostOrigin, err := origins.Origin(wallW1)
	require.NoError(t, err)
	winOrigin, err := origins.Origin(winA)
	require.NoError(t, err)
	assert.Equal(t, hostOrigin, winOrigin)
}

func TestResolveAbsoluteIsIdentity(t *testing.T) {
	wall := Surface{Name: "W5", Type: Wall, Zone: "Z1", Vertices: []geometry.Vector3{v(5, 5, 5)}}

	got, err := Resolve(wall, []Surface{wall}, []Zone{zoneZ1}, Absolute)
	require.NoError(t, err)
	assert.Equal(t, wall.Vertices, got)

	// zone data is irrelevant in absolute mode, even when it is inconsistent
	orphan := Surface{Name: "W6", Type: Wall, Zone: "Missing", Vertices: []geometry.Vector3{v(1, 2, 3)}}
	got, err = Resolve(orphan, nil, nil, Absolute)
	require.NoError(t, err)
	assert.Equal(t, orphan.Vertices, got)
}

func TestResolveWithoutSurfaceList(t *testing.T) {
	got, err := Resolve(wallW1, nil, []Zone{zoneZ1}, Relative)
	require.NoError(t, err)
	assert.Equal(t, []geometry.Vector3{v(10, 0, 0)}, got)
}

func TestResolveIgnoresUnrelatedSurfaces(t *testing.T) {
	stray := Surface{Name: "C9", Type: Wall, Zone: "Elsewhere", Vertices: []geometry.Vector3{v(0, 0, 0)}}

	got, err := Resolve(wallW1, []Surface{stray, wallW1}, []Zone{zoneZ1}, Relative)
	require.NoError(t, err)
	assert.Equal(t, []geometry.Vector3{v(10, 0, 0)}, got)

	got, err = Resolve(winA, []Surface{stray, wallW1}, []Zone{zoneZ1}, Relative)
	require.NoError(t, err)
	assert.Equal(t, []geometry.Vector3{v(11, 1, 0)}, got)
}

func TestResolveWindowHostInUnknownZone(t *testing.T) {
	host := Surface{Name: "W3", Type: Wall, Zone: "Z9", Vertices: []geometry.Vector3{v(0, 0, 0)}}
	win := Surface{Name: "WinC", Type: Window, Host: "w3", Vertices: []geometry.Vector3{v(0, 0, 0)}}

	_, err := Resolve(win, []Surface{host}, []Zone{zoneZ1}, Relative)
	assert.ErrorIs(t, err, ErrUnknownZone)
	assert.Contains(t, err.Error(), `"W3"`)
}

func TestResolveUnknownZone(t *testing.T) {
	wall := Surface{Name: "W2", Type: Wall, Zone: "Nowhere", Vertices: []geometry.Vector3{v(0, 0, 0)}}

	_, err := Resolve(wall, []Surface{wall}, []Zone{zoneZ1}, Relative)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownZone))
	assert.Contains(t, err.Error(), "Nowhere")
}

func TestResolveUnknownHost(t *testing.T) {
	orphan := Surface{Name: "WinB", Type: Window, Host: "Gone", Vertices: []geometry.Vector3{v(0, 0, 0)}}

	_, err := Resolve(orphan, []Surface{wallW1, orphan}, []Zone{zoneZ1}, Relative)
	assert.True(t, errors.Is(err, ErrUnknownSurface))
}

func TestOriginMissingFromTable(t *testing.T) {
	origins, err := NewOrigins([]Surface{wallW1}, []Zone{zoneZ1})
	require.NoError(t, err)

	_, err = origins.Resolve(Surface{Name: "Other", Zone: "Z9"}, Relative)
	assert.True(t, errors.Is(err, ErrUnknownZone))

	_, err = origins.Resolve(Surface{Name: "OtherWin", Type: Window, Host: "X"}, Relative)
	assert.True(t, errors.Is(err, ErrUnknownSurface))
}

func TestResolveIsIdempotent(t *testing.T) {
	surfaces := []Surface{wallW1, winA}
	origins, err := NewOrigins(surfaces, []Zone{zoneZ1})
	require.NoError(t, err)

	first, err := origins.Resolve(winA, Relative)
	require.NoError(t, err)
	second, err := origins.Resolve(winA, Relative)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []geometry.Vector3{v(1, 1, 0)}, winA.Vertices, "input must not be modified")
}

func TestResolveRoundTrip(t *testing.T) {
	zone := Zone{Name: "Office", Origin: v(3.5, -2, 7)}
	wall := Surface{
		Name:     "OfficeWall",
		Type:     Wall,
		Zone:     "office",
		Vertices: []geometry.Vector3{v(0, 0, 3), v(0, 0, 0), v(4, 0, 0), v(4, 0, 3)},
	}

	resolved, err := Resolve(wall, []Surface{wall}, []Zone{zone}, Relative)
	require.NoError(t, err)
	require.Len(t, resolved, len(wall.Vertices))

	for i, p := range resolved {
		assert.Equal(t, wall.Vertices[i], p.Sub(zone.Origin))
	}
}
