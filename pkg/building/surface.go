// Package building turns IDF records into typed surfaces and zones and
// resolves surface vertices into the model's global frame.
package building

import (
	"strings"

	"github.com/philipparndt/idfview/pkg/geometry"
)

// SurfaceType is the semantic type of a surface. Types the viewer does not
// draw (ceilings, doors, ...) are Other.
type SurfaceType int

const (
	Other SurfaceType = iota
	Wall
	Floor
	Roof
	Window
	Shading
)

var surfaceTypeNames = map[SurfaceType]string{
	Other:   "other",
	Wall:    "wall",
	Floor:   "floor",
	Roof:    "roof",
	Window:  "window",
	Shading: "shading",
}

// ParseSurfaceType normalizes a Surface_Type value, ignoring case.
func ParseSurfaceType(s string) SurfaceType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wall":
		return Wall
	case "floor":
		return Floor
	case "roof":
		return Roof
	case "window":
		return Window
	case "shading":
		return Shading
	default:
		return Other
	}
}

func (t SurfaceType) String() string {
	if name, ok := surfaceTypeNames[t]; ok {
		return name
	}
	return "other"
}

// Mode is the model-wide coordinate system.
type Mode int

const (
	// Absolute vertices are already in the global frame.
	Absolute Mode = iota
	// Relative vertices are offsets from their zone's origin.
	Relative
)

// ParseMode maps a Coordinate_System value to a Mode. Anything other than
// "relative" is absolute.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), "relative") {
		return Relative
	}
	return Absolute
}

func (m Mode) String() string {
	if m == Relative {
		return "relative"
	}
	return "absolute"
}

// Surface is a surface read from the model. Vertices are local to the zone
// in relative mode.
type Surface struct {
	Name     string
	Type     SurfaceType
	Class    string
	Zone     string
	Host     string
	Vertices []geometry.Vector3
}

// Hosted reports whether the surface takes its origin from a host surface
// rather than from a zone.
func (s Surface) Hosted() bool {
	return s.Type == Window || s.Host != ""
}

// Zone is a spatial partition with its origin in the global frame.
type Zone struct {
	Name   string
	Origin geometry.Vector3
}

// GeometryRule carries the GlobalGeometryRules settings.
type GeometryRule struct {
	StartingVertexPosition string
	VertexEntryDirection   string
	CoordinateSystem       string
}

// Mode returns the coordinate system the rule selects.
func (r GeometryRule) Mode() Mode {
	return ParseMode(r.CoordinateSystem)
}
