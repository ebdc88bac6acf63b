package building

import (
	"fmt"

	"github.com/philipparndt/idfview/pkg/geometry"
	"github.com/philipparndt/idfview/pkg/idf"
)

var (
	surfaceClasses = []string{idf.ClassBuildingSurface, idf.ClassFenestration}
	shadingClasses = []string{idf.ClassShadingZone, idf.ClassShadingSite, idf.ClassShadingBuilding}
)

// ExtractRules returns every GlobalGeometryRules record.
func ExtractRules(m *idf.Model) []GeometryRule {
	objects := m.Objects(idf.ClassGlobalGeometryRules)
	rules := make([]GeometryRule, 0, len(objects))
	for _, o := range objects {
		rules = append(rules, GeometryRule{
			StartingVertexPosition: o.Field("Starting_Vertex_Position"),
			VertexEntryDirection:   o.Field("Vertex_Entry_Direction"),
			CoordinateSystem:       o.Field("Coordinate_System"),
		})
	}
	return rules
}

// ModeOf returns the mode set by the single rule in rules.
func ModeOf(rules []GeometryRule) (Mode, error) {
	switch len(rules) {
	case 0:
		return Absolute, &ConfigurationError{Reason: ErrMissingRule}
	case 1:
		return rules[0].Mode(), nil
	default:
		return Absolute, &ConfigurationError{Reason: ErrAmbiguousRule, Count: len(rules)}
	}
}

// CoordinateMode returns the coordinate system of a model.
func CoordinateMode(m *idf.Model) (Mode, error) {
	return ModeOf(ExtractRules(m))
}

// ExtractZones returns every Zone record.
func ExtractZones(m *idf.Model) ([]Zone, error) {
	objects := m.Objects(idf.ClassZone)
	zones := make([]Zone, 0, len(objects))
	for _, o := range objects {
		var xyz [3]float64
		for i, field := range []string{"X_Origin", "Y_Origin", "Z_Origin"} {
			v, err := o.Float(field)
			if err != nil {
				return nil, err
			}
			xyz[i] = v
		}
		zones = append(zones, Zone{Name: o.Name(), Origin: geometry.NewVector3(xyz[0], xyz[1], xyz[2])})
	}
	return zones, nil
}

// ExtractSurfaces returns building surfaces followed by fenestration
// surfaces, each in input order.
func ExtractSurfaces(m *idf.Model) ([]Surface, error) {
	return extract(m, surfaceClasses)
}

// ExtractShading returns the detailed shading surfaces.
func ExtractShading(m *idf.Model) ([]Surface, error) {
	return extract(m, shadingClasses)
}

func extract(m *idf.Model, classes []string) ([]Surface, error) {
	var surfaces []Surface
	for _, class := range classes {
		for _, o := range m.Objects(class) {
			s, err := surfaceFrom(o)
			if err != nil {
				return nil, err
			}
			surfaces = append(surfaces, s)
		}
	}
	return surfaces, nil
}

func surfaceFrom(o idf.Object) (Surface, error) {
	vertices, err := idf.Coords(o)
	if err != nil {
		return Surface{}, fmt.Errorf("failed to read vertices: %w", err)
	}

	s := Surface{
		Name:     o.Name(),
		Class:    o.Class,
		Vertices: vertices,
	}

	switch {
	case o.Is(idf.ClassFenestration):
		s.Type = ParseSurfaceType(o.Field("Surface_Type"))
		s.Host = o.Field("Building_Surface_Name")
	case o.Is(idf.ClassShadingZone), o.Is(idf.ClassShadingSite), o.Is(idf.ClassShadingBuilding):
		s.Type = Shading
	default:
		s.Type = ParseSurfaceType(o.Field("Surface_Type"))
		s.Zone = o.Field("Zone_Name")
	}
	return s, nil
}

// GroupByType returns the surfaces of type t in their original order.
func GroupByType(surfaces []Surface, t SurfaceType) []Surface {
	var matched []Surface
	for _, s := range surfaces {
		if s.Type == t {
			matched = append(matched, s)
		}
	}
	return matched
}
