package idf

import "strings"

// Class names used by the viewer, upper-cased as stored in a Model.
const (
	ClassVersion             = "VERSION"
	ClassGlobalGeometryRules = "GLOBALGEOMETRYRULES"
	ClassZone                = "ZONE"
	ClassBuildingSurface     = "BUILDINGSURFACE:DETAILED"
	ClassFenestration        = "FENESTRATIONSURFACE:DETAILED"
	ClassShadingZone         = "SHADING:ZONE:DETAILED"
	ClassShadingSite         = "SHADING:SITE:DETAILED"
	ClassShadingBuilding     = "SHADING:BUILDING:DETAILED"
)

// schema names the leading fields of a class. Classes with vertices list
// their x,y,z triples after the named fields.
type schema struct {
	fields   []string
	vertices bool
	index    map[string]int
}

func newSchema(vertices bool, fields ...string) *schema {
	s := &schema{fields: fields, vertices: vertices, index: make(map[string]int, len(fields))}
	for i, f := range fields {
		s.index[strings.ToLower(f)] = i
	}
	return s
}

func (s *schema) lookup(name string) (int, bool) {
	i, ok := s.index[strings.ToLower(name)]
	return i, ok
}

var (
	versionSchema = newSchema(false, "Version_Identifier")

	rulesSchema = newSchema(false,
		"Starting_Vertex_Position",
		"Vertex_Entry_Direction",
		"Coordinate_System",
		"Daylighting_Reference_Point_Coordinate_System",
		"Rectangular_Surface_Coordinate_System",
	)

	zoneSchema = newSchema(false,
		"Name",
		"Direction_of_Relative_North",
		"X_Origin",
		"Y_Origin",
		"Z_Origin",
		"Type",
		"Multiplier",
		"Ceiling_Height",
		"Volume",
		"Floor_Area",
		"Zone_Inside_Convection_Algorithm",
		"Zone_Outside_Convection_Algorithm",
		"Part_of_Total_Floor_Area",
	)

	shadingZoneSchema = newSchema(true,
		"Name",
		"Base_Surface_Name",
		"Transmittance_Schedule_Name",
		"Number_of_Vertices",
	)

	shadingSiteSchema = newSchema(true,
		"Name",
		"Transmittance_Schedule_Name",
		"Number_of_Vertices",
	)
)

func buildingSurfaceSchema(v Version) *schema {
	fields := []string{"Name", "Surface_Type", "Construction_Name", "Zone_Name"}
	if !v.Before(9, 6) {
		fields = append(fields, "Space_Name")
	}
	fields = append(fields,
		"Outside_Boundary_Condition",
		"Outside_Boundary_Condition_Object",
		"Sun_Exposure",
		"Wind_Exposure",
		"View_Factor_to_Ground",
		"Number_of_Vertices",
	)
	return newSchema(true, fields...)
}

func fenestrationSchema(v Version) *schema {
	fields := []string{
		"Name",
		"Surface_Type",
		"Construction_Name",
		"Building_Surface_Name",
		"Outside_Boundary_Condition_Object",
		"View_Factor_to_Ground",
	}
	if v.Before(9, 0) {
		fields = append(fields, "Shading_Control_Name")
	}
	fields = append(fields, "Frame_and_Divider_Name", "Multiplier", "Number_of_Vertices")
	return newSchema(true, fields...)
}

// schemasFor returns the field layouts that apply to a model of version v.
func schemasFor(v Version) map[string]*schema {
	return map[string]*schema{
		ClassVersion:             versionSchema,
		ClassGlobalGeometryRules: rulesSchema,
		ClassZone:                zoneSchema,
		ClassBuildingSurface:     buildingSurfaceSchema(v),
		ClassFenestration:        fenestrationSchema(v),
		ClassShadingZone:         shadingZoneSchema,
		ClassShadingSite:         shadingSiteSchema,
		ClassShadingBuilding:     shadingSiteSchema,
	}
}
