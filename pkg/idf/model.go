package idf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/philipparndt/idfview/pkg/geometry"
)

// Version is the EnergyPlus version an IDF declares.
type Version struct {
	Major, Minor int
}

// DefaultVersion is assumed when a model has no Version object.
var DefaultVersion = Version{Major: 8, Minor: 9}

// Before reports whether v is older than major.minor.
func (v Version) Before(major, minor int) bool {
	if v.Major != major {
		return v.Major < major
	}
	return v.Minor < minor
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// ParseVersion reads identifiers such as "9.6" or "22.1.0".
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) < 2 {
		return Version{}, fmt.Errorf("invalid version identifier %q", s)
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return Version{}, fmt.Errorf("invalid version identifier %q: %w", s, err)
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return Version{}, fmt.Errorf("invalid version identifier %q: %w", s, err)
	}
	return Version{Major: major, Minor: minor}, nil
}

// Object is a single IDF record. Fields excludes the class name.
type Object struct {
	Class  string
	Fields []string
	Line   int

	schema *schema
}

// Field returns a named field. Trailing fields omitted in the file read as "".
func (o Object) Field(name string) string {
	if o.schema == nil {
		return ""
	}
	i, ok := o.schema.lookup(name)
	if !ok || i >= len(o.Fields) {
		return ""
	}
	return o.Fields[i]
}

// Float parses a numeric field. Blank fields default to zero.
func (o Object) Float(name string) (float64, error) {
	raw := o.Field(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q line %d: field %s: %w", o.Class, o.Name(), o.Line, name, err)
	}
	return v, nil
}

// Is reports whether the object belongs to class, ignoring case.
func (o Object) Is(class string) bool {
	return strings.EqualFold(o.Class, class)
}

// Name returns the Name field, if the class has one.
func (o Object) Name() string {
	return o.Field("Name")
}

// Model is the record set of one IDF file, addressable by class name.
type Model struct {
	version Version
	objects []Object
	byClass map[string][]int
}

func newModel() *Model {
	return &Model{version: DefaultVersion, byClass: make(map[string][]int)}
}

func (m *Model) add(obj Object) {
	key := strings.ToUpper(obj.Class)
	m.byClass[key] = append(m.byClass[key], len(m.objects))
	m.objects = append(m.objects, obj)
}

// bind attaches the field layouts matching the model's version.
func (m *Model) bind() error {
	if idx := m.byClass[ClassVersion]; len(idx) > 0 && len(m.objects[idx[0]].Fields) > 0 {
		v, err := ParseVersion(m.objects[idx[0]].Fields[0])
		if err != nil {
			return err
		}
		m.version = v
	}

	schemas := schemasFor(m.version)
	for i := range m.objects {
		m.objects[i].schema = schemas[strings.ToUpper(m.objects[i].Class)]
	}
	return nil
}

// Version returns the declared EnergyPlus version or DefaultVersion.
func (m *Model) Version() Version {
	return m.version
}

// Objects returns all records of a class in input order.
func (m *Model) Objects(class string) []Object {
	idx := m.byClass[strings.ToUpper(class)]
	out := make([]Object, 0, len(idx))
	for _, i := range idx {
		out = append(out, m.objects[i])
	}
	return out
}

// Len returns the number of records in the model.
func (m *Model) Len() int {
	return len(m.objects)
}

// Coords returns an object's vertices in the order they are listed.
func Coords(o Object) ([]geometry.Vector3, error) {
	if o.schema == nil || !o.schema.vertices {
		return nil, fmt.Errorf("%s has no vertex fields", o.Class)
	}

	start := len(o.schema.fields)
	if start >= len(o.Fields) {
		return nil, nil
	}
	values := o.Fields[start:]
	for len(values) > 0 && values[len(values)-1] == "" {
		values = values[:len(values)-1]
	}

	if n, err := strconv.Atoi(o.Field("Number_of_Vertices")); err == nil && n > 0 {
		if len(values) < n*3 {
			return nil, fmt.Errorf("%s %q line %d: expected %d vertices, found %d values",
				o.Class, o.Name(), o.Line, n, len(values))
		}
		values = values[:n*3]
	}

	if len(values)%3 != 0 {
		return nil, fmt.Errorf("%s %q line %d: %d coordinate values is not a multiple of 3",
			o.Class, o.Name(), o.Line, len(values))
	}

	vertices := make([]geometry.Vector3, 0, len(values)/3)
	for i := 0; i < len(values); i += 3 {
		var xyz [3]float64
		for j := 0; j < 3; j++ {
			v, err := strconv.ParseFloat(values[i+j], 64)
			if err != nil {
				return nil, fmt.Errorf("%s %q line %d: vertex %d: %w", o.Class, o.Name(), o.Line, i/3+1, err)
			}
			xyz[j] = v
		}
		vertices = append(vertices, geometry.NewVector3(xyz[0], xyz[1], xyz[2]))
	}
	return vertices, nil
}
