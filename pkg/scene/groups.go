package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/idfview/pkg/geometry"
)

// Polygon is anything that can list its vertices.
type Polygon interface {
	Points() []geometry.Vector3
}

// PolygonGroup is a set of polygons shown in one colour.
type PolygonGroup struct {
	Color    string
	Polygons []Polygon
}

// PolygonGroups keeps groups in the order they were given.
type PolygonGroups []PolygonGroup

// LoadGroupsFile reads polygon groups from a JSON file.
func LoadGroupsFile(filename string) (PolygonGroups, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return LoadGroups(file)
}

// LoadGroups reads {"colour": [[[x, y, z], ...], ...], ...}, keeping the key order.
func LoadGroups(r io.Reader) (PolygonGroups, error) {
	dec := json.NewDecoder(r)

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var groups PolygonGroups
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to read colour: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected colour name, got %v", tok)
		}

		var raw [][][]float64
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to read polygons for %q: %w", name, err)
		}

		group := PolygonGroup{Color: name}
		for pi, poly := range raw {
			vertices := make([]geometry.Vector3, len(poly))
			for i, p := range poly {
				if len(p) != 3 {
					return nil, fmt.Errorf("polygon %d of %q: point %d has %d coordinates, want 3", pi+1, name, i+1, len(p))
				}
				vertices[i] = geometry.NewVector3(p[0], p[1], p[2])
			}
			group.Polygons = append(group.Polygons, geometry.NewPolygon(vertices...))
		}
		groups = append(groups, group)
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return groups, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read polygon groups: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q in polygon groups, got %v", want, tok)
	}
	return nil
}
