package building

import (
	"fmt"
	"strings"

	"github.com/philipparndt/idfview/pkg/geometry"
)

// Origins maps upper-cased surface names to the global origin their
// vertices are relative to.
type Origins map[string]geometry.Vector3

// NewOrigins builds the origin table for a relative-mode model in two passes:
// surfaces that belong to a zone first, then windows, which take the origin of
// their host surface.
func NewOrigins(surfaces []Surface, zones []Zone) (Origins, error) {
	zoneOrigins := make(map[string]geometry.Vector3, len(zones))
	for _, z := range zones {
		zoneOrigins[key(z.Name)] = z.Origin
	}

	origins := make(Origins, len(surfaces))
	for _, s := range surfaces {
		if s.Hosted() {
			continue
		}
		origin, ok := zoneOrigins[key(s.Zone)]
		if !ok {
			return nil, fmt.Errorf("surface %q: %w %q", s.Name, ErrUnknownZone, s.Zone)
		}
		origins[key(s.Name)] = origin
	}

	for _, s := range surfaces {
		if !s.Hosted() {
			continue
		}
		origin, ok := origins[key(s.Host)]
		if !ok {
			return nil, fmt.Errorf("window %q: %w %q", s.Name, ErrUnknownSurface, s.Host)
		}
		origins[key(s.Name)] = origin
	}

	return origins, nil
}

// Origin returns the origin recorded for a surface.
func (o Origins) Origin(s Surface) (geometry.Vector3, error) {
	origin, ok := o[key(s.Name)]
	if ok {
		return origin, nil
	}
	if s.Hosted() {
		return geometry.Vector3{}, fmt.Errorf("window %q: %w %q", s.Name, ErrUnknownSurface, s.Host)
	}
	return geometry.Vector3{}, fmt.Errorf("surface %q: %w %q", s.Name, ErrUnknownZone, s.Zone)
}

// Resolve returns a surface's vertices in the global frame. In absolute mode
// they are returned unchanged; in relative mode the surface's origin is added.
// The input surface is never modified.
func (o Origins) Resolve(s Surface, mode Mode) ([]geometry.Vector3, error) {
	resolved := make([]geometry.Vector3, len(s.Vertices))
	if mode == Absolute {
		copy(resolved, s.Vertices)
		return resolved, nil
	}

	origin, err := o.Origin(s)
	if err != nil {
		return nil, err
	}
	for i, v := range s.Vertices {
		resolved[i] = v.Add(origin)
	}
	return resolved, nil
}

// Resolve resolves one surface against a zone set. Only the surface itself
// is looked up: its own zone, or for a window the zone of its host, which
// must be in surfaces. Other entries of surfaces are not checked.
func Resolve(s Surface, surfaces []Surface, zones []Zone, mode Mode) ([]geometry.Vector3, error) {
	if mode == Absolute {
		return Origins(nil).Resolve(s, mode)
	}

	owner := s
	if s.Hosted() {
		host, ok := findHost(s.Host, surfaces)
		if !ok {
			return nil, fmt.Errorf("window %q: %w %q", s.Name, ErrUnknownSurface, s.Host)
		}
		owner = host
	}

	for _, z := range zones {
		if key(z.Name) == key(owner.Zone) {
			return Origins{key(s.Name): z.Origin}.Resolve(s, mode)
		}
	}
	return nil, fmt.Errorf("surface %q: %w %q", owner.Name, ErrUnknownZone, owner.Zone)
}

func findHost(name string, surfaces []Surface) (Surface, bool) {
	for _, s := range surfaces {
		if !s.Hosted() && key(s.Name) == key(name) {
			return s, true
		}
	}
	return Surface{}, false
}

func key(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
