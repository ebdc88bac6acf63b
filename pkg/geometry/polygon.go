package geometry

// Polygon is a planar loop of vertices supplied by a caller rather than read
// from a model.
type Polygon struct {
	Vertices []Vector3
}

// NewPolygon creates a polygon from its vertices
func NewPolygon(vertices ...Vector3) Polygon {
	return Polygon{Vertices: vertices}
}

// Points returns the polygon's vertex list
func (p Polygon) Points() []Vector3 {
	return p.Vertices
}

// Normal returns the unit normal using Newell's method, or the zero vector
// for degenerate loops
func (p Polygon) Normal() Vector3 {
	var n Vector3
	for i, cur := range p.Vertices {
		next := p.Vertices[(i+1)%len(p.Vertices)]
		n.X += (cur.Y - next.Y) * (cur.Z + next.Z)
		n.Y += (cur.Z - next.Z) * (cur.X + next.X)
		n.Z += (cur.X - next.X) * (cur.Y + next.Y)
	}
	return n.Normalize()
}
