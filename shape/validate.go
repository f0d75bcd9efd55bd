package shape

import (
	"fmt"
	"math"

	"github.com/briskengine/collide2d/geom"
)

// minPolygonVertices is the smallest vertex count that can form a convex
// polygon.
const minPolygonVertices = 3

// ValidatePolygon checks the winding and convexity invariants SPEC_FULL §3
// requires of a polygon's data model: vertices counter-clockwise, no
// vertex turning clockwise (collinear vertices are accepted), and every
// half-plane normal actually pointing outward. It is not called on
// the narrow-phase hot path (SPEC_FULL §7 commits every collision query to
// return a valid result in bounded time); it exists for callers
// constructing shapes and for test fixtures to catch a malformed polygon
// before it reaches GJK/EPA.
func ValidatePolygon(p *PolygonShape) error {
	n := len(p.Vertices)
	if n < minPolygonVertices {
		return fmt.Errorf("polygon has %d vertices, need at least %d", n, minPolygonVertices)
	}
	if len(p.Planes) != n {
		return fmt.Errorf("polygon has %d vertices but %d half-planes", n, len(p.Planes))
	}

	var signedArea float64
	for i := 0; i < n; i++ {
		a := p.Vertices[i]
		b := p.Vertices[(i+1)%n]
		signedArea += a.X()*b.Y() - b.X()*a.Y()
	}
	if signedArea <= 0 {
		return fmt.Errorf("polygon vertices are not counter-clockwise (signed area %.6g)", signedArea)
	}

	for i := 0; i < n; i++ {
		a := p.Vertices[i]
		b := p.Vertices[(i+1)%n]
		edge := b.Sub(a)
		c := p.Vertices[(i+2)%n]
		if geom.Cross(edge, c.Sub(b)) < 0 {
			return fmt.Errorf("polygon is not convex at vertex %d", (i+1)%n)
		}
		// For a CCW polygon the outward normal of edge a->b is the edge
		// rotated -90 degrees (clockwise).
		expected := geom.Perp(edge).Mul(-1)
		expected = geom.SafeNormalize(expected, expected)

		stored := p.Planes[i].Normal
		if stored.Dot(expected) < 1-1e-6 || math.Abs(geom.Cross(stored, expected)) > 1e-6 {
			return fmt.Errorf("polygon half-plane %d does not face outward", i)
		}
	}

	return nil
}
