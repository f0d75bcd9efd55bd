package shape

import "github.com/briskengine/collide2d/geom"

// SupportPoint is a vertex of a convex shape plus the index it came from,
// SPEC_FULL §3. The index is stored as uint8: polygons are assumed to have
// at most 255 vertices, enforced by the caller at construction time.
type SupportPoint struct {
	P     geom.Vector
	Index uint8
}

// SupportIndex returns the index of the vertex in verts that maximizes
// dot(v, n), breaking ties toward the first such vertex (SPEC_FULL §4.A).
func SupportIndex(verts []geom.Vector, n geom.Vector) int {
	best := 0
	bestDot := verts[0].Dot(n)

	for i := 1; i < len(verts); i++ {
		d := verts[i].Dot(n)
		if d > bestDot {
			bestDot = d
			best = i
		}
	}

	return best
}

// Support returns the extreme vertex of verts in direction n as a
// SupportPoint.
func Support(verts []geom.Vector, n geom.Vector) SupportPoint {
	i := SupportIndex(verts, n)
	return SupportPoint{P: verts[i], Index: uint8(i)}
}
