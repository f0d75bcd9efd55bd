// Package contact implements edge selection (SPEC_FULL §4.E) and contact
// clipping (SPEC_FULL §4.F): given the closest-points result from gjk/epa,
// pick each shape's supporting edge for the separating normal and clip the
// two edges against each other to produce the final 0-2 contact points.
//
// Neither operation has a direct analog in the teacher repo; both are
// grounded directly on the original source's SupportEdgeForPoly,
// SupportEdgeForSegment, and ContactPoints.
package contact

import "github.com/briskengine/collide2d/geom"

// hashCoef is the odd multiplicative constant the original source uses to
// combine two endpoint hashes into one contact hash; any sufficiently
// mixing odd constant works, but this is the one the source ships with.
const hashCoef = 3344921057

// PairHash combines two hashes into one stable across frames, used both to
// assign a per-vertex hash to a shape (VertexHash) and to combine two
// endpoint hashes into a contact hash.
func PairHash(a, b uint32) uint32 {
	return a*hashCoef ^ b*hashCoef
}

// VertexHash derives a stable per-vertex hash from a shape's id and one of
// its vertex indices (SPEC_FULL §4.E).
func VertexHash(shapeID uint32, index uint8) uint32 {
	return PairHash(shapeID, uint32(index))
}

// Edge is a shape's supporting edge for a given normal: two endpoints with
// their stable hashes, the edge's own outward normal, and the shape's
// radius (SPEC_FULL §3).
type Edge struct {
	A, B       geom.Vector
	HashA, HashB uint32
	Normal     geom.Vector
	Radius     float64
}
