package collide2d

import (
	"github.com/briskengine/collide2d/contact"
	"github.com/briskengine/collide2d/geom"
	"github.com/briskengine/collide2d/gjk"
	"github.com/briskengine/collide2d/mink"
	"github.com/briskengine/collide2d/shape"
)

// centroid is the cheap stand-in for "shape bounding-box centre" the GJK
// axis seed needs (SPEC_FULL §4.C, seeding paragraph): the average of a
// shape's world-space vertices.
func centroid(verts []geom.Vector) geom.Vector {
	sum := geom.New(0, 0)
	for _, v := range verts {
		sum = sum.Add(v)
	}
	return sum.Mul(1.0 / float64(len(verts)))
}

// edgeFor resolves the SPEC_FULL §4.E supporting edge of a Segment or
// Polygon shape for normal n.
func edgeFor(s shape.Shape, n geom.Vector) contact.Edge {
	switch v := s.(type) {
	case *shape.SegmentShape:
		return contact.SegmentEdge(v, n)
	case *shape.PolygonShape:
		return contact.PolygonEdge(v, n)
	default:
		panic("collide2d: edgeFor called on a non-vertexed shape")
	}
}

// tangentAllows reports whether a contact landing on hash should be kept,
// given the rejection-tangent filter of SPEC_FULL §4.G applied to segment
// endpoints: a contact at an endpoint with a configured tangent is
// suppressed if the normal points outward past it.
func tangentAllows(s shape.Shape, hash uint32, n geom.Vector) bool {
	seg, ok := s.(*shape.SegmentShape)
	if !ok {
		return true
	}
	if seg.HasTangentA && hash == contact.VertexHash(seg.ID, 0) && seg.TangentA.Dot(n) >= 0 {
		return false
	}
	if seg.HasTangentB && hash == contact.VertexHash(seg.ID, 1) && seg.TangentB.Dot(n) >= 0 {
		return false
	}
	return true
}

// gjkHandler is shared by segment-segment, segment-polygon, and
// polygon-polygon: run GJK (falling into EPA on overlap), then edge-select
// and clip, per SPEC_FULL §4.G's final bullet.
func gjkHandler(a, b shape.Shape, warmStartID uint32) Info {
	va := a.(shape.Vertexed)
	vb := b.(shape.Vertexed)

	ctx := &mink.Context{VertsA: va.WorldVertices(), VertsB: vb.WorldVertices()}
	centerA := centroid(ctx.VertsA)
	centerB := centroid(ctx.VertsB)

	v0, v1 := gjk.Seed(ctx, warmStartID, true, centerA, centerB)
	cp := gjk.Run(ctx, v0, v1, logger)

	combinedRadius := va.ShapeRadius() + vb.ShapeRadius()
	if cp.D > combinedRadius {
		return Info{ID: cp.ID}
	}

	e1 := edgeFor(a, cp.N)
	// b's supporting edge faces back toward a, the opposite of cp.N.
	e2 := edgeFor(b, cp.N.Mul(-1))
	rawPoints := contact.Clip(e1, e2, cp.N, cp.D, a.Body(), b.Body())

	info := Info{N: cp.N, ID: cp.ID}
	for _, p := range rawPoints {
		if info.Count >= MaxContacts {
			break
		}
		if !tangentAllows(a, p.EdgeAHash, cp.N) || !tangentAllows(b, p.EdgeBHash, cp.N) {
			continue
		}
		info.Contacts[info.Count] = Contact{R1: p.R1, R2: p.R2, Dist: p.Dist, Hash: p.Hash}
		info.Count++
	}

	return info
}
