package contact

import (
	"github.com/briskengine/collide2d/geom"
	"github.com/briskengine/collide2d/shape"
)

// PolygonEdge returns the edge of p most nearly parallel to perp(n),
// SPEC_FULL §4.E: the support vertex i1 has two adjacent edges (i0->i1 and
// i1->i2); the one whose outward normal agrees more with n is returned.
func PolygonEdge(p *shape.PolygonShape, n geom.Vector) Edge {
	verts := p.Vertices
	count := len(verts)

	i1 := shape.SupportIndex(verts, n)
	i0 := (i1 - 1 + count) % count
	i2 := (i1 + 1) % count

	prevNormal := p.Planes[i0].Normal
	nextNormal := p.Planes[i1].Normal

	if prevNormal.Dot(n) > nextNormal.Dot(n) {
		return Edge{
			A: verts[i0], B: verts[i1],
			HashA: VertexHash(p.ID, uint8(i0)), HashB: VertexHash(p.ID, uint8(i1)),
			Normal: prevNormal, Radius: p.Radius,
		}
	}
	return Edge{
		A: verts[i1], B: verts[i2],
		HashA: VertexHash(p.ID, uint8(i1)), HashB: VertexHash(p.ID, uint8(i2)),
		Normal: nextNormal, Radius: p.Radius,
	}
}

// SegmentEdge returns the segment's endpoints oriented so the edge's
// normal faces toward n, negating both if the segment's own stored normal
// opposes it (SPEC_FULL §4.E).
func SegmentEdge(s *shape.SegmentShape, n geom.Vector) Edge {
	if s.Normal.Dot(n) > 0 {
		return Edge{
			A: s.A, B: s.B,
			HashA: VertexHash(s.ID, 0), HashB: VertexHash(s.ID, 1),
			Normal: s.Normal, Radius: s.Radius,
		}
	}
	return Edge{
		A: s.B, B: s.A,
		HashA: VertexHash(s.ID, 1), HashB: VertexHash(s.ID, 0),
		Normal: s.Normal.Mul(-1), Radius: s.Radius,
	}
}
