package collide2d

import (
	"github.com/briskengine/collide2d/contact"
	"github.com/briskengine/collide2d/geom"
	"github.com/briskengine/collide2d/shape"
)

// circleCircle is the closed-form solution for two circles (SPEC_FULL
// §4.G). It is also the building block circle-segment and circle-polygon
// delegate to once they have reduced to a circle-vs-circle test against a
// projected point.
func circleCircle(centerA geom.Vector, radiusA float64, hashA uint32, posA geom.Vector,
	centerB geom.Vector, radiusB float64, hashB uint32, posB geom.Vector) Info {

	delta := centerB.Sub(centerA)
	combined := radiusA + radiusB
	distLen := delta.Len()

	if distLen >= combined {
		return Info{}
	}

	n := geom.SafeNormalize(delta, geom.New(1, 0))
	t := radiusA / combined
	point := centerA.Add(delta.Mul(t))

	c := Contact{
		R1:   point.Sub(posA),
		R2:   point.Sub(posB),
		Dist: distLen - combined,
		Hash: contact.PairHash(hashA, hashB),
	}

	return Info{N: n, Count: 1, Contacts: [MaxContacts]Contact{c}}
}

// circleCircleHandler adapts circleCircle to the pairHandler signature for
// the dispatch table.
func circleCircleHandler(a, b shape.Shape, _ uint32) Info {
	ca := a.(*shape.CircleShape)
	cb := b.(*shape.CircleShape)
	return circleCircle(ca.Center, ca.Radius, ca.HashID(), ca.Body().Position(),
		cb.Center, cb.Radius, cb.HashID(), cb.Body().Position())
}

// circleSegmentHandler projects the circle center onto the segment, clamped
// to [0,1], then delegates to circleCircle against that point as a
// degenerate circle of the segment's radius. A contact that lands on an
// endpoint with a configured rejection tangent is suppressed if the normal
// points outward past the tangent, enabling one-way ground segments
// (SPEC_FULL §4.G).
func circleSegmentHandler(a, b shape.Shape, _ uint32) Info {
	c := a.(*shape.CircleShape)
	s := b.(*shape.SegmentShape)

	ab := s.B.Sub(s.A)
	rawT := c.Center.Sub(s.A).Dot(ab) / ab.Dot(ab)
	clampedT := geom.Clamp01(rawT)
	closest := geom.Lerp(s.A, s.B, clampedT)

	info := circleCircle(c.Center, c.Radius, c.HashID(), c.Body().Position(),
		closest, s.Radius, s.HashID(), s.Body().Position())

	if info.Count == 0 {
		return info
	}

	if rawT <= 0 && s.HasTangentA && s.TangentA.Dot(info.N) >= 0 {
		return Info{}
	}
	if rawT >= 1 && s.HasTangentB && s.TangentB.Dot(info.N) >= 0 {
		return Info{}
	}

	return info
}

// circlePolygonHandler finds the polygon edge whose half-plane the circle
// center most deeply violates, then resolves against that edge's nearest
// feature: a vertex (delegating to circleCircle) or the edge interior
// (a direct penetration formula), per SPEC_FULL §4.G.
func circlePolygonHandler(a, b shape.Shape, _ uint32) Info {
	c := a.(*shape.CircleShape)
	p := b.(*shape.PolygonShape)

	bestIdx := 0
	bestDist := p.Planes[0].Distance(c.Center)
	for i := 1; i < len(p.Planes); i++ {
		d := p.Planes[i].Distance(c.Center)
		if d > bestDist {
			bestDist = d
			bestIdx = i
		}
	}

	if bestDist > c.Radius {
		return Info{}
	}

	n := p.Planes[bestIdx].Normal
	count := len(p.Vertices)
	va := p.Vertices[bestIdx]
	vb := p.Vertices[(bestIdx+1)%count]

	edge := vb.Sub(va)
	rawT := c.Center.Sub(va).Dot(edge) / edge.Dot(edge)

	if rawT <= 0 {
		return circleCircle(c.Center, c.Radius, c.HashID(), c.Body().Position(),
			va, 0, contact.VertexHash(p.ID, uint8(bestIdx)), p.Body().Position())
	}
	if rawT >= 1 {
		nextIdx := (bestIdx + 1) % count
		return circleCircle(c.Center, c.Radius, c.HashID(), c.Body().Position(),
			vb, 0, contact.VertexHash(p.ID, uint8(nextIdx)), p.Body().Position())
	}

	penetration := c.Radius - bestDist
	point := c.Center.Sub(n.Mul(c.Radius + penetration/2))
	outward := n.Mul(-1)

	ct := Contact{
		R1:   point.Sub(c.Body().Position()),
		R2:   point.Sub(p.Body().Position()),
		Dist: bestDist - c.Radius,
		Hash: contact.PairHash(c.HashID(), contact.VertexHash(p.ID, uint8(bestIdx))),
	}

	return Info{N: outward, Count: 1, Contacts: [MaxContacts]Contact{ct}}
}
