package contact

import (
	"github.com/briskengine/collide2d/geom"
	"github.com/briskengine/collide2d/shape"
)

// Point is one emitted contact: positions relative to each body, signed
// penetration depth (negative when touching or overlapping, per SPEC_FULL
// §3), and a cross-frame-stable hash. EdgeAHash/EdgeBHash record which
// endpoint hash of e1/e2 produced this point, so callers can apply the segment
// tangent-rejection filter of SPEC_FULL §4.G without re-deriving the
// pairing.
type Point struct {
	R1, R2      geom.Vector
	Dist        float64
	Hash        uint32
	EdgeAHash   uint32
	EdgeBHash   uint32
}

// Clip produces 0-2 contact points from two supporting edges and a
// separating/penetration normal n with combined signed distance d
// (SPEC_FULL §4.F). bodyA and bodyB provide the reference positions the
// output points are expressed relative to.
func Clip(e1, e2 Edge, n geom.Vector, d float64, bodyA, bodyB shape.Body) []Point {
	if d > e1.Radius+e2.Radius {
		return nil
	}

	d1a := geom.Cross(e1.A, n)
	d1b := geom.Cross(e1.B, n)
	d2a := geom.Cross(e2.A, n)
	d2b := geom.Cross(e2.B, n)

	e1Denom := 1.0 / (d1b - d1a)
	e2Denom := 1.0 / (d2b - d2a)

	posA, posB := bodyA.Position(), bodyB.Position()

	var points []Point

	// Pairing e1.a <-> e2.b
	{
		t1 := geom.Clamp01((d2b - d1a) * e1Denom)
		t2 := geom.Clamp01((d1a - d2a) * e2Denom)
		r1 := n.Mul(e1.Radius).Add(geom.Lerp(e1.A, e1.B, t1))
		r2 := n.Mul(-e2.Radius).Add(geom.Lerp(e2.A, e2.B, t2))
		dist := r2.Sub(r1).Dot(n)
		if dist <= 0 {
			points = append(points, Point{
				R1:        r1.Sub(posA),
				R2:        r2.Sub(posB),
				Dist:      dist,
				Hash:      PairHash(e1.HashA, e2.HashB),
				EdgeAHash: e1.HashA,
				EdgeBHash: e2.HashB,
			})
		}
	}

	// Pairing e1.b <-> e2.a
	{
		t1 := geom.Clamp01((d2a - d1a) * e1Denom)
		t2 := geom.Clamp01((d1b - d2a) * e2Denom)
		r1 := n.Mul(e1.Radius).Add(geom.Lerp(e1.A, e1.B, t1))
		r2 := n.Mul(-e2.Radius).Add(geom.Lerp(e2.A, e2.B, t2))
		dist := r2.Sub(r1).Dot(n)
		if dist <= 0 {
			points = append(points, Point{
				R1:        r1.Sub(posA),
				R2:        r2.Sub(posB),
				Dist:      dist,
				Hash:      PairHash(e1.HashB, e2.HashA),
				EdgeAHash: e1.HashB,
				EdgeBHash: e2.HashA,
			})
		}
	}

	return points
}
