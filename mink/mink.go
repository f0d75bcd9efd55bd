// Package mink implements the Minkowski-point algebra of SPEC_FULL §4.B: the
// shared vocabulary GJK (package gjk) and EPA (package epa) both operate on,
// kept separate from either so neither imports the other.
//
// A MinkowskiPoint pairs one support point from each shape with their
// difference on the Minkowski difference of the two shapes; GJK and EPA only
// ever manipulate these pairs, never the shapes directly.
package mink

import (
	"github.com/briskengine/collide2d/geom"
	"github.com/briskengine/collide2d/shape"
)

// MinkowskiPoint is a point on the Minkowski difference B - A, carrying the
// two source support points it was built from.
type MinkowskiPoint struct {
	A, B shape.SupportPoint
	AB   geom.Vector
	ID   uint16
}

// NewPoint builds a MinkowskiPoint from a pair of support points. ab is
// computed once here and never recomputed; SPEC_FULL §3 requires ab = b - a
// exactly.
func NewPoint(a, b shape.SupportPoint) MinkowskiPoint {
	return MinkowskiPoint{
		A:  a,
		B:  b,
		AB: b.P.Sub(a.P),
		ID: uint16(a.Index)<<8 | uint16(b.Index),
	}
}

// Context holds the two shapes' world-space vertex buffers GJK/EPA read
// support points from (SPEC_FULL §4.A: only Segment and Polygon ever reach
// this context; Circle is resolved analytically in dispatch before GJK is
// ever invoked).
type Context struct {
	VertsA, VertsB []geom.Vector
}

// Support returns the Minkowski-difference point support(ctx, n) = mk(supA(-n), supB(n))
// per SPEC_FULL §4.B.
func (ctx *Context) Support(n geom.Vector) MinkowskiPoint {
	a := shape.Support(ctx.VertsA, n.Mul(-1))
	b := shape.Support(ctx.VertsB, n)
	return NewPoint(a, b)
}

// ClosestT returns the symmetric barycentric parameter in [-1, 1] of the
// point on segment (a, b) closest to the origin, per SPEC_FULL §4.B.
func ClosestT(a, b geom.Vector) float64 {
	delta := b.Sub(a)
	t := delta.Dot(a.Add(b)) / delta.Dot(delta)
	return -geom.Clamp(t, -1, 1)
}

// LerpT evaluates the symmetric parametrisation of segment (a, b) at t,
// where t = -1 yields a and t = 1 yields b.
func LerpT(a, b geom.Vector, t float64) geom.Vector {
	ht := 0.5 * t
	return a.Mul(0.5 - ht).Add(b.Mul(0.5 + ht))
}

// ClosestDist2 returns the squared distance from the origin to the closest
// point on segment (a, b).
func ClosestDist2(a, b geom.Vector) float64 {
	p := LerpT(a, b, ClosestT(a, b))
	return p.Dot(p)
}

// ClosestPoints is the result of a GJK or EPA pass: the closest world points
// on each shape, the separating/penetration normal, the signed distance
// (negative when penetrating), and a warm-start id packing the two
// terminating Minkowski vertices (SPEC_FULL §3, §4.H).
type ClosestPoints struct {
	PA, PB geom.Vector
	N      geom.Vector
	D      float64
	ID     uint32
}

// PairID packs two MinkowskiPoint ids into the 32-bit warm-start identifier
// of SPEC_FULL §3: id = (v0.id << 16) | v1.id.
func PairID(v0, v1 uint16) uint32 {
	return uint32(v0)<<16 | uint32(v1)
}

// FromSimplex builds the ClosestPoints result for a 1-simplex (v0, v1) that
// GJK has determined is the closest feature to the origin (SPEC_FULL §4.C
// step 1 and step 5).
func FromSimplex(v0, v1 MinkowskiPoint) ClosestPoints {
	t := ClosestT(v0.AB, v1.AB)
	p := LerpT(v0.AB, v1.AB, t)

	pa := LerpT(v0.A.P, v1.A.P, t)
	pb := LerpT(v0.B.P, v1.B.P, t)

	n := geom.SafeNormalize(p, geom.New(1, 0))
	d := p.Len()

	return ClosestPoints{
		PA: pa,
		PB: pb,
		N:  n,
		D:  d,
		ID: PairID(v0.ID, v1.ID),
	}
}
