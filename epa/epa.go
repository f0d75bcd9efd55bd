// Package epa implements the penetration-depth iterator of SPEC_FULL §4.D:
// given a triangle of Minkowski points already known to enclose the origin,
// expand it into the true boundary of the Minkowski difference and report
// the minimum-separating-axis normal and depth.
//
// The hull is grown in an explicit bounded loop rather than the tail
// recursion of the original source (SPEC_FULL §9), using a pooled scratch
// slice in the style of the teacher's polytope builder to avoid a fresh
// allocation on every call.
package epa

import (
	"log/slog"
	"sync"

	"github.com/briskengine/collide2d/geom"
	"github.com/briskengine/collide2d/mink"
)

// MaxIterations bounds EPA's hull-expansion loop (SPEC_FULL §6).
const MaxIterations = 30

// WarnIterations is the soft diagnostic threshold below MaxIterations
// (SPEC_FULL §6, §7).
const WarnIterations = 20

// minFaceArea is the tolerance below which a candidate expansion is treated
// as not advancing the hull (SPEC_FULL §4.D step 3: "zero or negative").
const minFaceArea = 1e-9

type builder struct {
	hull []mink.MinkowskiPoint
}

var builderPool = sync.Pool{
	New: func() any {
		return &builder{hull: make([]mink.MinkowskiPoint, 0, 16)}
	},
}

func getBuilder() *builder {
	b := builderPool.Get().(*builder)
	b.hull = b.hull[:0]
	return b
}

func putBuilder(b *builder) {
	builderPool.Put(b)
}

// Run expands the triangle (v0, v1, v2) — already confirmed by GJK to
// enclose the origin — outward until the closest edge is the true boundary
// of the Minkowski difference, per SPEC_FULL §4.D.
func Run(ctx *mink.Context, v0, v1, v2 mink.MinkowskiPoint, logger *slog.Logger) mink.ClosestPoints {
	b := getBuilder()
	defer putBuilder(b)

	b.hull = append(b.hull, v0, v1, v2)

	for iteration := 1; ; iteration++ {
		i, j := closestEdge(b.hull)

		if iteration > MaxIterations {
			if logger != nil {
				logger.Warn("epa: hit iteration cap", "iterations", iteration)
			}
			return edgeResult(b.hull[i], b.hull[j])
		}
		if iteration == WarnIterations && logger != nil {
			logger.Warn("epa: approaching iteration cap", "iterations", iteration)
		}

		edge := b.hull[j].AB.Sub(b.hull[i].AB)
		n := geom.Perp(edge)
		p := ctx.Support(n)

		area2x := geom.Cross(edge, p.AB.Sub(b.hull[i].AB))
		if area2x <= minFaceArea {
			return edgeResult(b.hull[i], b.hull[j])
		}

		b.hull = insertAndPrune(b.hull, i, p)
	}
}

// closestEdge scans every hull edge and returns the indices (i, i+1) of the
// one whose segment is nearest the origin (SPEC_FULL §4.D step 1).
func closestEdge(hull []mink.MinkowskiPoint) (int, int) {
	n := len(hull)
	bestI, bestJ := 0, 1%n
	bestDist := mink.ClosestDist2(hull[0].AB, hull[1%n].AB)

	for i := 1; i < n; i++ {
		j := (i + 1) % n
		d := mink.ClosestDist2(hull[i].AB, hull[j].AB)
		if d < bestDist {
			bestDist = d
			bestI, bestJ = i, j
		}
	}

	return bestI, bestJ
}

// insertAndPrune inserts p immediately after index i and removes any
// vertex that becomes non-convex in the expanded hull (SPEC_FULL §4.D
// step 4). The insertion reuses hull's backing array, which is only
// reallocated when it is full.
func insertAndPrune(hull []mink.MinkowskiPoint, i int, p mink.MinkowskiPoint) []mink.MinkowskiPoint {
	hull = append(hull, mink.MinkowskiPoint{})
	copy(hull[i+2:], hull[i+1:])
	hull[i+1] = p
	return pruneConcave(hull)
}

// pruneConcave removes vertices that are not convex turns of the hull. The
// hull GJK hands over, (v0, p, v1), winds clockwise, so a convex vertex is
// a right turn (negative cross product).
func pruneConcave(hull []mink.MinkowskiPoint) []mink.MinkowskiPoint {
	for {
		n := len(hull)
		if n <= 3 {
			return hull
		}

		removed := false
		for k := 0; k < n; k++ {
			prev := hull[(k-1+n)%n]
			cur := hull[k]
			next := hull[(k+1)%n]

			turn := geom.Cross(cur.AB.Sub(prev.AB), next.AB.Sub(cur.AB))
			if turn >= 0 {
				hull = append(hull[:k], hull[k+1:]...)
				removed = true
				break
			}
		}
		if !removed {
			return hull
		}
	}
}

// edgeResult builds the ClosestPoints for the closest edge (v0, v1) of a
// converged or capped hull (SPEC_FULL §4.D, final paragraph).
func edgeResult(v0, v1 mink.MinkowskiPoint) mink.ClosestPoints {
	t := mink.ClosestT(v0.AB, v1.AB)
	closest := mink.LerpT(v0.AB, v1.AB, t)

	n := geom.SafeNormalize(geom.Perp(v1.AB.Sub(v0.AB)).Mul(-1), geom.New(1, 0))
	d := n.Dot(closest)

	pa := mink.LerpT(v0.A.P, v1.A.P, t)
	pb := mink.LerpT(v0.B.P, v1.B.P, t)

	return mink.ClosestPoints{
		PA: pa,
		PB: pb,
		N:  n,
		D:  d,
		ID: mink.PairID(v0.ID, v1.ID),
	}
}
