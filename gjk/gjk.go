// Package gjk implements the separating-distance iterator of SPEC_FULL §4.C:
// given a 1-simplex of two Minkowski points, bisect it toward the origin of
// the Minkowski difference until either the closest pair of points is found
// or a triangle enclosing the origin is produced, at which point the
// penetration-depth search is handed to package epa.
//
// The loop is explicit and bounded (SPEC_FULL §9: "implement iteratively
// with explicit loops to avoid any stack-depth concerns") rather than the
// tail recursion of the original source.
package gjk

import (
	"log/slog"
	"math"

	"github.com/briskengine/collide2d/epa"
	"github.com/briskengine/collide2d/geom"
	"github.com/briskengine/collide2d/mink"
)

// MaxIterations bounds the simplex-refinement loop (SPEC_FULL §6).
const MaxIterations = 30

// WarnIterations is the soft diagnostic threshold below MaxIterations
// (SPEC_FULL §6, §7).
const WarnIterations = 20

// Run refines the 1-simplex (v0, v1) on the Minkowski difference of ctx's
// two shapes toward the origin, per SPEC_FULL §4.C. logger may be nil; a
// non-nil logger receives a soft warning once the search crosses
// WarnIterations, matching the teacher's convention of logging only once
// past a threshold rather than on every call.
func Run(ctx *mink.Context, v0, v1 mink.MinkowskiPoint, logger *slog.Logger) mink.ClosestPoints {
	warned := false

	for iteration := 1; ; iteration++ {
		if iteration > MaxIterations {
			if logger != nil {
				logger.Warn("gjk: hit iteration cap", "iterations", iteration)
			}
			return mink.FromSimplex(v0, v1)
		}
		if !warned && iteration >= WarnIterations && logger != nil {
			logger.Warn("gjk: approaching iteration cap", "iterations", iteration)
			warned = true
		}

		// Step 2: reorient so the origin is on the correct side of the
		// directed edge v0 -> v1.
		delta := v1.AB.Sub(v0.AB)
		if geom.Cross(delta, v1.AB.Add(v0.AB)) > 0 {
			v0, v1 = v1, v0
			continue
		}

		// Step 3: pick the search direction.
		t := mink.ClosestT(v0.AB, v1.AB)
		var n geom.Vector
		if t > -1 && t < 1 {
			n = geom.Perp(delta)
		} else {
			n = mink.LerpT(v0.AB, v1.AB, t).Mul(-1)
		}

		p := ctx.Support(n)

		// Step 4: does triangle (v0, p, v1) enclose the origin?
		if geom.Cross(v1.AB.Sub(p.AB), v1.AB.Add(p.AB)) > 0 &&
			geom.Cross(v0.AB.Sub(p.AB), v0.AB.Add(p.AB)) < 0 {
			return epa.Run(ctx, v0, p, v1, logger)
		}

		// Step 5: did the new point fail to advance the simplex?
		if p.AB.Dot(n) <= math.Max(v0.AB.Dot(n), v1.AB.Dot(n)) {
			return mink.FromSimplex(v0, v1)
		}

		// Step 6: keep the endpoint nearer the origin.
		if mink.ClosestDist2(v0.AB, p.AB) < mink.ClosestDist2(p.AB, v1.AB) {
			v1 = p
		} else {
			v0 = p
		}
	}
}
