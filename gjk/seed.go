package gjk

import (
	"github.com/briskengine/collide2d/geom"
	"github.com/briskengine/collide2d/mink"
	"github.com/briskengine/collide2d/shape"
)

// Seed builds the initial 1-simplex for Run, per SPEC_FULL §4.C's seeding
// paragraph and the warm-start cache of §4.H. When warmStartID is non-zero
// and caching is enabled, it decodes the cached vertex-pair indices back
// into two MinkowskiPoints; if those indices no longer fit the current
// shapes (e.g. a polygon lost a vertex since the id was cached), it falls
// back to the axis seed exactly as if no cache were present — the cache is
// an optimization only, never a correctness requirement.
func Seed(ctx *mink.Context, warmStartID uint32, cachingEnabled bool, centerA, centerB geom.Vector) (mink.MinkowskiPoint, mink.MinkowskiPoint) {
	if cachingEnabled && warmStartID != 0 {
		if v0, v1, ok := decode(ctx, warmStartID); ok {
			return v0, v1
		}
	}
	return axisSeed(ctx, centerA, centerB)
}

func axisSeed(ctx *mink.Context, centerA, centerB geom.Vector) (mink.MinkowskiPoint, mink.MinkowskiPoint) {
	axis := geom.Perp(centerA.Sub(centerB))
	v0 := ctx.Support(axis)
	v1 := ctx.Support(axis.Mul(-1))
	return v0, v1
}

func decode(ctx *mink.Context, id uint32) (mink.MinkowskiPoint, mink.MinkowskiPoint, bool) {
	id0 := uint16(id >> 16)
	id1 := uint16(id & 0xFFFF)

	aIdx0, bIdx0 := uint8(id0>>8), uint8(id0&0xFF)
	aIdx1, bIdx1 := uint8(id1>>8), uint8(id1&0xFF)

	if int(aIdx0) >= len(ctx.VertsA) || int(aIdx1) >= len(ctx.VertsA) ||
		int(bIdx0) >= len(ctx.VertsB) || int(bIdx1) >= len(ctx.VertsB) {
		return mink.MinkowskiPoint{}, mink.MinkowskiPoint{}, false
	}

	v0 := mink.NewPoint(
		shape.SupportPoint{P: ctx.VertsA[aIdx0], Index: aIdx0},
		shape.SupportPoint{P: ctx.VertsB[bIdx0], Index: bIdx0},
	)
	v1 := mink.NewPoint(
		shape.SupportPoint{P: ctx.VertsA[aIdx1], Index: aIdx1},
		shape.SupportPoint{P: ctx.VertsB[bIdx1], Index: bIdx1},
	)

	return v0, v1, true
}
