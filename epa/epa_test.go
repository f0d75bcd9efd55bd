package epa

import (
	"math"
	"testing"

	"github.com/briskengine/collide2d/geom"
	"github.com/briskengine/collide2d/mink"
	"github.com/briskengine/collide2d/shape"
)

func mp(x, y float64) mink.MinkowskiPoint {
	sp := shape.SupportPoint{P: geom.New(x, y)}
	pt := mink.NewPoint(sp, sp)
	pt.AB = geom.New(x, y)
	return pt
}

func TestClosestEdgeFindsNearestSegment(t *testing.T) {
	// A triangle enclosing the origin: its left edge (0,3)-(-1,-1) passes
	// 3/sqrt(17) ~= 0.73 from the origin, nearer than the bottom edge (1)
	// and the right edge (~1.34).
	hull := []mink.MinkowskiPoint{mp(-1, -1), mp(2, -1), mp(0, 3)}
	i, j := closestEdge(hull)
	if i != 2 || j != 0 {
		t.Errorf("closestEdge = (%d,%d), want (2,0) (the left edge)", i, j)
	}
}

func TestInsertAndPruneGrowsHull(t *testing.T) {
	// Clockwise, the winding of the triangle GJK hands to Run.
	hull := []mink.MinkowskiPoint{mp(0, 3), mp(2, -1), mp(-1, -1)}
	grown := insertAndPrune(hull, 1, mp(0, -3))

	if len(grown) != 4 {
		t.Fatalf("expected hull to grow to 4 vertices, got %d", len(grown))
	}

	n := len(grown)
	for k := 0; k < n; k++ {
		prev := grown[(k-1+n)%n]
		cur := grown[k]
		next := grown[(k+1)%n]
		turn := geom.Cross(cur.AB.Sub(prev.AB), next.AB.Sub(cur.AB))
		if turn >= 0 {
			t.Errorf("vertex %d is not a convex (clockwise) turn after insertion (turn=%v)", k, turn)
		}
	}
}

func TestEdgeResultUnitNormalAndSymmetricDistance(t *testing.T) {
	// A horizontal edge at y=2, symmetric about the y-axis: the closest
	// point on it to the origin is (0,2), distance 2.
	v0 := mp(-1, 2)
	v1 := mp(1, 2)

	cp := edgeResult(v0, v1)

	if math.Abs(cp.N.Len()-1) > 1e-9 {
		t.Errorf("|N| = %v, want 1", cp.N.Len())
	}
	// D is penetration depth and must be negative when the origin lies
	// inside the hull (SPEC_FULL §3, §4.D).
	if math.Abs(cp.D+2) > 1e-9 {
		t.Errorf("D = %v, want -2", cp.D)
	}
	if math.Abs(cp.N.X()) > 1e-9 {
		t.Errorf("N.X() = %v, want ~0 for a horizontal edge", cp.N.X())
	}
}

func TestRunDegenerateSupportReturnsNonDegenerateNormal(t *testing.T) {
	// Both shapes are single points, so every support query returns the
	// same Minkowski point (0, 0.0001); Run must still terminate with a
	// usable normal.
	ctx := &mink.Context{
		VertsA: []geom.Vector{geom.New(0, 0)},
		VertsB: []geom.Vector{geom.New(0, 0.0001)},
	}

	v0 := mp(-1, -1)
	v1 := mp(1, -1)
	v2 := mp(0, 1)

	cp := Run(ctx, v0, v1, v2, nil)
	if cp.N.Len() == 0 {
		t.Fatal("expected a non-degenerate result even when capped")
	}
}
