package contact

import (
	"testing"

	"github.com/briskengine/collide2d/geom"
	"github.com/briskengine/collide2d/shape"
)

type fixedBody struct{ p geom.Vector }

func (f fixedBody) Position() geom.Vector { return f.p }

func TestPolygonEdgePicksMoreAlignedAdjacentEdge(t *testing.T) {
	// Unit square, CCW from bottom-left.
	verts := []geom.Vector{
		geom.New(-1, -1),
		geom.New(1, -1),
		geom.New(1, 1),
		geom.New(-1, 1),
	}
	planes := []shape.HalfPlane{
		{Normal: geom.New(0, -1), Offset: 1},
		{Normal: geom.New(1, 0), Offset: 1},
		{Normal: geom.New(0, 1), Offset: 1},
		{Normal: geom.New(-1, 0), Offset: 1},
	}
	p := &shape.PolygonShape{Vertices: verts, Planes: planes, ID: 7}

	edge := PolygonEdge(p, geom.New(1, 0))
	if edge.Normal != geom.New(1, 0) {
		t.Errorf("expected the right-facing edge, got normal %v", edge.Normal)
	}
}

func TestSegmentEdgeFlipsWhenNormalOpposesSearchDirection(t *testing.T) {
	s := &shape.SegmentShape{A: geom.New(0, 0), B: geom.New(1, 0), Normal: geom.New(0, 1), ID: 3}

	forward := SegmentEdge(s, geom.New(0, 1))
	if forward.A != s.A || forward.B != s.B {
		t.Errorf("expected unflipped endpoints when normal agrees with n")
	}

	flipped := SegmentEdge(s, geom.New(0, -1))
	if flipped.A != s.B || flipped.B != s.A {
		t.Errorf("expected flipped endpoints when normal opposes n")
	}
	if flipped.Normal != geom.New(0, -1) {
		t.Errorf("expected negated normal when flipped, got %v", flipped.Normal)
	}
}

func TestClipIdenticalSegmentsProducesFullOverlap(t *testing.T) {
	// Two identical horizontal segments (0,0)-(1,0), radius 0.1 each (the
	// shapes of scenario 5 of SPEC_FULL §8), clipped along n=(0,1): both
	// endpoint pairings overlap, each by the combined radii (dist -0.2).
	e1 := Edge{A: geom.New(0, 0), B: geom.New(1, 0), Radius: 0.1, HashA: 1, HashB: 2}
	e2 := Edge{A: geom.New(0, 0), B: geom.New(1, 0), Radius: 0.1, HashA: 3, HashB: 4}
	n := geom.New(0, 1)

	bodyA := fixedBody{geom.New(0, 0)}
	bodyB := fixedBody{geom.New(0, 0)}

	points := Clip(e1, e2, n, -0.2, bodyA, bodyB)
	if len(points) == 0 {
		t.Fatal("expected at least one contact for identical overlapping segments")
	}
	for _, p := range points {
		if p.Dist > 1e-9 {
			t.Errorf("contact dist = %v, want <= 0", p.Dist)
		}
	}
}

func TestClipRejectsSeparationBeyondCombinedRadii(t *testing.T) {
	e1 := Edge{A: geom.New(0, 0), B: geom.New(1, 0), Radius: 0.1}
	e2 := Edge{A: geom.New(0, 5), B: geom.New(1, 5), Radius: 0.1}
	n := geom.New(0, 1)

	points := Clip(e1, e2, n, 5.0, fixedBody{}, fixedBody{})
	if points != nil {
		t.Errorf("expected no contacts when d exceeds combined radii, got %d", len(points))
	}
}

func TestVertexHashStableForSameInputs(t *testing.T) {
	a := VertexHash(42, 3)
	b := VertexHash(42, 3)
	if a != b {
		t.Errorf("VertexHash not stable: %v != %v", a, b)
	}
	if VertexHash(42, 3) == VertexHash(42, 4) {
		t.Error("VertexHash should differ for different vertex indices")
	}
}
