// Package shape defines the convex shape variants the narrow-phase core
// operates on (circle, segment, polygon), their world-space geometry, and
// the support-mapping primitive (SPEC_FULL §3, §4.A) that lets GJK and EPA
// treat any of them uniformly.
//
// Shape construction and transform caching belong to the embedding engine;
// this package only holds already-transformed, world-space data.
package shape

import "github.com/briskengine/collide2d/geom"

// Type tags a Shape's concrete variant. Dispatch ordering (SPEC_FULL §4.G)
// relies on Circle < Segment < Polygon.
type Type int

const (
	Circle Type = iota
	Segment
	Polygon
)

// Body is the minimal read-only view this core needs of a rigid body: its
// world-space position, used to express contact points relative to each
// body. Everything else about a body (velocity, mass, rotation state) is
// the constraint solver's concern, an external collaborator per SPEC_FULL §1.
type Body interface {
	Position() geom.Vector
}

// Shape is implemented by every shape variant. HashID identifies the shape
// for the stable per-vertex contact hash (SPEC_FULL §4.E) and is assigned
// by the caller at shape-construction time; it has no meaning within this
// package beyond uniqueness.
type Shape interface {
	ShapeType() Type
	Body() Body
	HashID() uint32
}

// Vertexed is implemented by the two shape variants GJK operates on
// directly (Segment, Polygon). Circle bypasses GJK entirely via the
// analytic fast paths in SPEC_FULL §4.G.
type Vertexed interface {
	Shape
	WorldVertices() []geom.Vector
	ShapeRadius() float64
}

// CircleShape is a circular shape: a center and a radius.
type CircleShape struct {
	BodyRef Body
	Center  geom.Vector
	Radius  float64
	ID      uint32
}

func (c *CircleShape) ShapeType() Type   { return Circle }
func (c *CircleShape) Body() Body        { return c.BodyRef }
func (c *CircleShape) HashID() uint32    { return c.ID }

// SegmentShape is a line segment with thickness, an outward normal, and
// optional rejection tangents at each endpoint used to suppress one-way
// endcap collisions (SPEC_FULL §4.G).
type SegmentShape struct {
	BodyRef Body
	A, B    geom.Vector
	Radius  float64
	Normal  geom.Vector

	TangentA, TangentB       geom.Vector
	HasTangentA, HasTangentB bool

	ID uint32
}

func (s *SegmentShape) ShapeType() Type             { return Segment }
func (s *SegmentShape) Body() Body                  { return s.BodyRef }
func (s *SegmentShape) HashID() uint32              { return s.ID }
func (s *SegmentShape) WorldVertices() []geom.Vector { return []geom.Vector{s.A, s.B} }
func (s *SegmentShape) ShapeRadius() float64         { return s.Radius }

// HalfPlane is one outward-facing edge plane of a polygon: points p with
// p.Dot(Normal) > Offset lie outside the polygon along this edge.
type HalfPlane struct {
	Normal geom.Vector
	Offset float64
}

// Distance returns the signed distance of p from the half-plane, positive
// outside.
func (h HalfPlane) Distance(p geom.Vector) float64 {
	return p.Dot(h.Normal) - h.Offset
}

// PolygonShape is a convex polygon: CCW world-space vertices, one outward
// half-plane per edge, and a radius for rounded-corner inflation.
type PolygonShape struct {
	BodyRef  Body
	Vertices []geom.Vector
	Planes   []HalfPlane
	Radius   float64
	ID       uint32
}

func (p *PolygonShape) ShapeType() Type              { return Polygon }
func (p *PolygonShape) Body() Body                   { return p.BodyRef }
func (p *PolygonShape) HashID() uint32               { return p.ID }
func (p *PolygonShape) WorldVertices() []geom.Vector { return p.Vertices }
func (p *PolygonShape) ShapeRadius() float64         { return p.Radius }
