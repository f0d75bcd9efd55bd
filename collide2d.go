// Package collide2d is the narrow-phase collision detection core of a 2D
// rigid-body physics engine: given two convex shapes already known to
// potentially overlap, it decides whether they intersect and produces the
// small set of contact points describing how they touch.
//
// The broad phase that filters candidate pairs, the constraint solver that
// consumes contacts, and shape construction/transform caching are all
// external collaborators; this package only consumes already-transformed
// shape data through the shape package's Shape/Body interfaces.
package collide2d

import (
	"github.com/briskengine/collide2d/geom"
	"github.com/briskengine/collide2d/shape"
)

// MaxContacts is the largest number of contact points this core ever
// produces for a single pair.
const MaxContacts = 2

// Contact is one point of contact between two shapes: positions relative
// to each body, signed penetration depth (negative when touching or
// overlapping), and a hash stable across frames for the same supporting
// feature.
type Contact struct {
	R1, R2 geom.Vector
	Dist   float64
	Hash   uint32
}

// Info is the result of CollideShapes: the shared contact normal, how many
// of Contacts are populated, and the warm-start id to feed back on the
// next call for this pair.
type Info struct {
	N        geom.Vector
	Count    int
	Contacts [MaxContacts]Contact
	ID       uint32
}

// pairHandler resolves one ordered (typeA, typeB) combination of the
// dispatch table (SPEC_FULL §4.G, §9).
type pairHandler func(a, b shape.Shape, warmStartID uint32) Info
