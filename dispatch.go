package collide2d

import "github.com/briskengine/collide2d/shape"

// table is the 3x3 dispatch table of SPEC_FULL §4.G/§9, indexed by
// (type(a), type(b)) with the invariant type(a) <= type(b) enforced by
// CollideShapes. The segment-segment entry is wired, but CollideShapes only
// reaches it once the segment-to-segment toggle is on; the nil entries
// below the diagonal are never reached.
var table = [3][3]pairHandler{
	shape.Circle: {
		shape.Circle:  circleCircleHandler,
		shape.Segment: circleSegmentHandler,
		shape.Polygon: circlePolygonHandler,
	},
	shape.Segment: {
		shape.Segment: gjkHandler,
		shape.Polygon: gjkHandler,
	},
	shape.Polygon: {
		shape.Polygon: gjkHandler,
	},
}

// CollideShapes is the narrow-phase entry point (SPEC_FULL §6):
// precondition shape_type(a) <= shape_type(b); warmStartID is the previous
// call's Info.ID for this pair (zero on the first call). It always returns
// a valid Info in bounded time; it never errors (SPEC_FULL §7).
func CollideShapes(a, b shape.Shape, warmStartID uint32) Info {
	ta, tb := a.ShapeType(), b.ShapeType()
	if ta > tb {
		panic("collide2d: CollideShapes requires shape_type(a) <= shape_type(b)")
	}

	if ta == shape.Segment && tb == shape.Segment && !segmentToSegmentEnabled.Load() {
		return Info{}
	}

	handler := table[ta][tb]
	if handler == nil {
		return Info{}
	}
	return handler(a, b, warmStartID)
}
