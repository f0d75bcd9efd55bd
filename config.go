package collide2d

import "sync/atomic"

// segmentToSegmentEnabled is the one process-wide mutable flag this core
// has (SPEC_FULL §5, §9): set once at initialization, read on every
// dispatch. atomic.Bool makes concurrent reads safe without a lock.
var segmentToSegmentEnabled atomic.Bool

// EnableSegmentToSegmentCollisions switches the dispatch table to include
// the segment-segment handler. Idempotent; there is no disable (SPEC_FULL
// §6).
func EnableSegmentToSegmentCollisions() {
	segmentToSegmentEnabled.Store(true)
}
