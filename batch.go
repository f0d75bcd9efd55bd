package collide2d

import (
	"sync"

	"github.com/briskengine/collide2d/shape"
)

// Pair is one shape pair and its warm-start id: the unit of work
// CollideShapesBatch fans out across a worker pool (SPEC_FULL §5, §11).
type Pair struct {
	A, B        shape.Shape
	WarmStartID uint32
}

// CollideShapesBatch evaluates CollideShapes for every pair, writing
// results into out (which must have the same length as pairs), splitting
// the work across workerCount goroutines. Each pair has its own output
// slot and the shape data is assumed stable for the call's duration
// (SPEC_FULL §5), so no synchronization is needed beyond the dispatch
// itself — the same chunked-range pattern the donor engine's own pipeline
// helper uses for its per-frame parallel work.
func CollideShapesBatch(pairs []Pair, out []Info, workerCount int) {
	if len(pairs) != len(out) {
		panic("collide2d: CollideShapesBatch requires len(out) == len(pairs)")
	}
	if workerCount < 1 {
		workerCount = 1
	}

	dataSize := len(pairs)
	chunkSize := (dataSize + workerCount - 1) / workerCount

	var wg sync.WaitGroup
	for workerID := 0; workerID < workerCount; workerID++ {
		start := workerID * chunkSize
		end := min((workerID+1)*chunkSize, dataSize)
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				out[i] = CollideShapes(pairs[i].A, pairs[i].B, pairs[i].WarmStartID)
			}
		}(start, end)
	}
	wg.Wait()
}
