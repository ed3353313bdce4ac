package kdtree

import "sort"

// Level selects how thorough an Optimize pass is.
type Level int

const (
	// LevelLight estimates each split from a small coordinate sample.
	LevelLight Level = iota
	// LevelModerate uses a larger sample for better medians.
	LevelModerate
	// LevelFull sorts every point at every level and re-derives the split
	// schedule from per-dimension variance, greatest spread first.
	LevelFull
)

// Sample ceilings for the approximate levels; subtrees at or below the
// ceiling are built from exact medians.
const (
	lightSample    = 32
	moderateSample = 256
)

// Optimize rebuilds the tree into a flatter, more query-efficient shape
// holding the same point set. It is intended for use after a burst of
// insertions and removals, before a search-heavy phase; it is not meant for
// any single-operation hot path.
func (t *Tree) Optimize(level Level) {
	if t.root == nil {
		return
	}
	pts := collect(t.root, make([]point, 0, t.count))
	if level >= LevelFull {
		t.schedule = varianceSchedule(pts, t.dims)
		t.root = t.rebuild(pts, 0)
		return
	}
	limit := lightSample
	if level >= LevelModerate {
		limit = moderateSample
	}
	t.root = t.rebuildSampled(pts, 0, limit)
}

// rebuildSampled estimates the median on the split dimension from a strided
// sample, partitions around it with ties going low, and recurses. A final
// restore keeps the balance tolerance honored even when a sample estimate
// lands off-center.
func (t *Tree) rebuildSampled(pts []point, depth, limit int) *node {
	if len(pts) == 0 {
		return nil
	}
	if len(pts) <= limit {
		return t.rebuild(pts, depth)
	}
	dim := t.dimAt(depth)
	stride := len(pts) / limit
	sample := make([]float32, 0, limit+1)
	for i := 0; i < len(pts); i += stride {
		sample = append(sample, pts[i].coords[dim])
	}
	sort.Slice(sample, func(i, j int) bool { return sample[i] < sample[j] })
	pivotVal := sample[len(sample)/2]

	lows := make([]point, 0, len(pts)/2)
	highs := make([]point, 0, len(pts)/2)
	var pivot *point
	for i := range pts {
		switch v := pts[i].coords[dim]; {
		case v > pivotVal:
			highs = append(highs, pts[i])
		case v == pivotVal && pivot == nil:
			p := pts[i]
			pivot = &p
		default:
			lows = append(lows, pts[i])
		}
	}
	n := &node{coords: pivot.coords, uid: pivot.uid, dim: dim}
	n.children[low] = t.rebuildSampled(lows, depth+1, limit)
	n.children[high] = t.rebuildSampled(highs, depth+1, limit)
	n.updateHeight()
	return t.restore(n, depth)
}

// varianceSchedule orders dimensions by decreasing coordinate variance so
// the widest-spread dimension splits first at every schedule cycle.
func varianceSchedule(pts []point, dims int) []int {
	means := make([]float64, dims)
	for _, p := range pts {
		for d := 0; d < dims; d++ {
			means[d] += float64(p.coords[d])
		}
	}
	n := float64(len(pts))
	for d := range means {
		means[d] /= n
	}
	spread := make([]float64, dims)
	for _, p := range pts {
		for d := 0; d < dims; d++ {
			dv := float64(p.coords[d]) - means[d]
			spread[d] += dv * dv
		}
	}
	order := make([]int, dims)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return spread[order[i]] > spread[order[j]] })
	return order
}
