package kdtree

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/viant/kdtree/index"
)

// KNN returns up to k stored points closest to the query, ordered by
// ascending squared distance. Fewer than k hits are returned when the tree
// holds fewer eligible points. A point whose uid equals *skip is excluded
// from candidacy but its subtree is still searched; pass nil to disable
// skipping.
func (t *Tree) KNN(query []float32, k int, skip *int32) ([]index.Neighbor, error) {
	if err := t.checkCoords(query); err != nil {
		return nil, err
	}
	if k < 1 {
		return nil, fmt.Errorf("kdtree: k must be at least 1, got %d", k)
	}
	if t.root == nil {
		return nil, nil
	}
	h := &neighborHeap{}
	heap.Init(h)
	t.knn(t.root, query, k, skip, h)
	out := make([]index.Neighbor, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(h).(index.Neighbor)
	}
	return out, nil
}

// knn descends near side first and prunes the far side once the squared
// distance to the splitting hyperplane exceeds the worst kept distance.
func (t *Tree) knn(n *node, query []float32, k int, skip *int32, h *neighborHeap) {
	if skip == nil || *skip != n.uid {
		d := SquaredDistance(query, n.coords)
		if h.Len() < k {
			heap.Push(h, index.Neighbor{UID: n.uid, Distance: d})
		} else if d < (*h)[0].Distance {
			heap.Pop(h)
			heap.Push(h, index.Neighbor{UID: n.uid, Distance: d})
		}
	}
	plane := float64(query[n.dim]) - float64(n.coords[n.dim])
	near, far := low, high
	if plane > 0 {
		near, far = high, low
	}
	if c := n.children[near]; c != nil {
		t.knn(c, query, k, skip, h)
	}
	if c := n.children[far]; c != nil {
		if h.Len() < k || plane*plane <= (*h)[0].Distance {
			t.knn(c, query, k, skip, h)
		}
	}
}

// Within returns every stored point whose distance to the query is at most
// maxDist, ordered by ascending squared distance, excluding *skip when
// non-nil. The result buffer is grown as needed and owned by the caller; an
// empty result is valid, not an error.
func (t *Tree) Within(query []float32, maxDist float64, skip *int32) ([]index.Neighbor, error) {
	if err := t.checkCoords(query); err != nil {
		return nil, err
	}
	if maxDist < 0 {
		return nil, fmt.Errorf("kdtree: search radius must not be negative, got %v", maxDist)
	}
	var out []index.Neighbor
	t.within(t.root, query, maxDist*maxDist, skip, &out)
	sort.Slice(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	return out, nil
}

// within prunes against the fixed squared radius; the bound never shrinks,
// unlike the worst-of-k bound in knn.
func (t *Tree) within(n *node, query []float32, bound float64, skip *int32, out *[]index.Neighbor) {
	if n == nil {
		return
	}
	if skip == nil || *skip != n.uid {
		if d := SquaredDistance(query, n.coords); d <= bound {
			*out = append(*out, index.Neighbor{UID: n.uid, Distance: d})
		}
	}
	plane := float64(query[n.dim]) - float64(n.coords[n.dim])
	near, far := low, high
	if plane > 0 {
		near, far = high, low
	}
	t.within(n.children[near], query, bound, skip, out)
	if plane*plane <= bound {
		t.within(n.children[far], query, bound, skip, out)
	}
}
