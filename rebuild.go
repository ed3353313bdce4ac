package kdtree

import "sort"

// point is a detached (coordinates, uid) payload carried through rebuilds.
type point struct {
	coords []float32
	uid    int32
}

// collect appends every payload reachable from n to pts. Coordinate slices
// are handed over, not copied: the caller discards the old nodes.
func collect(n *node, pts []point) []point {
	if n == nil {
		return pts
	}
	pts = append(pts, point{coords: n.coords, uid: n.uid})
	pts = collect(n.children[low], pts)
	pts = collect(n.children[high], pts)
	return pts
}

// rebuild constructs a median-split subtree from pts rooted at the given
// depth. Split-value ties may land on either side of the median; lookups
// account for that by descending both sides on a tie.
func (t *Tree) rebuild(pts []point, depth int) *node {
	if len(pts) == 0 {
		return nil
	}
	dim := t.dimAt(depth)
	sort.Slice(pts, func(i, j int) bool { return pts[i].coords[dim] < pts[j].coords[dim] })
	m := len(pts) / 2
	n := &node{coords: pts[m].coords, uid: pts[m].uid, dim: dim}
	n.children[low] = t.rebuild(pts[:m], depth+1)
	n.children[high] = t.rebuild(pts[m+1:], depth+1)
	n.updateHeight()
	return n
}

// restore rebuilds the subtree rooted at n when its children's heights have
// drifted apart by more than the balance tolerance. The node's height must
// be current on entry.
func (t *Tree) restore(n *node, depth int) *node {
	if n.skew() <= t.tolerance {
		return n
	}
	return t.rebuild(collect(n, nil), depth)
}
