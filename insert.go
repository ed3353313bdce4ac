package kdtree

// Insert adds a point with the given coordinates and uid. The coordinate
// slice is copied; the caller keeps ownership of its buffer.
//
// When allowDuplicates is false and the tree already holds a point with
// coordinate-for-coordinate equal position (regardless of uid), the insert
// is rejected and (false, nil) is returned; this is a normal outcome, not
// an error.
func (t *Tree) Insert(coords []float32, uid int32, allowDuplicates bool) (bool, error) {
	if err := t.checkCoords(coords); err != nil {
		return false, err
	}
	if !allowDuplicates && contains(t.root, coords) {
		return false, nil
	}
	t.root = t.insert(t.root, coords, uid, 0)
	t.count++
	return true, nil
}

func (t *Tree) insert(n *node, coords []float32, uid int32, depth int) *node {
	if n == nil {
		return newNode(coords, uid, t.dimAt(depth))
	}
	dir := low
	if coords[n.dim] > n.coords[n.dim] {
		dir = high
	}
	n.children[dir] = t.insert(n.children[dir], coords, uid, depth+1)
	n.updateHeight()
	return t.restore(n, depth)
}

// contains reports whether any stored point has exactly these coordinates,
// descending both sides on a split-value tie.
func contains(n *node, coords []float32) bool {
	if n == nil {
		return false
	}
	if coordsEqual(coords, n.coords) {
		return true
	}
	v, s := coords[n.dim], n.coords[n.dim]
	if v <= s && contains(n.children[low], coords) {
		return true
	}
	return v >= s && contains(n.children[high], coords)
}
