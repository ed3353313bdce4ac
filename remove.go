package kdtree

// Remove deletes the point whose coordinates and uid both match. Coordinate
// match alone is not sufficient, since duplicates may share a position.
// (false, nil) is returned when no such point exists; the tree is unchanged.
func (t *Tree) Remove(coords []float32, uid int32) (bool, error) {
	if err := t.checkCoords(coords); err != nil {
		return false, err
	}
	root, removed := t.remove(t.root, coords, uid, 0)
	if !removed {
		return false, nil
	}
	t.root = root
	t.count--
	return true, nil
}

// remove locates the matching node and returns the repaired subtree. On a
// split-value tie both sides are searched: payload promotion can leave an
// equal coordinate on either side.
func (t *Tree) remove(n *node, coords []float32, uid int32, depth int) (*node, bool) {
	if n == nil {
		return nil, false
	}
	if n.uid == uid && coordsEqual(coords, n.coords) {
		return t.removeNode(n, depth), true
	}
	v, s := coords[n.dim], n.coords[n.dim]
	if v <= s {
		if child, ok := t.remove(n.children[low], coords, uid, depth+1); ok {
			n.children[low] = child
			n.updateHeight()
			return t.restore(n, depth), true
		}
	}
	if v >= s {
		if child, ok := t.remove(n.children[high], coords, uid, depth+1); ok {
			n.children[high] = child
			n.updateHeight()
			return t.restore(n, depth), true
		}
	}
	return n, false
}

// removeNode detaches a childless node, or repairs an inner node by
// promoting a substitute payload: the high-subtree minimum (or, lacking a
// high child, the low-subtree maximum) on the removed node's split
// dimension. The substitute's original slot is then removed recursively.
func (t *Tree) removeNode(n *node, depth int) *node {
	if n.children[low] == nil && n.children[high] == nil {
		return nil
	}
	if n.children[high] != nil {
		m := minOn(n.children[high], n.dim)
		n.adopt(m)
		child, _ := t.remove(n.children[high], m.coords, m.uid, depth+1)
		n.children[high] = child
	} else {
		m := maxOn(n.children[low], n.dim)
		n.adopt(m)
		child, _ := t.remove(n.children[low], m.coords, m.uid, depth+1)
		n.children[low] = child
	}
	n.updateHeight()
	return t.restore(n, depth)
}

// minOn finds the node with the smallest coordinate on dim within the
// subtree rooted at n. When n splits on dim only the low side can improve on
// n; otherwise both sides must be visited.
func minOn(n *node, dim int) *node {
	best := n
	if n.dim == dim {
		if c := n.children[low]; c != nil {
			if m := minOn(c, dim); m.coords[dim] < best.coords[dim] {
				best = m
			}
		}
		return best
	}
	for _, c := range n.children {
		if c == nil {
			continue
		}
		if m := minOn(c, dim); m.coords[dim] < best.coords[dim] {
			best = m
		}
	}
	return best
}

// maxOn is the mirror of minOn.
func maxOn(n *node, dim int) *node {
	best := n
	if n.dim == dim {
		if c := n.children[high]; c != nil {
			if m := maxOn(c, dim); m.coords[dim] > best.coords[dim] {
				best = m
			}
		}
		return best
	}
	for _, c := range n.children {
		if c == nil {
			continue
		}
		if m := maxOn(c, dim); m.coords[dim] > best.coords[dim] {
			best = m
		}
	}
	return best
}
