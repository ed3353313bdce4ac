package kdtree

// Children indexes: the low child holds points whose coordinate on the
// node's split dimension is <= the node's, the high child holds points
// whose coordinate is >= it. New inserts send split-value ties low, but
// rebuilds and payload promotion may leave a tie on either side, so exact
// lookups descend both sides on a tie.
const (
	low  = 0
	high = 1
)

// node stores one indexed point together with its split bookkeeping. The
// coordinate slice is exclusively owned by the node.
type node struct {
	coords   []float32
	uid      int32
	dim      int
	height   int
	children [2]*node
}

func newNode(coords []float32, uid int32, dim int) *node {
	owned := make([]float32, len(coords))
	copy(owned, coords)
	return &node{coords: owned, uid: uid, dim: dim}
}

// adopt overwrites the node's payload with m's coordinates and uid, leaving
// links and split bookkeeping in place.
func (n *node) adopt(m *node) {
	copy(n.coords, m.coords)
	n.uid = m.uid
}

func subHeight(n *node) int {
	if n == nil {
		return -1
	}
	return n.height
}

func (n *node) updateHeight() {
	h0, h1 := subHeight(n.children[low]), subHeight(n.children[high])
	if h0 > h1 {
		n.height = h0 + 1
	} else {
		n.height = h1 + 1
	}
}

// skew is the absolute height difference between the node's subtrees.
func (n *node) skew() int {
	d := subHeight(n.children[low]) - subHeight(n.children[high])
	if d < 0 {
		return -d
	}
	return d
}

func coordsEqual(a, b []float32) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
