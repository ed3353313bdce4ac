package kdtree

import (
	"fmt"

	"github.com/viant/kdtree/index"
)

// DefaultTolerance is the balance tolerance used by New: subtree heights may
// drift apart by up to this much before a local rebuild fires. Zero forces
// perfect rebalancing on every structural change.
const DefaultTolerance = 4

// Tree is a dynamic, balanced k-d tree. The zero value is not usable; create
// trees with New or NewWithTolerance.
type Tree struct {
	dims      int
	tolerance int
	schedule  []int
	count     int
	root      *node
}

var _ index.Index = (*Tree)(nil)

// New creates an empty tree for points with dims coordinates using
// DefaultTolerance.
func New(dims int) (*Tree, error) {
	return NewWithTolerance(dims, DefaultTolerance)
}

// NewWithTolerance creates an empty tree with an explicit balance tolerance.
// Dimensionality is fixed for the tree's lifetime.
func NewWithTolerance(dims, tolerance int) (*Tree, error) {
	if dims < 1 {
		return nil, fmt.Errorf("kdtree: dimensionality must be at least 1, got %d", dims)
	}
	if tolerance < 0 {
		return nil, fmt.Errorf("kdtree: balance tolerance must not be negative, got %d", tolerance)
	}
	t := &Tree{dims: dims, tolerance: tolerance}
	t.schedule = make([]int, dims)
	t.resetSchedule()
	return t, nil
}

// Dims reports the tree's dimensionality.
func (t *Tree) Dims() int { return t.dims }

// Len reports the number of stored points.
func (t *Tree) Len() int { return t.count }

// Tolerance reports the tree's balance tolerance.
func (t *Tree) Tolerance() int { return t.tolerance }

// Clear drops every stored point. Dimensionality and tolerance are kept; the
// split schedule reverts to round-robin.
func (t *Tree) Clear() {
	t.root = nil
	t.count = 0
	t.resetSchedule()
}

func (t *Tree) resetSchedule() {
	for i := range t.schedule {
		t.schedule[i] = i
	}
}

// dimAt maps a depth to the coordinate index used for splitting there.
func (t *Tree) dimAt(depth int) int {
	return t.schedule[depth%t.dims]
}

func (t *Tree) checkCoords(coords []float32) error {
	if len(coords) != t.dims {
		return fmt.Errorf("kdtree: coordinate dimension %d does not match tree dimension %d", len(coords), t.dims)
	}
	return nil
}
