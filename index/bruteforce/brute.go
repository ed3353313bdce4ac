package bruteforce

import (
	"fmt"
	"sort"

	"github.com/viant/kdtree/index"
	"github.com/viant/vec/search"
)

// Index is a linear-scan point index implementing index.Index.
type Index struct {
	dim    int
	coords [][]float32
	uids   []int32
}

var _ index.Index = (*Index)(nil)

// New creates an empty brute-force index for points with dim coordinates.
func New(dim int) (*Index, error) {
	if dim < 1 {
		return nil, fmt.Errorf("bruteforce: dimensionality must be at least 1, got %d", dim)
	}
	return &Index{dim: dim}, nil
}

// Len reports the number of stored points.
func (i *Index) Len() int { return len(i.uids) }

// Insert stores a copy of coords tagged with uid. With allowDuplicates false
// an existing point at the same position rejects the insert with (false, nil).
func (i *Index) Insert(coords []float32, uid int32, allowDuplicates bool) (bool, error) {
	if len(coords) != i.dim {
		return false, fmt.Errorf("bruteforce: coordinate dimension %d does not match index dimension %d", len(coords), i.dim)
	}
	if !allowDuplicates {
		for _, c := range i.coords {
			if equal(c, coords) {
				return false, nil
			}
		}
	}
	owned := make([]float32, len(coords))
	copy(owned, coords)
	i.coords = append(i.coords, owned)
	i.uids = append(i.uids, uid)
	return true, nil
}

// Remove deletes the first point matching both coords and uid.
func (i *Index) Remove(coords []float32, uid int32) (bool, error) {
	if len(coords) != i.dim {
		return false, fmt.Errorf("bruteforce: coordinate dimension %d does not match index dimension %d", len(coords), i.dim)
	}
	for j := range i.uids {
		if i.uids[j] == uid && equal(i.coords[j], coords) {
			i.coords = append(i.coords[:j], i.coords[j+1:]...)
			i.uids = append(i.uids[:j], i.uids[j+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// KNN returns up to k nearest points ordered by ascending squared distance.
func (i *Index) KNN(query []float32, k int, skip *int32) ([]index.Neighbor, error) {
	if len(query) != i.dim {
		return nil, fmt.Errorf("bruteforce: query dimension %d does not match index dimension %d", len(query), i.dim)
	}
	if k < 1 {
		return nil, fmt.Errorf("bruteforce: k must be at least 1, got %d", k)
	}
	all := i.scan(query, skip)
	if len(all) > k {
		all = all[:k]
	}
	return all, nil
}

// Within returns every point within maxDist of the query, ordered by
// ascending squared distance.
func (i *Index) Within(query []float32, maxDist float64, skip *int32) ([]index.Neighbor, error) {
	if len(query) != i.dim {
		return nil, fmt.Errorf("bruteforce: query dimension %d does not match index dimension %d", len(query), i.dim)
	}
	if maxDist < 0 {
		return nil, fmt.Errorf("bruteforce: search radius must not be negative, got %v", maxDist)
	}
	all := i.scan(query, skip)
	bound := maxDist * maxDist
	cut := sort.Search(len(all), func(j int) bool { return all[j].Distance > bound })
	return all[:cut], nil
}

// scan scores every eligible point and orders the hits by ascending squared
// distance, ties kept in storage order.
func (i *Index) scan(query []float32, skip *int32) []index.Neighbor {
	out := make([]index.Neighbor, 0, len(i.uids))
	for j, c := range i.coords {
		if skip != nil && *skip == i.uids[j] {
			continue
		}
		d := float64(search.Float32s(query).EuclideanDistance(c))
		out = append(out, index.Neighbor{UID: i.uids[j], Distance: d * d})
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Distance < out[b].Distance })
	return out
}

func equal(a, b []float32) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
