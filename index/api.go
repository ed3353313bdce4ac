package index

// Neighbor is a single search hit: the stored point's uid together with its
// squared Euclidean distance to the query point.
type Neighbor struct {
	UID      int32
	Distance float64
}

// Index defines a mutable spatial point index. Points are fixed-length
// float32 coordinate vectors tagged with a caller-assigned uid; uid
// uniqueness is the caller's responsibility.
type Index interface {
	// Insert adds a point. When allowDuplicates is false and the index
	// already holds a point with coordinate-for-coordinate equal position,
	// the insert is rejected and (false, nil) is returned; this is a normal
	// outcome, not an error.
	Insert(coords []float32, uid int32, allowDuplicates bool) (bool, error)

	// Remove deletes the point whose coordinates and uid both match.
	// (false, nil) is returned when no such point exists.
	Remove(coords []float32, uid int32) (bool, error)

	// KNN returns up to k stored points closest to the query, ordered by
	// ascending squared distance. A point whose uid equals *skip is excluded;
	// pass nil to disable skipping.
	KNN(query []float32, k int, skip *int32) ([]Neighbor, error)

	// Within returns every stored point whose distance to the query is at
	// most maxDist, ordered by ascending squared distance, excluding *skip
	// when non-nil. An empty result is valid, not an error.
	Within(query []float32, maxDist float64, skip *int32) ([]Neighbor, error)

	// Len reports the number of stored points.
	Len() int
}
