package kdtree

import "github.com/viant/vec/search"

// SquaredDistance returns the squared Euclidean distance between two
// equal-length coordinate vectors, computed with the SIMD kernel from
// viant/vec. Every comparison in this package uses squared distances.
func SquaredDistance(a, b []float32) float64 {
	d := float64(search.Float32s(a).EuclideanDistance(b))
	return d * d
}
