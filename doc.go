// Package kdtree implements a dynamic, balanced k-d tree for exact
// nearest-neighbor queries over float32 points with a fixed number of
// dimensions. Each point carries a caller-assigned uid.
//
// Features:
//   - Insertion and removal at any time, with incremental rebalancing
//     bounded by a per-tree balance tolerance
//   - Exact k-nearest-neighbor search with hyperplane pruning
//   - Radius search returning every point within a fixed distance
//   - Optional whole-tree optimization at three thoroughness levels
//
// The tree is not safe for concurrent mutation; callers must serialize
// writes. Concurrent reads are safe while no mutation is in flight.
package kdtree
