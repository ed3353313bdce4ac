// Package index defines a minimal abstraction for mutable spatial point
// indexes keyed by caller-assigned uids: insertion, removal, kNN queries,
// and radius queries. Implementations in this module include a brute-force
// baseline and the balanced k-d tree at the module root.
package index
