// Package cftree implements the clustering-feature tree (CF-tree) at
// the heart of the BIRCH clustering algorithm: an on-line,
// memory-bounded structure that incrementally absorbs fixed-dimension
// points into a height-balanced tree of sufficient statistics
// summarizing sub-clusters.
//
// A Tree owns every node it allocates; it is single-threaded and must
// not be mutated from more than one goroutine at a time. Construct one
// with New, feed it points with Insert, and read back summarized
// sub-clusters with Entries or LeafIter. Rebuild compacts the tree in
// place, either merging what already overlaps (extend=false) or
// widening the absorb radius to bring the leaf-entry count back under
// budget (extend=true).
//
// Loading points from a file, running a global clustering pass over
// the leaf entries, and redistributing raw points to final centroids
// are all external collaborators built on top of Entries/LeafIter —
// none of that lives in this package.
package cftree
