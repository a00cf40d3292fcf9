// pkg/cftree/errors.go
package cftree

import "errors"

var (
	// ErrDimensionMismatch is returned by Insert when a point's length
	// does not equal the tree's configured dimension (spec 7).
	ErrDimensionMismatch = errors.New("cftree: point dimension does not match tree dimension")

	// ErrInvalidDimension is returned by New for a non-positive dimension.
	ErrInvalidDimension = errors.New("cftree: dimension must be > 0")

	// ErrInvalidThreshold is returned by New for a non-positive threshold.
	ErrInvalidThreshold = errors.New("cftree: threshold must be > 0")

	// ErrInvalidBudget is returned by New for a negative leaf-entry budget.
	ErrInvalidBudget = errors.New("cftree: leaf-entry budget must be >= 0")

	// ErrInvalidRebuildInterval is returned by New when the rebuild
	// interval is less than 1.
	ErrInvalidRebuildInterval = errors.New("cftree: rebuild interval must be >= 1")
)

// Spec 7 lists OutOfMemory (a node allocation failure during split) as
// fatal, offering two ways to satisfy it: mark the tree unusable, or
// make the split transactional (allocate both new nodes before
// mutating the parent). Go's allocator has no recoverable
// out-of-memory error — make/new panic — so there is no node
// allocation failure to catch and turn into a sentinel error here.
// splitNode and splitRoot take the transactional branch instead:
// both sibling nodes are allocated before parent is touched, so a
// panic during allocation can never leave parent half-updated.
