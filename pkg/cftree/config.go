// pkg/cftree/config.go
package cftree

// DefaultPageSize is the reference page size used to derive a node's
// branching factor (spec 3.3).
const DefaultPageSize = 4096

// DefaultRebuildInterval matches spec 8's end-to-end scenarios.
const DefaultRebuildInterval = 1000

// DefaultThreshold matches spec 8's end-to-end scenarios.
const DefaultThreshold = 0.5

// Config holds the construction parameters for a Tree (spec 3.5).
type Config struct {
	// Dimension is the fixed dimension D of every point the tree will
	// absorb.
	Dimension int

	// PageSize drives the node branching factor B via Capacity
	// (spec 3.3). Zero selects DefaultPageSize.
	PageSize int

	// Threshold is the absorb radius T; must be > 0.
	Threshold float64

	// Budget is the leaf-entry budget K; 0 means unbounded.
	Budget int

	// RebuildInterval is the number of insertions between rebuild
	// checks (R); must be >= 1.
	RebuildInterval int

	// Descend selects the distance function used to pick the closest
	// entry during descent and as the farthest-pair seed metric.
	Descend DistanceKind

	// Absorb selects the distance function used to test whether a new
	// point should be absorbed into the closest leaf entry.
	Absorb DistanceKind
}

// DefaultConfig returns a Config for the given dimension using the
// reference parameters from spec 4.1 (D0 for both descent and absorb)
// and spec 8's end-to-end scenario parameters (T=0.5, K=0, R=1000).
func DefaultConfig(dim int) Config {
	return Config{
		Dimension:       dim,
		PageSize:        DefaultPageSize,
		Threshold:       DefaultThreshold,
		Budget:          0,
		RebuildInterval: DefaultRebuildInterval,
		Descend:         D0Kind,
		Absorb:          D0Kind,
	}
}
