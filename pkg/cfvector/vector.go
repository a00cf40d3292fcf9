// pkg/cfvector/vector.go
package cfvector

// Point is an ordered sequence of double-precision coordinates. The
// dimension of a Point is fixed once it enters a tree and is never
// changed in place.
type Point []float64

// NewPoint copies values into a new Point so the caller's backing array
// can be reused or mutated without affecting the tree.
func NewPoint(values []float64) Point {
	p := make(Point, len(values))
	copy(p, values)
	return p
}

// Dimension returns the number of coordinates in the point.
func (p Point) Dimension() int {
	return len(p)
}

// Dot returns the dot product of p and o. Callers must ensure both
// points have the same dimension; mismatched points return 0.
func (p Point) Dot(o Point) float64 {
	if len(p) != len(o) {
		return 0
	}
	var sum float64
	for i := range p {
		sum += p[i] * o[i]
	}
	return sum
}

// SquaredNorm returns the squared Euclidean norm ||p||^2.
func (p Point) SquaredNorm() float64 {
	return p.Dot(p)
}
