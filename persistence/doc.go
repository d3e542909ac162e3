// Package persistence computes the persistence diagram of an ordered
// filtered complex over a prime coefficient field Z/p.
//
// What
//
//   - Compute: standard boundary-matrix column reduction in filtration
//     order with Z/p coefficients. Each simplex either creates a homology
//     class (its reduced boundary vanishes) or kills the youngest class
//     among its faces (the pivot pairing). Paired simplices yield
//     (dimension, birth, death) intervals; unpaired creators yield
//     essential intervals with death = +Inf.
//   - Interval filtering: an interval survives when death − birth exceeds
//     the minimum-persistence threshold; the sentinel threshold −1 retains
//     every interval, zero-length ones included.
//   - Fprint: the diagram writer — one "p dim birth death" line per
//     interval, "inf" for essential classes.
//
// Preconditions
//
//	Compute validates its input before touching coefficients: the complex
//	must be frozen, closed under faces (every proper facet present), free
//	of duplicate simplices, and ordered face-before-coface. Violations
//	surface as sentinels, never as wrong diagrams.
//
// Complexity (N = simplices)
//
//	O(N³) worst case for the reduction, near-linear on typical alpha
//	complexes. Memory O(N²) worst case for retained reduced columns.
//
// Errors
//
//	ErrNilComplex        - nil complex.
//	ErrNotFrozen         - complex still accepting insertions.
//	ErrBadCharacteristic - field characteristic not a prime > 1.
//	ErrBadThreshold      - minimum persistence below -1.
//	ErrIncompleteComplex - a simplex is missing one of its facets.
//	ErrDuplicateSimplex  - the same vertex tuple inserted twice.
//	ErrUnordered         - a facet ordered after one of its cofaces.
package persistence
