// Package core provides the abstract side of the pipeline: filtered
// simplices, the filtered complex, and the filtration ordering required by
// persistent-homology reduction.
//
// What
//
//   - Simplex: an ordered tuple of 1–4 dense VertexID values plus one
//     non-negative filtration value (its "appearance time").
//   - Complex: an append-only collection of simplices with two derived
//     attributes, MaxFiltration and Dimension, maintained as running maxima
//     during insertion and frozen once after the construction pass.
//   - SortFiltration: the ordering pass — a stable total order by ascending
//     filtration, then ascending dimension, then insertion order.
//
// Why
//
//   - Persistent-homology reduction consumes simplices strictly in
//     filtration order with every face preceding its cofaces. Complex is
//     the hand-off structure between geometric extraction and reduction.
//
// Invariants
//
//   - Vertex identities are dense integers assigned upstream (see build);
//     core never inspects geometry.
//   - A simplex's filtration value must be ≥ that of each of its faces.
//     Core trusts the producer and does not re-verify this property;
//     persistence.Compute validates face presence and order on entry.
//   - MaxFiltration and Dimension are frozen snapshots of running maxima,
//     never recomputed lazily.
//
// Concurrency
//
//	None. A Complex is exclusively owned by one pipeline invocation for its
//	whole lifetime. No locks, no goroutines, batch semantics.
//
// Complexity (N = simplices)
//
//   - Add: O(1) amortized. SortFiltration: O(N log N). Getters: O(1).
//
// Errors
//
//	ErrBadSimplex    - vertex tuple empty or longer than 4.
//	ErrBadFiltration - filtration value negative, NaN or ±Inf.
//	ErrFrozen        - Add called after Freeze.
package core
