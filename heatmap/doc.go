// Package heatmap provides persistence heat maps: rasterized persistence
// diagrams with Lᵖ distances between them.
//
// What
//
//   - HeatMap: a rectangular grid of intensities over the square
//     [Min,Max]² of the birth/death plane, stored as a gonum mat.Dense.
//   - FromDiagram: rasterization — every finite interval deposits a
//     Gaussian bump at its (birth, death) point.
//   - Distance: the Lᵖ distance between two equally shaped maps, with
//     InfNorm (-1) selecting L∞.
//   - DistanceMatrix: the symmetric all-pairs matrix over a slice of maps,
//     rows in input order, and FprintMatrix to write it as whitespace-
//     separated rows.
//   - Load/Save: the on-disk format — one "min max" header line, then one
//     whitespace-separated row of values per grid row.
//
// Why
//
//	Persistence diagrams are multisets and awkward to compare directly;
//	heat maps embed them in a vector space where plain norms work.
//
// Errors
//
//	ErrBadGrid       - non-positive resolution or min ≥ max.
//	ErrBadSigma      - non-positive kernel bandwidth.
//	ErrBadNorm       - p neither ≥ 1 nor the InfNorm sentinel.
//	ErrShapeMismatch - maps with different grid shapes.
//	ErrBadFormat     - malformed heat-map file.
package heatmap
