// Package alphashape is the geometry engine of the pipeline: it decomposes
// a 3D point cloud into the simplices of its alpha-shape family, each tagged
// with the alpha value at which it appears.
//
// What
//
//   - Object: a tagged variant over the four geometric kinds
//     (Vertex | Edge | Facet | Cell), carrying 1, 2, 3 or 4 opaque
//     VertexHandle values. The kind set is closed; downstream extraction
//     treats anything else as a contract violation.
//   - Decomposition: the engine's output — a sequence of Objects paired,
//     in the same order, with a parallel sequence of alpha values.
//   - Decompose: brute-force 3D Delaunay triangulation (empty-circumsphere
//     test per candidate tetrahedron) followed by the standard alpha-complex
//     filtration: a cell's alpha is its squared circumradius; a face takes
//     its own squared circumradius when Gabriel, otherwise the minimum over
//     its cofaces; vertices enter at alpha 0.
//
// Emission order
//
//	Objects are emitted by ascending (alpha, dimension, canonical vertex
//	order). Because every face's alpha is clamped to at most the minimum of
//	its cofaces, this order places each face before all of its cofaces —
//	the invariant the downstream complex builder relies on.
//
// Scope and scale
//
//	The triangulation is exhaustive over 4-point subsets: O(n⁵) point-in-
//	sphere tests. It targets small reference clouds (tens of points), where
//	determinism and simplicity beat asymptotics. Collinear or coplanar
//	clouds have no 3D Delaunay cell and are rejected with ErrDegenerate.
//
// Errors
//
//	ErrTooFewPoints - fewer than 4 input points.
//	ErrDegenerate   - duplicate points, or no non-degenerate Delaunay cell.
package alphashape
