// Package filtra turns 3D point clouds into persistence diagrams — from
// alpha-shape decomposition to filtered simplicial complexes and Z/p
// persistent homology.
//
// 🚀 What is filtra?
//
//	A deterministic, in-memory computational-topology library:
//		• Core primitives: filtered simplices, complexes, filtration ordering
//		• Geometry engine: brute-force 3D Delaunay + alpha-complex filtration
//		• Pipeline: extraction, vertex relabeling, complex construction
//		• Homology: boundary-matrix reduction over a prime field Z/p
//		• Representations: persistence heat maps with Lᵖ distances
//		• I/O: OFF point-cloud reader, diagram and matrix writers
//
// ✨ Why choose filtra?
//
//   - Deterministic – same cloud, same options ⇒ identical diagram
//   - Batch-oriented – one linear pass, no goroutines, no hidden state
//   - Strict errors – package sentinels, errors.Is everywhere, no panics
//   - Small surface – each package does one thing with a minimal API
//
// Everything is organized under flat subpackages:
//
//	alphashape/  — geometric decomposition: Delaunay cells & alpha values
//	build/       — decomposition → filtered complex pipeline
//	core/        — Simplex, Complex, filtration ordering
//	heatmap/     — persistence heat maps + Lᵖ distance matrices
//	persistence/ — Z/p persistent homology & diagram output
//	pointcloud/  — OFF files and distance-to-measure
//
// Quick pipeline sketch:
//
//	points ──▶ alphashape.Decompose ──▶ build.Build ──▶ persistence.Compute
//	                                                         │
//	                                        (dim, birth, death) intervals
//
// Two reference binaries live under cmd/: alphapersist (cloud → diagram)
// and heatmapdist (all-pairs heat-map distances).
//
//	go get github.com/katalvlaran/filtra
package filtra
