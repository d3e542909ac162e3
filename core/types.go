// Package core defines the central Simplex and Complex types for filtered
// simplicial complexes, and the filtration ordering pass.
//
// This file declares VertexID, Simplex, Complex, sentinel errors, and the
// NewComplex constructor.
//
// Errors:
//
//	ErrBadSimplex    - vertex tuple empty or longer than MaxVertices.
//	ErrBadFiltration - filtration value negative, NaN or ±Inf.
//	ErrFrozen        - insertion attempted on a frozen complex.
package core

import "errors"

// Sentinel errors for complex construction.
var (
	// ErrBadSimplex indicates a vertex tuple of invalid length (must be 1..MaxVertices).
	ErrBadSimplex = errors.New("core: simplex must have 1..4 vertices")

	// ErrBadFiltration indicates a filtration value that is negative, NaN or infinite.
	ErrBadFiltration = errors.New("core: filtration value must be finite and non-negative")

	// ErrFrozen indicates an Add on a complex that was already frozen.
	ErrFrozen = errors.New("core: complex is frozen")
)

// MaxVertices is the largest vertex tuple a Simplex may carry: a cell
// (3-simplex) has four incident vertices. The bound mirrors the 3D
// alpha-shape decomposition feeding the pipeline.
const MaxVertices = 4

// VertexID is a dense integer vertex identity. IDs are assigned upstream in
// strict first-encounter order and cover [0, V) with no gaps; core treats
// them as opaque labels.
type VertexID int

// Simplex is one filtered simplex: an ordered tuple of 1–4 dense vertex
// identities and the filtration value at which it enters the complex.
//
// The tuple is stored as received — not sorted, not deduplicated. Its
// dimension is len(Vertices)-1.
type Simplex struct {
	// Vertices is the ordered identity tuple, length 1..MaxVertices.
	Vertices []VertexID

	// Filtration is the non-negative appearance value of this simplex.
	Filtration float64
}

// Dim returns the dimension of the simplex (tuple length − 1).
func (s Simplex) Dim() int { return len(s.Vertices) - 1 }

// Complex is a filtered simplicial complex under construction: an
// append-only simplex list plus two derived running maxima.
//
// Lifecycle: NewComplex → Add (one pass) → Freeze → SortFiltration →
// hand off to persistence. A Complex is never shared across invocations.
type Complex struct {
	simplices []Simplex

	// Running maxima, updated on every Add, frozen by Freeze.
	maxFiltration float64
	dimension     int

	frozen bool
}

// NewComplex returns an empty, unfrozen complex.
// The dimension of an empty complex is -1 by convention; the first inserted
// vertex raises it to 0.
func NewComplex() *Complex {
	return &Complex{dimension: -1}
}
