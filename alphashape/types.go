// Package alphashape: Object variant, vertex handles, Decomposition, and
// sentinel errors.
package alphashape

import "errors"

// Sentinel errors for the decomposition engine.
var (
	// ErrTooFewPoints indicates fewer than the 4 points a 3D triangulation needs.
	ErrTooFewPoints = errors.New("alphashape: need at least 4 points")

	// ErrDegenerate indicates duplicate points or a cloud with no
	// non-degenerate Delaunay cell (e.g. all points coplanar).
	ErrDegenerate = errors.New("alphashape: degenerate point configuration")
)

// VertexHandle is an opaque handle to a triangulation vertex. The numeric
// value carries no meaning beyond identity: handles are stable for one
// engine run, not dense, and not ordered. Dense integer identities are
// assigned downstream (build.Registry), never here.
type VertexHandle int64

// Kind tags the geometric kind of an Object. The set is closed: exactly
// four kinds exist, and the zero Kind is deliberately invalid so that an
// uninitialized Object is caught by extraction rather than misread.
type Kind uint8

const (
	// KindVertex is a 0-dimensional object with 1 incident vertex.
	KindVertex Kind = iota + 1
	// KindEdge is a 1-dimensional object with 2 incident vertices.
	KindEdge
	// KindFacet is a 2-dimensional object with 3 incident vertices.
	KindFacet
	// KindCell is a 3-dimensional object with 4 incident vertices.
	KindCell
)

// Object is one geometric simplex of the decomposition: a kind plus its
// incident vertex handles in engine order. Objects are immutable values.
type Object struct {
	kind  Kind
	verts [4]VertexHandle
}

// NewVertex returns a vertex Object.
func NewVertex(a VertexHandle) Object {
	return Object{kind: KindVertex, verts: [4]VertexHandle{a}}
}

// NewEdge returns an edge Object with endpoints in the given order.
func NewEdge(a, b VertexHandle) Object {
	return Object{kind: KindEdge, verts: [4]VertexHandle{a, b}}
}

// NewFacet returns a facet Object with corners in the given order.
func NewFacet(a, b, c VertexHandle) Object {
	return Object{kind: KindFacet, verts: [4]VertexHandle{a, b, c}}
}

// NewCell returns a cell Object with corners in the given order.
func NewCell(a, b, c, d VertexHandle) Object {
	return Object{kind: KindCell, verts: [4]VertexHandle{a, b, c, d}}
}

// Kind returns the object's kind tag.
func (o Object) Kind() Kind { return o.kind }

// Vertices returns the incident vertex handles in engine order — no
// reordering, no deduplication. The slice is freshly allocated.
func (o Object) Vertices() []VertexHandle {
	var n int
	switch o.kind {
	case KindVertex:
		n = 1
	case KindEdge:
		n = 2
	case KindFacet:
		n = 3
	case KindCell:
		n = 4
	default:
		return nil
	}
	out := make([]VertexHandle, n)
	copy(out, o.verts[:n])

	return out
}

// Decomposition is the engine's output: Objects and Alphas are parallel
// sequences in emission order (Alphas[i] is the alpha value of Objects[i]).
// Consumers must process them in lockstep.
type Decomposition struct {
	Objects []Object
	Alphas  []float64
}

// Len returns the number of emitted objects.
func (d *Decomposition) Len() int { return len(d.Objects) }
