// SPDX-License-Identifier: MIT
// Package: filtra/build
//
// extract.go — classification of geometric objects by intrinsic dimension.

package build

import (
	"fmt"

	"github.com/katalvlaran/filtra/alphashape"
)

// Stats counts extracted objects per kind. Diagnostics only: the counters
// never influence construction.
type Stats struct {
	Vertices int
	Edges    int
	Facets   int
	Cells    int
}

// Total returns the number of objects counted.
func (s Stats) Total() int { return s.Vertices + s.Edges + s.Facets + s.Cells }

// record increments the counter for the given dimension.
func (s *Stats) record(dim int) {
	switch dim {
	case 0:
		s.Vertices++
	case 1:
		s.Edges++
	case 2:
		s.Facets++
	case 3:
		s.Cells++
	}
}

// Extract classifies obj by intrinsic dimension and returns its incident
// vertex handles exactly as the engine ordered them — no reordering, no
// deduplication (deduplication of identities is the Registry's job).
//
// The classification is exhaustive over the four known kinds; any other
// kind fails with ErrUnknownObject, a fatal contract violation.
//
// Complexity: O(1).
func Extract(obj alphashape.Object) (dim int, verts []alphashape.VertexHandle, err error) {
	switch obj.Kind() {
	case alphashape.KindVertex:
		dim = 0
	case alphashape.KindEdge:
		dim = 1
	case alphashape.KindFacet:
		dim = 2
	case alphashape.KindCell:
		dim = 3
	default:
		return 0, nil, fmt.Errorf("Extract: kind %d: %w", obj.Kind(), ErrUnknownObject)
	}

	return dim, obj.Vertices(), nil
}
