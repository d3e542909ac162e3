// SPDX-License-Identifier: MIT
// Package: filtra/core
//
// complex.go — Complex mutation, freezing, getters, and the ordering pass.
//
// Design contract (strict):
//   - Add validates tuple length and filtration finiteness; no other checks.
//     The face-before-coface filtration invariant is trusted from upstream.
//   - MaxFiltration and Dimension are running maxima; Freeze snapshots them
//     by locking the complex — they are never recomputed afterwards.
//   - SortFiltration is stable and idempotent; it is the only reordering
//     operation and is legal on a frozen complex.

package core

import (
	"fmt"
	"math"
	"sort"
)

// Add appends one simplex with the given identity tuple and filtration
// value, updating the running MaxFiltration and Dimension maxima.
//
// The tuple is copied; callers may reuse their slice. Tuple order is
// preserved as received.
//
// Errors:
//   - ErrFrozen if Freeze was already called.
//   - ErrBadSimplex if len(vertices) is 0 or exceeds MaxVertices.
//   - ErrBadFiltration if filtration is negative, NaN or infinite.
//
// Complexity: O(len(vertices)) per call, amortized O(1) appends.
func (c *Complex) Add(vertices []VertexID, filtration float64) error {
	if c.frozen {
		return fmt.Errorf("Complex.Add: %w", ErrFrozen)
	}
	if len(vertices) == 0 || len(vertices) > MaxVertices {
		return fmt.Errorf("Complex.Add: tuple length %d: %w", len(vertices), ErrBadSimplex)
	}
	if math.IsNaN(filtration) || math.IsInf(filtration, 0) || filtration < 0 {
		return fmt.Errorf("Complex.Add: value %v: %w", filtration, ErrBadFiltration)
	}

	// Own the tuple: no aliasing with caller memory.
	tuple := make([]VertexID, len(vertices))
	copy(tuple, vertices)
	c.simplices = append(c.simplices, Simplex{Vertices: tuple, Filtration: filtration})

	// Running maxima (frozen later, not recomputed).
	if filtration > c.maxFiltration {
		c.maxFiltration = filtration
	}
	if d := len(tuple) - 1; d > c.dimension {
		c.dimension = d
	}

	return nil
}

// Freeze ends the construction pass: subsequent Add calls fail with
// ErrFrozen and the derived attributes keep their final running values.
// Freeze is idempotent.
func (c *Complex) Freeze() { c.frozen = true }

// Frozen reports whether Freeze has been called.
func (c *Complex) Frozen() bool { return c.frozen }

// Len returns the number of simplices in the complex.
func (c *Complex) Len() int { return len(c.simplices) }

// At returns the i-th simplex in the current order.
// The returned Simplex shares its vertex slice with the complex; treat it
// as read-only. Panics on out-of-range i (programmer error, as with slices).
func (c *Complex) At(i int) Simplex { return c.simplices[i] }

// MaxFiltration returns the maximum filtration value among all inserted
// simplices (0 for an empty complex).
func (c *Complex) MaxFiltration() float64 { return c.maxFiltration }

// Dimension returns the maximum simplex dimension among all inserted
// simplices (-1 for an empty complex).
func (c *Complex) Dimension() int { return c.dimension }

// SortFiltration imposes the total order required by persistent-homology
// reduction: ascending filtration value, ties broken by ascending
// dimension, then by previous (insertion) order.
//
// Whenever face-filtration ≤ coface-filtration holds for every incidence —
// guaranteed by the geometry engine, not re-verified here — this order
// places every face strictly before all of its cofaces.
//
// The sort is stable, hence idempotent: re-applying it to an already
// ordered complex yields the identical sequence. Legal on a frozen complex.
//
// Complexity: O(N log N) time, O(log N) stack.
func (c *Complex) SortFiltration() {
	sort.SliceStable(c.simplices, func(i, j int) bool {
		a, b := c.simplices[i], c.simplices[j]
		if a.Filtration != b.Filtration {
			return a.Filtration < b.Filtration
		}

		return a.Dim() < b.Dim()
	})
}
