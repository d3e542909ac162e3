// SPDX-License-Identifier: MIT
// Package: filtra/persistence
//
// reduction.go — boundary-matrix column reduction in filtration order.
//
// Design contract (strict):
//   - Validate everything up front (frozen, face-closed, duplicate-free,
//     ordered); the reduction itself assumes a well-formed input.
//   - Deterministic: one pass, no randomness, stable interval order.
//   - Sentinel errors only; no panics on user input.

package persistence

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/filtra/core"
)

// tupleKey is a canonical (sorted, padded) simplex identity used for facet
// lookups. n distinguishes tuple lengths.
type tupleKey struct {
	n int
	v [4]core.VertexID
}

// keyOf canonicalizes a vertex tuple.
func keyOf(verts []core.VertexID) tupleKey {
	k := tupleKey{n: len(verts)}
	copy(k.v[:], verts)
	sorted := k.v[:k.n]
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	return k
}

// chain is a sparse Z/p column: simplex index → non-zero coefficient.
type chain map[int]int

// Compute reduces the boundary matrix of the ordered complex c over Z/p
// and returns the persistence diagram.
//
// characteristic must be a prime > 1; minPersistence ≥ -1, where RetainAll
// (-1) keeps every interval. An interval survives when
// death − birth > minPersistence; essential classes always survive.
//
// The complex must be frozen and in filtration order (SortFiltration),
// closed under faces, and free of duplicate tuples — all verified here
// before any reduction work.
//
// Complexity: O(N³) worst case, O(N²) memory worst case.
func Compute(c *core.Complex, characteristic int, minPersistence float64) (Diagram, error) {
	if c == nil {
		return nil, fmt.Errorf("Compute: %w", ErrNilComplex)
	}
	if !c.Frozen() {
		return nil, fmt.Errorf("Compute: %w", ErrNotFrozen)
	}
	if !isPrime(characteristic) {
		return nil, fmt.Errorf("Compute: characteristic %d: %w", characteristic, ErrBadCharacteristic)
	}
	if minPersistence < RetainAll {
		return nil, fmt.Errorf("Compute: threshold %v: %w", minPersistence, ErrBadThreshold)
	}

	boundaries, err := boundaryColumns(c, characteristic)
	if err != nil {
		return nil, err
	}

	return reduce(c, boundaries, characteristic, minPersistence), nil
}

// boundaryColumns builds the sparse boundary column of every simplex and
// validates face closure, duplicates, and ordering along the way.
func boundaryColumns(c *core.Complex, p int) ([]chain, error) {
	n := c.Len()
	index := make(map[tupleKey]int, n)
	for i := 0; i < n; i++ {
		k := keyOf(c.At(i).Vertices)
		if _, dup := index[k]; dup {
			return nil, fmt.Errorf("Compute: simplex %d: %w", i, ErrDuplicateSimplex)
		}
		index[k] = i
	}

	columns := make([]chain, n)
	face := make([]core.VertexID, 0, core.MaxVertices-1)
	for i := 0; i < n; i++ {
		verts := c.At(i).Vertices
		if len(verts) == 1 {
			continue // vertices have an empty boundary
		}

		// Canonical orientation: faces of the ascending tuple with
		// alternating signs.
		sorted := keyOf(verts)
		col := make(chain, len(verts))
		sign := 1
		for drop := 0; drop < sorted.n; drop++ {
			face = face[:0]
			for j := 0; j < sorted.n; j++ {
				if j != drop {
					face = append(face, sorted.v[j])
				}
			}
			fi, present := index[keyOf(face)]
			if !present {
				return nil, fmt.Errorf("Compute: simplex %d misses face %v: %w", i, face, ErrIncompleteComplex)
			}
			if fi >= i {
				return nil, fmt.Errorf("Compute: simplex %d precedes its face %v: %w", i, face, ErrUnordered)
			}
			col[fi] = mod(col[fi]+sign, p)
			sign = -sign
		}
		columns[i] = col
	}

	return columns, nil
}

// reduce runs the column reduction with the twist-free pivot pairing and
// assembles the filtered diagram.
func reduce(c *core.Complex, columns []chain, p int, minPersistence float64) Diagram {
	n := c.Len()
	// lowToCol[i] = reduced column whose pivot (largest index) is i.
	lowToCol := make(map[int]chain, n)
	// killer[i] = column that paired with creator i.
	killer := make(map[int]int, n)
	creator := make([]bool, n)

	for j := 0; j < n; j++ {
		col := columns[j]
		for len(col) > 0 {
			pivot := maxIndex(col)
			other, claimed := lowToCol[pivot]
			if !claimed {
				lowToCol[pivot] = col
				killer[pivot] = j

				break
			}
			// Cancel the pivot: col += mult * other (mod p).
			mult := mod(-col[pivot]*inverse(other[pivot], p), p)
			for i, coef := range other {
				v := mod(col[i]+mult*coef, p)
				if v == 0 {
					delete(col, i)
				} else {
					col[i] = v
				}
			}
		}
		if len(col) == 0 {
			creator[j] = true
		}
	}

	var d Diagram
	for i := 0; i < n; i++ {
		if !creator[i] {
			continue
		}
		iv := Interval{Dim: c.At(i).Dim(), Birth: c.At(i).Filtration}
		if j, paired := killer[i]; paired {
			iv.Death = c.At(j).Filtration
		} else {
			iv.Death = math.Inf(1)
		}
		if iv.Persistence() > minPersistence {
			d = append(d, iv)
		}
	}

	sort.SliceStable(d, func(a, b int) bool {
		if d[a].Dim != d[b].Dim {
			return d[a].Dim < d[b].Dim
		}
		if d[a].Birth != d[b].Birth {
			return d[a].Birth < d[b].Birth
		}

		return d[a].Death < d[b].Death
	})

	return d
}

// maxIndex returns the largest simplex index carrying a non-zero
// coefficient in col.
func maxIndex(col chain) int {
	pivot := -1
	for i := range col {
		if i > pivot {
			pivot = i
		}
	}

	return pivot
}
