// SPDX-License-Identifier: MIT
// Package: filtra/alphashape
//
// decompose.go — brute-force 3D Delaunay triangulation and alpha-complex
// filtration over a point cloud.
//
// Design contract (strict):
//   - Deterministic: same points ⇒ identical Decomposition, byte for byte.
//     All candidate enumeration runs in canonical index order and the final
//     emission is sorted by (alpha, dimension, vertex tuple).
//   - Monotone: every face's alpha is clamped to at most the minimum alpha
//     of its cofaces, so emission order is face-before-coface.
//   - No panics: degenerate inputs surface as sentinel errors.

package alphashape

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// cell is one Delaunay tetrahedron: canonical (ascending) point indices
// plus its squared circumradius, which is its alpha value.
type cell struct {
	v     [4]int
	alpha float64
}

// Decompose computes the alpha-shape decomposition of points.
//
// Stage 1 (Validate): at least 4 points, no exact duplicates.
// Stage 2 (Delaunay): every 4-subset with a non-degenerate circumsphere
// empty of all other points becomes a cell; alpha = squared circumradius.
// Stage 3 (Filtration): facets and edges of the cells get
// min(own squared circumradius if Gabriel, min over coface alphas);
// every input point becomes a vertex object at alpha 0.
// Stage 4 (Emit): objects sorted by ascending (alpha, dimension, tuple).
//
// Complexity: O(n⁵) time for the triangulation, O(n⁴) space worst case.
// Intended for small reference clouds; see the package comment.
//
// Errors:
//   - ErrTooFewPoints for n < 4.
//   - ErrDegenerate for duplicate points or a cloud without any cell.
func Decompose(points []r3.Vec) (*Decomposition, error) {
	n := len(points)
	if n < 4 {
		return nil, fmt.Errorf("Decompose: %d points: %w", n, ErrTooFewPoints)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if points[i] == points[j] {
				return nil, fmt.Errorf("Decompose: points %d and %d coincide: %w", i, j, ErrDegenerate)
			}
		}
	}

	cells := delaunayCells(points)
	if len(cells) == 0 {
		return nil, fmt.Errorf("Decompose: no Delaunay cell: %w", ErrDegenerate)
	}

	// Minimum coface alpha per facet, collected from the cells.
	facetMin := make(map[[3]int]float64)
	for _, c := range cells {
		for _, f := range facetsOf(c.v) {
			if a, seen := facetMin[f]; !seen || c.alpha < a {
				facetMin[f] = c.alpha
			}
		}
	}

	// Facet alphas: own squared circumradius when Gabriel, else coface min.
	facetAlpha := make(map[[3]int]float64, len(facetMin))
	edgeMin := make(map[[2]int]float64)
	for f, cofaceMin := range facetMin {
		center, r2, ok := circumTriangle(points[f[0]], points[f[1]], points[f[2]])
		alpha := cofaceMin
		if ok && gabriel(points, center, r2, f[:]) && r2 < alpha {
			alpha = r2
		}
		facetAlpha[f] = alpha

		for _, e := range edgesOf(f) {
			if a, seen := edgeMin[e]; !seen || alpha < a {
				edgeMin[e] = alpha
			}
		}
	}

	// Edge alphas, clamped by facet minima the same way.
	edgeAlpha := make(map[[2]int]float64, len(edgeMin))
	for e, cofaceMin := range edgeMin {
		center, r2 := circumEdge(points[e[0]], points[e[1]])
		alpha := cofaceMin
		if gabriel(points, center, r2, e[:]) && r2 < alpha {
			alpha = r2
		}
		edgeAlpha[e] = alpha
	}

	return emit(n, cells, facetAlpha, edgeAlpha), nil
}

// delaunayCells enumerates all empty-circumsphere tetrahedra in canonical
// index order.
func delaunayCells(points []r3.Vec) []cell {
	var cells []cell
	n := len(points)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				for l := k + 1; l < n; l++ {
					center, r2, ok := circumTetrahedron(points[i], points[j], points[k], points[l])
					if !ok {
						continue // coplanar candidate
					}
					if gabriel(points, center, r2, []int{i, j, k, l}) {
						cells = append(cells, cell{v: [4]int{i, j, k, l}, alpha: r2})
					}
				}
			}
		}
	}

	return cells
}

// gabriel reports whether the sphere (center, r2) is empty: no point
// outside the excluded index set lies strictly inside it.
func gabriel(points []r3.Vec, center r3.Vec, r2 float64, exclude []int) bool {
	for m := range points {
		skip := false
		for _, x := range exclude {
			if m == x {
				skip = true

				break
			}
		}
		if skip {
			continue
		}
		if inSphere(points[m], center, r2) {
			return false
		}
	}

	return true
}

// facetsOf returns the four canonical facets of a cell.
func facetsOf(v [4]int) [4][3]int {
	return [4][3]int{
		{v[0], v[1], v[2]},
		{v[0], v[1], v[3]},
		{v[0], v[2], v[3]},
		{v[1], v[2], v[3]},
	}
}

// edgesOf returns the three canonical edges of a facet.
func edgesOf(f [3]int) [3][2]int {
	return [3][2]int{
		{f[0], f[1]},
		{f[0], f[2]},
		{f[1], f[2]},
	}
}

// emission is one pending object with its sort keys.
type emission struct {
	obj   Object
	alpha float64
	dim   int
	key   [4]int
}

// emit assembles and orders the final Decomposition. Vertices cover every
// input point (isolated points included) at alpha 0.
func emit(n int, cells []cell, facetAlpha map[[3]int]float64, edgeAlpha map[[2]int]float64) *Decomposition {
	out := make([]emission, 0, n+len(edgeAlpha)+len(facetAlpha)+len(cells))

	for i := 0; i < n; i++ {
		out = append(out, emission{
			obj: NewVertex(VertexHandle(i)), alpha: 0, dim: 0, key: [4]int{i, -1, -1, -1},
		})
	}
	for e, a := range edgeAlpha {
		out = append(out, emission{
			obj: NewEdge(VertexHandle(e[0]), VertexHandle(e[1])), alpha: a, dim: 1, key: [4]int{e[0], e[1], -1, -1},
		})
	}
	for f, a := range facetAlpha {
		out = append(out, emission{
			obj:   NewFacet(VertexHandle(f[0]), VertexHandle(f[1]), VertexHandle(f[2])),
			alpha: a, dim: 2, key: [4]int{f[0], f[1], f[2], -1},
		})
	}
	for _, c := range cells {
		out = append(out, emission{
			obj:   NewCell(VertexHandle(c.v[0]), VertexHandle(c.v[1]), VertexHandle(c.v[2]), VertexHandle(c.v[3])),
			alpha: c.alpha, dim: 3, key: c.v,
		})
	}

	// Deterministic face-before-coface emission order.
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.alpha != b.alpha {
			return a.alpha < b.alpha
		}
		if a.dim != b.dim {
			return a.dim < b.dim
		}
		for x := 0; x < 4; x++ {
			if a.key[x] != b.key[x] {
				return a.key[x] < b.key[x]
			}
		}

		return false
	})

	dec := &Decomposition{
		Objects: make([]Object, len(out)),
		Alphas:  make([]float64, len(out)),
	}
	for i, e := range out {
		dec.Objects[i] = e.obj
		// Guard against negative float noise from the clamped minima.
		dec.Alphas[i] = math.Max(e.alpha, 0)
	}

	return dec
}
