// SPDX-License-Identifier: MIT
// Package: filtra/heatmap
//
// distance.go — Lᵖ and L∞ distances between heat maps, and the all-pairs
// distance matrix.

package heatmap

import (
	"fmt"
	"io"
	"math"
)

// Distance returns the Lᵖ distance between h and o for p ≥ 1, or the L∞
// distance when p is InfNorm. Both maps must share the same grid shape.
//
// Complexity: O(cells).
func (h *HeatMap) Distance(o *HeatMap, p float64) (float64, error) {
	if p != InfNorm && p < 1 {
		return 0, fmt.Errorf("Distance: p=%g: %w", p, ErrBadNorm)
	}
	hr, hc := h.Dims()
	or, oc := o.Dims()
	if hr != or || hc != oc {
		return 0, fmt.Errorf("Distance: %dx%d vs %dx%d: %w", hr, hc, or, oc, ErrShapeMismatch)
	}

	var acc float64
	for i := 0; i < hr; i++ {
		for j := 0; j < hc; j++ {
			diff := math.Abs(h.grid.At(i, j) - o.grid.At(i, j))
			if p == InfNorm {
				acc = math.Max(acc, diff)
			} else {
				acc += math.Pow(diff, p)
			}
		}
	}
	if p == InfNorm {
		return acc, nil
	}

	return math.Pow(acc, 1/p), nil
}

// DistanceMatrix computes the symmetric all-pairs distance matrix of maps,
// rows and columns in input order.
func DistanceMatrix(maps []*HeatMap, p float64) ([][]float64, error) {
	n := len(maps)
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d, err := maps[i].Distance(maps[j], p)
			if err != nil {
				return nil, fmt.Errorf("DistanceMatrix: maps %d,%d: %w", i, j, err)
			}
			out[i][j], out[j][i] = d, d
		}
	}

	return out, nil
}

// FprintMatrix writes the matrix as whitespace-separated rows, one input
// per row, mirroring the on-screen and on-disk layout of the distance
// utility.
func FprintMatrix(w io.Writer, m [][]float64) error {
	for _, row := range m {
		for j, v := range row {
			sep := " "
			if j == len(row)-1 {
				sep = "\n"
			}
			if _, err := fmt.Fprintf(w, "%g%s", v, sep); err != nil {
				return fmt.Errorf("FprintMatrix: %w", err)
			}
		}
	}

	return nil
}
