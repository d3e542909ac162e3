// SPDX-License-Identifier: MIT
// Package: filtra/pointcloud
//
// dtm.go — distance to the empirical measure of a point cloud.

package pointcloud

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for DTM.
var (
	// ErrBadK indicates a neighbor count outside [1, n-1].
	ErrBadK = errors.New("pointcloud: k must be in [1, n-1]")

	// ErrBadQ indicates a non-positive power.
	ErrBadQ = errors.New("pointcloud: q must be > 0")
)

// DTM returns, for every point, the distance to the empirical measure of
// the cloud: the q-power mean of the distances to its k nearest neighbors
// (the point itself excluded).
//
//	dtm[i] = ( Σ_{k nearest j} ‖pᵢ−pⱼ‖^q / k )^(1/q)
//
// Brute force: O(n² log n) time, O(n) extra memory.
func DTM(points []r3.Vec, k int, q float64) ([]float64, error) {
	n := len(points)
	if k < 1 || k > n-1 {
		return nil, fmt.Errorf("DTM: k=%d with %d points: %w", k, n, ErrBadK)
	}
	if q <= 0 {
		return nil, fmt.Errorf("DTM: q=%g: %w", q, ErrBadQ)
	}

	out := make([]float64, n)
	dists := make([]float64, 0, n-1)
	powers := make([]float64, k)
	for i, p := range points {
		dists = dists[:0]
		for j, o := range points {
			if j == i {
				continue
			}
			d := r3.Sub(p, o)
			dists = append(dists, math.Sqrt(r3.Dot(d, d)))
		}
		sort.Float64s(dists)

		for x := 0; x < k; x++ {
			powers[x] = math.Pow(dists[x], q)
		}
		out[i] = math.Pow(floats.Sum(powers)/float64(k), 1/q)
	}

	return out, nil
}
