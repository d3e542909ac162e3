// Package heatmap: HeatMap type, construction and rasterization.
package heatmap

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/filtra/persistence"
	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for heat-map operations.
var (
	// ErrBadGrid indicates a non-positive resolution or an empty range.
	ErrBadGrid = errors.New("heatmap: resolution must be > 0 and min < max")

	// ErrBadSigma indicates a non-positive Gaussian bandwidth.
	ErrBadSigma = errors.New("heatmap: sigma must be > 0")

	// ErrBadNorm indicates an exponent that is neither >= 1 nor InfNorm.
	ErrBadNorm = errors.New("heatmap: norm exponent must be >= 1 or InfNorm")

	// ErrShapeMismatch indicates two maps with different grid shapes.
	ErrShapeMismatch = errors.New("heatmap: grid shapes differ")

	// ErrBadFormat indicates a malformed heat-map file.
	ErrBadFormat = errors.New("heatmap: malformed file")
)

// InfNorm is the exponent sentinel selecting the L∞ distance.
const InfNorm = -1.0

// HeatMap is a rasterized persistence diagram: intensities over the square
// [Min,Max]² of the birth/death plane, row i spanning death values and
// column j spanning birth values.
type HeatMap struct {
	// Min and Max bound the represented birth/death range.
	Min, Max float64

	grid *mat.Dense
}

// New returns a zero heat map with resolution×resolution cells over
// [min,max]².
func New(resolution int, min, max float64) (*HeatMap, error) {
	if resolution <= 0 || min >= max {
		return nil, fmt.Errorf("New: resolution %d, range [%g,%g]: %w", resolution, min, max, ErrBadGrid)
	}

	return &HeatMap{Min: min, Max: max, grid: mat.NewDense(resolution, resolution, nil)}, nil
}

// Dims returns the grid shape (rows, cols).
func (h *HeatMap) Dims() (rows, cols int) { return h.grid.Dims() }

// At returns the intensity of cell (i, j).
func (h *HeatMap) At(i, j int) float64 { return h.grid.At(i, j) }

// FromDiagram rasterizes a persistence diagram: every finite interval adds
// a Gaussian bump of bandwidth sigma at its (birth, death) point.
// Essential intervals have no death coordinate and are skipped.
//
// Complexity: O(resolution² · |d|).
func FromDiagram(d persistence.Diagram, resolution int, sigma, min, max float64) (*HeatMap, error) {
	h, err := New(resolution, min, max)
	if err != nil {
		return nil, fmt.Errorf("FromDiagram: %w", err)
	}
	if sigma <= 0 {
		return nil, fmt.Errorf("FromDiagram: sigma %g: %w", sigma, ErrBadSigma)
	}

	step := (max - min) / float64(resolution)
	inv := 1 / (2 * sigma * sigma)
	for _, iv := range d {
		if iv.Essential() {
			continue
		}
		for i := 0; i < resolution; i++ {
			death := min + (float64(i)+0.5)*step
			for j := 0; j < resolution; j++ {
				birth := min + (float64(j)+0.5)*step
				db := birth - iv.Birth
				dd := death - iv.Death
				h.grid.Set(i, j, h.grid.At(i, j)+math.Exp(-(db*db+dd*dd)*inv))
			}
		}
	}

	return h, nil
}
