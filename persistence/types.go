// Package persistence: diagram types and sentinel errors.
package persistence

import (
	"errors"
	"math"
)

// Sentinel errors for persistence computation.
var (
	// ErrNilComplex indicates a nil *core.Complex input.
	ErrNilComplex = errors.New("persistence: complex is nil")

	// ErrNotFrozen indicates a complex that was not frozen after construction.
	ErrNotFrozen = errors.New("persistence: complex is not frozen")

	// ErrBadCharacteristic indicates a field characteristic that is not a prime > 1.
	ErrBadCharacteristic = errors.New("persistence: characteristic must be a prime > 1")

	// ErrBadThreshold indicates a minimum-persistence threshold below -1.
	ErrBadThreshold = errors.New("persistence: minimum persistence must be >= -1")

	// ErrIncompleteComplex indicates a simplex whose facet is absent: the
	// complex is not closed under taking faces.
	ErrIncompleteComplex = errors.New("persistence: complex is not closed under faces")

	// ErrDuplicateSimplex indicates the same vertex tuple appearing twice.
	ErrDuplicateSimplex = errors.New("persistence: duplicate simplex")

	// ErrUnordered indicates a facet positioned after one of its cofaces;
	// run core.Complex.SortFiltration before computing.
	ErrUnordered = errors.New("persistence: complex is not in filtration order")
)

// RetainAll is the minimum-persistence sentinel that keeps every interval,
// zero-length ones included.
const RetainAll = -1.0

// Interval is one persistence interval: a topological feature of the given
// dimension born at Birth and dying at Death. Death = +Inf marks an
// essential class that survives to the end of the filtration.
type Interval struct {
	Dim   int
	Birth float64
	Death float64
}

// Essential reports whether the feature never dies.
func (iv Interval) Essential() bool { return math.IsInf(iv.Death, 1) }

// Persistence returns Death − Birth (+Inf for essential classes).
func (iv Interval) Persistence() float64 { return iv.Death - iv.Birth }

// Diagram is the multiset of intervals produced by Compute, sorted by
// ascending (dimension, birth, death).
type Diagram []Interval
