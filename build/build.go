// SPDX-License-Identifier: MIT
// Package: filtra/build
//
// build.go — the single public orchestrator of the pipeline.
//
// Design contract (strict):
//   - One entry point: Build(dec, opts...). Fresh Registry and Complex per
//     invocation; no shared mutable state, no globals.
//   - Objects are processed strictly in emission order, alphas in lockstep.
//   - Determinism: same decomposition and options ⇒ identical complex.
//   - Safety: never panic; sentinel errors wrapped with object context.

package build

import (
	"fmt"
	"math"

	"github.com/katalvlaran/filtra/alphashape"
	"github.com/katalvlaran/filtra/core"
)

// Build assembles a filtered complex from the decomposition in one
// synchronous pass.
//
// For each (object, alpha) pair in emission order it extracts the handle
// list, resolves every handle through a fresh Registry (dense identities in
// global first-encounter order), computes the filtration value under the
// configured policy (raw alpha by default), and inserts the identity tuple
// into a core.Complex, which tracks running maxima for dimension and max
// filtration. After the pass the complex is frozen and — unless
// WithoutSort is given — ordered by the filtration pass.
//
// Returns the complex, the registry (for handle↔identity lookups), and the
// per-dimension extraction stats.
//
// Errors:
//   - ErrNilDecomposition for a nil input.
//   - ErrAlphaDesync when the object and alpha sequences differ in length;
//     construction aborts, nothing is salvaged.
//   - ErrUnknownObject (wrapped, with object index) for a kind outside the
//     closed set.
//   - core.ErrBadFiltration (wrapped) for a negative or non-finite alpha.
//
// Complexity: O(N log N) time, O(N + V) memory.
func Build(dec *alphashape.Decomposition, opts ...Option) (*core.Complex, *Registry, *Stats, error) {
	if dec == nil {
		return nil, nil, nil, fmt.Errorf("Build: %w", ErrNilDecomposition)
	}
	if len(dec.Objects) != len(dec.Alphas) {
		return nil, nil, nil, fmt.Errorf("Build: %d objects vs %d alphas: %w",
			len(dec.Objects), len(dec.Alphas), ErrAlphaDesync)
	}

	cfg := newBuildConfig(opts...)
	registry := NewRegistry()
	cx := core.NewComplex()
	stats := &Stats{}

	// Reused per object; core.Complex.Add copies the tuple.
	tuple := make([]core.VertexID, 0, core.MaxVertices)

	for i, obj := range dec.Objects {
		dim, verts, err := Extract(obj)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("Build: object %d: %w", i, err)
		}
		stats.record(dim)

		tuple = tuple[:0]
		for _, h := range verts {
			tuple = append(tuple, registry.Resolve(h))
		}

		filtration := dec.Alphas[i]
		if cfg.sqrtFiltration {
			filtration = math.Sqrt(filtration)
		}

		if err = cx.Add(tuple, filtration); err != nil {
			return nil, nil, nil, fmt.Errorf("Build: object %d: %w", i, err)
		}
	}

	cx.Freeze()
	if cfg.sortComplex {
		cx.SortFiltration()
	}

	return cx, registry, stats, nil
}
