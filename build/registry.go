// SPDX-License-Identifier: MIT
// Package: filtra/build
//
// registry.go — the vertex relabeler: opaque geometric handles to dense
// integer identities.

package build

import (
	"github.com/katalvlaran/filtra/alphashape"
	"github.com/katalvlaran/filtra/core"
)

// Registry is a bidirectional mapping from opaque geometric-vertex handles
// to dense core.VertexID identities, built incrementally.
//
// Invariants:
//   - Identities cover [0, Len()) with no gaps, assigned in strict global
//     first-encounter order across the whole input sequence.
//   - A handle maps to exactly one identity for the registry's lifetime;
//     there is no removal and identities are never reused.
//
// A Registry is exclusively owned by one pipeline invocation.
type Registry struct {
	ids     map[alphashape.VertexHandle]core.VertexID
	handles []alphashape.VertexHandle
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ids: make(map[alphashape.VertexHandle]core.VertexID)}
}

// Resolve returns the dense identity of h, allocating the next identity
// (= current registry size) on first encounter. O(1) amortized; callable
// repeatedly and interleaved with other handles without reset.
func (r *Registry) Resolve(h alphashape.VertexHandle) core.VertexID {
	if id, ok := r.ids[h]; ok {
		return id
	}
	id := core.VertexID(len(r.handles))
	r.ids[h] = id
	r.handles = append(r.handles, h)

	return id
}

// Len returns the number of distinct handles seen so far.
func (r *Registry) Len() int { return len(r.handles) }

// Handle returns the handle that was assigned id, with ok=false for an
// identity that was never allocated.
func (r *Registry) Handle(id core.VertexID) (alphashape.VertexHandle, bool) {
	if id < 0 || int(id) >= len(r.handles) {
		return 0, false
	}

	return r.handles[id], true
}
