// SPDX-License-Identifier: MIT
// Package: filtra/build
//
// errors.go — sentinel errors for the pipeline.
//
// Error policy (explicit and strict):
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is.
//   - Implementations attach context via fmt.Errorf("...: %w", ErrX).
//   - No panics on user-triggered conditions.

package build

import "errors"

// ErrNilDecomposition indicates a nil *alphashape.Decomposition input.
var ErrNilDecomposition = errors.New("build: decomposition is nil")

// ErrUnknownObject indicates a geometric object outside the closed
// {Vertex, Edge, Facet, Cell} kind set. This signals a contract violation
// between the geometry engine and extraction; it should be structurally
// unreachable for a well-formed engine.
var ErrUnknownObject = errors.New("build: unknown geometric object kind")

// ErrAlphaDesync indicates that the object sequence and the alpha-value
// sequence have different lengths. The pipeline aborts rather than
// fabricate filtration values for the remainder.
var ErrAlphaDesync = errors.New("build: object and alpha sequences out of sync")
