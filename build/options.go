// SPDX-License-Identifier: MIT
// Package: filtra/build
//
// options.go — functional configuration for the pipeline.
//
// Design:
//   - buildConfig is the single source of truth for all pipeline knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newBuildConfig applies options in order (later overrides earlier).
//
// AI-Hints:
//   - WithSqrtFiltration changes the scale of every downstream birth/death
//     value; pick one policy per experiment and keep it fixed.
//   - WithoutSort is for callers that re-order the complex themselves;
//     persistence.Compute rejects unordered input.

package build

// buildConfig aggregates all pipeline knobs. It is passed by value
// (immutable to callers).
type buildConfig struct {
	// sqrtFiltration applies √alpha instead of the raw alpha value.
	sqrtFiltration bool
	// sortComplex runs the filtration ordering pass after freezing.
	sortComplex bool
}

// Deterministic defaults (named, no magic values).
const (
	// defaultSqrtFiltration keeps the raw alpha value as filtration.
	defaultSqrtFiltration = false
	// defaultSortComplex applies the ordering pass after construction.
	defaultSortComplex = true
)

// Option configures one Build invocation.
type Option func(*buildConfig)

// WithSqrtFiltration selects the alternative filtration policy: the
// square root of each alpha value instead of the raw value. This is an
// explicit, documented choice — the default is always the raw value.
func WithSqrtFiltration() Option {
	return func(cfg *buildConfig) { cfg.sqrtFiltration = true }
}

// WithoutSort skips the final ordering pass, leaving the complex in
// emission order. The caller becomes responsible for ordering before any
// persistence computation.
func WithoutSort() Option {
	return func(cfg *buildConfig) { cfg.sortComplex = false }
}

// newBuildConfig resolves defaults and applies opts in order.
// Complexity: O(len(opts)).
func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{
		sqrtFiltration: defaultSqrtFiltration,
		sortComplex:    defaultSortComplex,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
