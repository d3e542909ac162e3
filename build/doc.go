// Package build is the extraction-and-relabeling pipeline: it turns a
// geometric alpha-shape decomposition (opaque vertex handles, per-object
// alpha values) into a compact, consistently indexed, filtration-ordered
// abstract complex ready for persistent homology.
//
// What
//
//   - Extract: classifies one alphashape.Object by intrinsic dimension and
//     returns its incident vertex handles in engine order. The four-kind
//     set is closed; anything else is a contract violation
//     (ErrUnknownObject).
//   - Registry: maps each opaque handle to a dense integer identity in
//     strict global first-encounter order — [0, V), no gaps, no reuse,
//     bidirectional lookup.
//   - Build: one synchronous pass over the decomposition, in emission
//     order: extract, resolve handles, attach the filtration value, insert
//     into a core.Complex with running maxima, then freeze and apply the
//     ordering pass.
//
// Filtration policy
//
//	The filtration value is the raw alpha value. The alternative policy —
//	its square root — exists as an explicit option (WithSqrtFiltration)
//	and is never applied silently.
//
// Failure model
//
//	The object and alpha sequences must have equal length and are consumed
//	in lockstep. Any length mismatch is a hard construction error
//	(ErrAlphaDesync): continuing past an exhausted alpha sequence would
//	silently fabricate filtration values.
//
// Concurrency
//
//	None. Registry and the produced Complex belong to one invocation;
//	Build is a batch computation with no suspension points.
//
// Complexity (N = objects, V = distinct handles)
//
//   - Time O(N log N) (the ordering pass dominates), memory O(N + V).
package build
