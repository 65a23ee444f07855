// Package extract turns one symbol graph into a deterministic, deduplicated
// public API model.
//
// The pipeline: FindRoots discovers traversal seeds from marker-trait
// implementations; ItemProcessor drains a front-inserted work queue into
// root-to-item paths, inlining re-exports, pruning implementation noise, and
// breaking cycles; RenderingContext renders finished paths and exposes the
// id-to-items multiplicity map; Assemble filters to data-shape kinds and
// sorts by the (priority, name) path.
//
// Key types:
//   - PathComponent: one step from a root to a target
//   - IntermediatePublicItem: a finished path ending at a target item
//   - ItemProcessor: the work-queue traversal engine
//   - PublicAPI: the sorted, filtered output plus missing-Id diagnostics
package extract
