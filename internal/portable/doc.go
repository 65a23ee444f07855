// Package portable maps raw symbol graph type references into a portable,
// source-independent type representation and collects the data-facing items
// (structs, enums, aliases) into a model for binding generation.
//
// Key types:
//   - Type: the portable IR (Special | Generic | Simple)
//   - SpecialKind: the fixed primitive table with exact-name matching
//   - Normalizer: recursive raw-reference → IR mapping
//   - Model / Builder: the collected data shapes keyed by graph Id
package portable
