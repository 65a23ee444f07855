// Package symbolgraph models the rustdoc JSON symbol graph.
//
// It provides a decoded, read-only view of one compiled library: items keyed
// by opaque Ids, the kind-tagged payload of each item, raw type references,
// and a Graph wrapper that records referenced-but-absent Ids.
//
// Key types:
//   - ID: opaque node identifier; may be referenced without being present
//   - Item: one kind-tagged node with its payload
//   - Type: one raw type reference (resolved path, primitive, tuple, ...)
//   - Graph: index lookup with once-only missing-Id recording
package symbolgraph
