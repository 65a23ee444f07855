// Package rustdoc produces the symbol graph document by invoking the
// external documentation command against a library target, then locates and
// parses the emitted JSON.
//
// Everything here is a one-shot acquisition performed before traversal
// starts; the parsed document is treated as an immutable snapshot for the
// rest of the run.
package rustdoc
