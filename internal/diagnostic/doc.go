// Package diagnostic provides structured warnings, errors, and
// informational notes collected while extracting a public API.
//
// Key capabilities:
//   - Missing-Id reports for references absent from the symbol graph
//   - Omitted-field warnings for type shapes with no portable form
//   - Classification notes for odd implementation blocks
package diagnostic
