// Package gen provides deterministic Go binding generation from the
// portable data model.
//
// Generation approach uses text/template + x/tools/imports for readable,
// compile-ready Go code.
//
// Codegen patterns:
//   - Product types as plain structs with json tags
//   - Plain-only sum types as string constants
//   - Algebraic sum types as a sealed interface plus one struct per variant
//   - Type aliases as Go type definitions
package gen
