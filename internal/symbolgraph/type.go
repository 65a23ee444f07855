package symbolgraph

import "github.com/mre/crux/internal/common"

// TypeVariant is the closed set of raw type reference forms.
type TypeVariant int

const (
	TypeUnknown TypeVariant = iota
	TypeResolvedPath
	TypeDynTrait
	TypeGeneric
	TypePrimitive
	TypeFunctionPointer
	TypeTuple
	TypeSlice
	TypeArray
	TypeImplTrait
	TypeInfer
	TypeRawPointer
	TypeBorrowedRef
	TypeQualifiedPath

	// TypeVariantTotal is the total number of variants defined.
	TypeVariantTotal = int(iota)
)

// String returns the variant tag as it appears in the JSON document.
func (v TypeVariant) String() string {
	switch v {
	case TypeResolvedPath:
		return "resolved_path"
	case TypeDynTrait:
		return "dyn_trait"
	case TypeGeneric:
		return "generic"
	case TypePrimitive:
		return "primitive"
	case TypeFunctionPointer:
		return "function_pointer"
	case TypeTuple:
		return "tuple"
	case TypeSlice:
		return "slice"
	case TypeArray:
		return "array"
	case TypeImplTrait:
		return "impl_trait"
	case TypeInfer:
		return "infer"
	case TypeRawPointer:
		return "raw_pointer"
	case TypeBorrowedRef:
		return "borrowed_ref"
	case TypeQualifiedPath:
		return "qualified_path"
	default:
		return common.UnknownStr
	}
}

// Type is one raw type reference from the symbol graph. Exactly the payload
// matching Variant is set.
type Type struct {
	Variant TypeVariant

	// Path is set for resolved_path references.
	Path *Path
	// Generic is the generic parameter name ("T") for generic references.
	Generic string
	// Primitive is the primitive name token ("i32", "bool", ...).
	Primitive string
	// Tuple holds the element types of a tuple.
	Tuple []Type
	// Elem is the inner type for slice, array, raw_pointer, and
	// borrowed_ref forms. Kept for completeness; none of these forms has a
	// portable representation.
	Elem *Type
}

// Path is a reference to another item, optionally with generic arguments.
type Path struct {
	// Name is the display path, e.g. "Vec" or "mod::Shell".
	Name string `json:"name"`
	// ID is the referenced item.
	ID ID `json:"id"`
	// Args are the generic arguments, nil when absent.
	Args *GenericArgs `json:"args"`
}

// LastSegment returns the final display segment of the path name.
func (p *Path) LastSegment() string {
	name := p.Name
	for i := len(name) - 2; i > 0; i-- {
		if name[i] == ':' && name[i-1] == ':' {
			return name[i+1:]
		}
	}

	return name
}

// GenericArgs carries the argument list attached to a path reference.
type GenericArgs struct {
	// AngleBracketed is set for "<T, U>" style argument lists.
	AngleBracketed *AngleBracketed
	// Parenthesized is true for "Fn(A, B) -> C" style argument lists.
	// Treated as carrying zero arguments.
	Parenthesized bool
}

// AngleBracketed is a "<...>" argument list.
type AngleBracketed struct {
	Args []GenericArg `json:"args"`
}

// GenericArgKind is the closed set of argument forms in angle brackets.
type GenericArgKind int

const (
	ArgLifetime GenericArgKind = iota
	ArgType
	ArgConst
	ArgInfer
)

// String returns a human-readable argument kind name.
func (k GenericArgKind) String() string {
	switch k {
	case ArgLifetime:
		return "lifetime"
	case ArgType:
		return "type"
	case ArgConst:
		return "const"
	case ArgInfer:
		return "infer"
	default:
		return common.UnknownStr
	}
}

// GenericArg is one argument in an angle-bracketed list. Type is set only
// when Kind is ArgType.
type GenericArg struct {
	Kind GenericArgKind
	Type *Type
}
