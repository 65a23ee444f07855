package symbolgraph

import (
	"github.com/mre/crux/internal/common"
)

// ID uniquely identifies a node in the symbol graph. Ids are opaque; the
// exact format is an implementation detail of the producing toolchain.
type ID string

// ItemKind is the closed set of node kinds a symbol graph can carry.
type ItemKind int

const (
	KindUnknown ItemKind = iota
	KindModule
	KindExternCrate
	KindImport
	KindUnion
	KindStruct
	KindStructField
	KindEnum
	KindVariant
	KindFunction
	KindTrait
	KindTraitAlias
	KindImpl
	KindTypeAlias
	KindOpaqueTy
	KindConstant
	KindStatic
	KindForeignType
	KindMacro
	KindProcMacro
	KindPrimitive
	KindAssocConst
	KindAssocType

	// KindTotal is the total number of kinds defined.
	KindTotal = int(iota)
)

// String returns the kind tag as it appears in the JSON document.
func (k ItemKind) String() string {
	switch k {
	case KindModule:
		return "module"
	case KindExternCrate:
		return "extern_crate"
	case KindImport:
		return "import"
	case KindUnion:
		return "union"
	case KindStruct:
		return "struct"
	case KindStructField:
		return "struct_field"
	case KindEnum:
		return "enum"
	case KindVariant:
		return "variant"
	case KindFunction:
		return "function"
	case KindTrait:
		return "trait"
	case KindTraitAlias:
		return "trait_alias"
	case KindImpl:
		return "impl"
	case KindTypeAlias:
		return "typedef"
	case KindOpaqueTy:
		return "opaque_ty"
	case KindConstant:
		return "constant"
	case KindStatic:
		return "static"
	case KindForeignType:
		return "foreign_type"
	case KindMacro:
		return "macro"
	case KindProcMacro:
		return "proc_macro"
	case KindPrimitive:
		return "primitive"
	case KindAssocConst:
		return "assoc_const"
	case KindAssocType:
		return "assoc_type"
	default:
		return common.UnknownStr
	}
}

// Item is one kind-tagged node in the symbol graph. Exactly one payload
// pointer matching Kind is set; pass-through kinds (function, trait alias,
// static, macros, ...) carry no payload this tool consumes.
type Item struct {
	ID      ID
	CrateID int
	// Name is the declared name. Nil for anonymous items such as impl
	// blocks and some imports; tuple fields are named positionally ("0",
	// "1", ...) by the producer.
	Name  *string
	Attrs []string
	Docs  *string

	Kind ItemKind

	Module      *Module
	Import      *Import
	Union       *Union
	Struct      *Struct
	StructField *Type
	Enum        *Enum
	Variant     *Variant
	Trait       *Trait
	Impl        *Impl
	TypeAlias   *TypeAlias
	Constant    *Constant
	Primitive   *Primitive
	AssocType   *AssocType
}

// DeclaredName returns the item's declared name or "" when anonymous.
func (it *Item) DeclaredName() string {
	if it.Name == nil {
		return ""
	}

	return *it.Name
}

// Module is a namespace holding child items.
type Module struct {
	IsCrate bool `json:"is_crate"`
	Items   []ID `json:"items"`
}

// Import is a re-export of another item.
type Import struct {
	// Source is the full path of the item being imported, e.g. "mod::Shell".
	Source string `json:"source"`
	// Name is the local name the import is bound to.
	Name string `json:"name"`
	// ID is the target item. Nil for re-exports with no backing item, such
	// as re-exported primitives.
	ID *ID `json:"id"`
	// Glob is true for wildcard imports ("pub use mod::*").
	Glob bool `json:"glob"`
}

// StructShape discriminates the three struct layouts.
type StructShape int

const (
	ShapeUnit StructShape = iota
	ShapeTuple
	ShapePlain
)

// String returns a human-readable shape name.
func (s StructShape) String() string {
	switch s {
	case ShapeUnit:
		return "unit"
	case ShapeTuple:
		return "tuple"
	case ShapePlain:
		return "plain"
	default:
		return common.UnknownStr
	}
}

// StructKind describes the layout of a struct: unit, tuple, or plain.
type StructKind struct {
	Shape StructShape
	// Tuple holds positional field Ids for tuple structs. An entry is nil
	// when that position was stripped from the document.
	Tuple []*ID
	// Fields holds field Ids for plain structs.
	Fields []ID
	// FieldsStripped is true when the document redacted private fields of a
	// plain struct.
	FieldsStripped bool
}

// Struct is a nominal product type.
type Struct struct {
	Kind  StructKind
	Impls []ID
}

// Union is a C-style union; only traversal scaffolding for this tool.
type Union struct {
	Fields []ID `json:"fields"`
	Impls  []ID `json:"impls"`
}

// Enum is a sum type over variants.
type Enum struct {
	Variants []ID `json:"variants"`
	Impls    []ID `json:"impls"`
}

// VariantShape discriminates the three variant layouts.
type VariantShape int

const (
	VariantPlain VariantShape = iota
	VariantTuple
	VariantStruct
)

// String returns a human-readable shape name.
func (s VariantShape) String() string {
	switch s {
	case VariantPlain:
		return "plain"
	case VariantTuple:
		return "tuple"
	case VariantStruct:
		return "struct"
	default:
		return common.UnknownStr
	}
}

// VariantKind describes the layout of one enum variant.
type VariantKind struct {
	Shape VariantShape
	// Tuple holds positional field Ids; an entry is nil when stripped.
	Tuple []*ID
	// Fields holds field Ids for struct variants.
	Fields []ID
	// FieldsStripped is true when the document redacted fields of a struct
	// variant.
	FieldsStripped bool
}

// Variant is one alternative of an enum.
type Variant struct {
	Kind VariantKind
}

// Trait is kept for traversal scaffolding only; its members still contribute
// to grouping.
type Trait struct {
	Items           []ID `json:"items"`
	Implementations []ID `json:"implementations"`
}

// Impl is an implementation block.
type Impl struct {
	// Synthetic is true for compiler-generated (auto-trait) impls.
	Synthetic bool `json:"synthetic"`
	// Trait is the implemented trait, nil for inherent impls.
	Trait *Path `json:"trait"`
	// For is the implementing type.
	For Type `json:"for"`
	// Items lists the member Ids of the block.
	Items []ID `json:"items"`
	// BlanketImpl is non-nil for blanket impls ("impl<T> Any for T").
	BlanketImpl *Type `json:"blanket_impl"`
}

// TypeAlias binds a name to a type reference.
type TypeAlias struct {
	Type Type `json:"type"`
}

// Constant is a named constant; only its kind matters for assembly.
type Constant struct {
	Type Type `json:"type"`
}

// Primitive is a language primitive item.
type Primitive struct {
	Name  string `json:"name"`
	Impls []ID   `json:"impls"`
}

// AssocType is an associated type slot inside a trait impl. Default is the
// assigned value, when present.
type AssocType struct {
	Default *Type `json:"default"`
}
