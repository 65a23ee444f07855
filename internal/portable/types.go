package portable

import (
	"github.com/mre/crux/internal/common"
	"github.com/mre/crux/internal/symbolgraph"
)

// Variant discriminates the three portable type forms.
type Variant int

const (
	// VariantSpecial is a fixed container or primitive type that every
	// target language maps manually.
	VariantSpecial Variant = iota
	// VariantGeneric is a named type applied to type arguments.
	VariantGeneric
	// VariantSimple is a named type without arguments.
	VariantSimple
)

// String returns a human-readable variant name.
func (v Variant) String() string {
	switch v {
	case VariantSpecial:
		return "special"
	case VariantGeneric:
		return "generic"
	case VariantSimple:
		return "simple"
	default:
		return common.UnknownStr
	}
}

// Type is one portable type reference. Exactly the payload matching Variant
// is meaningful: Special for VariantSpecial, Name for VariantSimple, and
// Name+Args for VariantGeneric.
type Type struct {
	Variant Variant
	Special SpecialKind
	Name    string
	Args    []Type
}

// SpecialKind enumerates the fixed primitive table.
type SpecialKind int

const (
	_ SpecialKind = iota // zero is the invalid value

	SpecialString
	SpecialChar
	SpecialI8
	SpecialI16
	SpecialI32
	SpecialI64
	SpecialU8
	SpecialU16
	SpecialU32
	SpecialU64
	SpecialISize
	SpecialUSize
	SpecialBool
	SpecialF32
	SpecialF64
	SpecialI54
	SpecialU53

	// SpecialTotal is the total number of special kinds defined.
	SpecialTotal = int(iota)
)

// specialNames is the fixed primitive-name table. Exact match only; every
// entry round-trips through SpecialFromName and SpecialKind.Name.
var specialNames = map[string]SpecialKind{
	"String": SpecialString,
	"char":   SpecialChar,
	"i8":     SpecialI8,
	"i16":    SpecialI16,
	"i32":    SpecialI32,
	"i64":    SpecialI64,
	"u8":     SpecialU8,
	"u16":    SpecialU16,
	"u32":    SpecialU32,
	"u64":    SpecialU64,
	"isize":  SpecialISize,
	"usize":  SpecialUSize,
	"bool":   SpecialBool,
	"f32":    SpecialF32,
	"f64":    SpecialF64,
	"I54":    SpecialI54,
	"U53":    SpecialU53,
}

// SpecialFromName matches a primitive name token against the fixed table.
func SpecialFromName(name string) (SpecialKind, bool) {
	kind, ok := specialNames[name]
	return kind, ok
}

// Name returns the exact source name of the special kind.
func (k SpecialKind) Name() string {
	switch k {
	case SpecialString:
		return "String"
	case SpecialChar:
		return "char"
	case SpecialI8:
		return "i8"
	case SpecialI16:
		return "i16"
	case SpecialI32:
		return "i32"
	case SpecialI64:
		return "i64"
	case SpecialU8:
		return "u8"
	case SpecialU16:
		return "u16"
	case SpecialU32:
		return "u32"
	case SpecialU64:
		return "u64"
	case SpecialISize:
		return "isize"
	case SpecialUSize:
		return "usize"
	case SpecialBool:
		return "bool"
	case SpecialF32:
		return "f32"
	case SpecialF64:
		return "f64"
	case SpecialI54:
		return "I54"
	case SpecialU53:
		return "U53"
	default:
		return common.UnknownStr
	}
}

// String implements fmt.Stringer via the source name.
func (k SpecialKind) String() string {
	return k.Name()
}

// Field is one named field with a portable type.
type Field struct {
	Name string
	Type Type
}

// Struct is a collected product type.
type Struct struct {
	ID     symbolgraph.ID
	Name   string
	Fields []Field
}

// VariantRecord is one collected enum variant.
type VariantRecord struct {
	Name   string
	Shape  symbolgraph.VariantShape
	Fields []Field
}

// Enum is a collected sum type.
type Enum struct {
	ID       symbolgraph.ID
	Name     string
	Variants []*VariantRecord
}

// Alias is a collected type alias.
type Alias struct {
	ID   symbolgraph.ID
	Name string
	Type Type
}

// Model is the portable data model collected during traversal.
type Model struct {
	Structs map[symbolgraph.ID]*Struct
	Enums   map[symbolgraph.ID]*Enum
	Aliases map[symbolgraph.ID]*Alias
}

// NewModel creates an empty Model.
func NewModel() *Model {
	return &Model{
		Structs: make(map[symbolgraph.ID]*Struct),
		Enums:   make(map[symbolgraph.ID]*Enum),
		Aliases: make(map[symbolgraph.ID]*Alias),
	}
}
