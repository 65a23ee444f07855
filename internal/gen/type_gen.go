package gen

import (
	"strings"

	"github.com/mre/crux/internal/portable"
)

// specialGoTypes maps the fixed primitive table to Go types. I54 and U53 are
// the safe-integer primitives; they keep full width here since Go has no
// 53/54-bit types.
var specialGoTypes = map[portable.SpecialKind]string{
	portable.SpecialString: "string",
	portable.SpecialChar:   "rune",
	portable.SpecialI8:     "int8",
	portable.SpecialI16:    "int16",
	portable.SpecialI32:    "int32",
	portable.SpecialI64:    "int64",
	portable.SpecialU8:     "uint8",
	portable.SpecialU16:    "uint16",
	portable.SpecialU32:    "uint32",
	portable.SpecialU64:    "uint64",
	portable.SpecialISize:  "int",
	portable.SpecialUSize:  "uint",
	portable.SpecialBool:   "bool",
	portable.SpecialF32:    "float32",
	portable.SpecialF64:    "float64",
	portable.SpecialI54:    "int64",
	portable.SpecialU53:    "uint64",
}

// goType renders a portable type as a Go type expression. Unknown generic
// wrappers fall back to their bare name so the formatter surfaces them as a
// compile error instead of silently mistyping a field.
func goType(t portable.Type) string {
	switch t.Variant {
	case portable.VariantSpecial:
		if s, ok := specialGoTypes[t.Special]; ok {
			return s
		}

		return "any"
	case portable.VariantSimple:
		return exportedName(t.Name)
	case portable.VariantGeneric:
		return goGenericType(t)
	default:
		return "any"
	}
}

func goGenericType(t portable.Type) string {
	switch t.Name {
	case "Option":
		if len(t.Args) == 1 {
			return "*" + goType(t.Args[0])
		}
	case "Vec":
		if len(t.Args) == 1 {
			return "[]" + goType(t.Args[0])
		}
	case "HashMap", "BTreeMap":
		if len(t.Args) == 2 {
			return "map[" + goType(t.Args[0]) + "]" + goType(t.Args[1])
		}
	case "Box", "Rc", "Arc":
		if len(t.Args) == 1 {
			return goType(t.Args[0])
		}
	}

	return exportedName(t.Name)
}

// exportedName makes an identifier exported and strips characters Go
// identifiers cannot carry. Tuple field names are bare indices, which become
// F0, F1, and so on.
func exportedName(name string) string {
	if name == "" {
		return "X"
	}

	if name[0] >= '0' && name[0] <= '9' {
		return "F" + name
	}

	var sb strings.Builder

	upper := true
	for _, r := range name {
		if r == '_' || r == '-' {
			upper = true
			continue
		}

		if upper {
			sb.WriteString(strings.ToUpper(string(r)))
			upper = false
		} else {
			sb.WriteRune(r)
		}
	}

	return sb.String()
}
