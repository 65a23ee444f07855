package extract

import (
	"slices"

	"github.com/mre/crux/internal/common"
	"github.com/mre/crux/internal/symbolgraph"
)

// attrAutomaticallyDerived is the attribute marking derive-generated impls.
const attrAutomaticallyDerived = "#[automatically_derived]"

// ImplKind classifies an implementation block for noise pruning.
type ImplKind int

const (
	// ImplInherent is "impl Foo".
	ImplInherent ImplKind = iota
	// ImplTrait is a hand-written "impl Bar for Foo".
	ImplTrait
	// ImplAutoDerived is generated by a derive attribute.
	ImplAutoDerived
	// ImplAutoTrait is a compiler-synthesized auto-trait impl such as
	// "impl Sync for Foo".
	ImplAutoTrait
	// ImplBlanket is a blanket impl such as "impl<T> Any for T".
	ImplBlanket
)

// String returns a human-readable impl kind name.
func (k ImplKind) String() string {
	switch k {
	case ImplInherent:
		return "inherent"
	case ImplTrait:
		return "trait"
	case ImplAutoDerived:
		return "auto_derived"
	case ImplAutoTrait:
		return "auto_trait"
	case ImplBlanket:
		return "blanket"
	default:
		return common.UnknownStr
	}
}

// classifyImpl applies the fixed classification precedence:
// synthetic-without-blanket, then blanket-without-synthetic, then
// automatically derived, then inherent, else trait.
func classifyImpl(item *symbolgraph.Item) ImplKind {
	impl := item.Impl
	hasBlanket := impl.BlanketImpl != nil
	derived := slices.Contains(item.Attrs, attrAutomaticallyDerived)

	switch {
	case impl.Synthetic && !hasBlanket:
		return ImplAutoTrait
	case !impl.Synthetic && hasBlanket:
		return ImplBlanket
	case derived:
		return ImplAutoDerived
	case impl.Trait == nil:
		return ImplInherent
	default:
		return ImplTrait
	}
}

// isActive reports whether the block survives noise pruning. Blanket,
// auto-trait, and auto-derived impls would connect nearly every type to
// nearly every other, so they are dropped entirely.
func (k ImplKind) isActive() bool {
	switch k {
	case ImplBlanket, ImplAutoTrait, ImplAutoDerived:
		return false
	case ImplInherent, ImplTrait:
		return true
	default:
		return false
	}
}

// sortingPrefix assigns every kind its slot in the fixed ordering table.
// Inherent impls sort apart from trait impls, but manual and derived trait
// impls share a slot so switching between them does not reorder output.
func sortingPrefix(item *symbolgraph.Item) int {
	switch item.Kind {
	case symbolgraph.KindExternCrate:
		return 1
	case symbolgraph.KindImport:
		return 2
	case symbolgraph.KindPrimitive:
		return 3
	case symbolgraph.KindModule:
		return 4
	case symbolgraph.KindMacro:
		return 5
	case symbolgraph.KindProcMacro:
		return 6
	case symbolgraph.KindEnum:
		return 7
	case symbolgraph.KindUnion:
		return 8
	case symbolgraph.KindStruct:
		return 9
	case symbolgraph.KindStructField:
		return 10
	case symbolgraph.KindVariant:
		return 11
	case symbolgraph.KindConstant:
		return 12
	case symbolgraph.KindStatic:
		return 13
	case symbolgraph.KindTrait:
		return 14
	case symbolgraph.KindAssocType:
		return 15
	case symbolgraph.KindAssocConst:
		return 16
	case symbolgraph.KindFunction:
		return 17
	case symbolgraph.KindTypeAlias:
		return 19
	case symbolgraph.KindImpl:
		switch classifyImpl(item) {
		case ImplInherent:
			return 20
		case ImplTrait, ImplAutoDerived:
			return 21
		case ImplAutoTrait:
			return 23
		default:
			return 24
		}
	case symbolgraph.KindForeignType:
		return 25
	case symbolgraph.KindOpaqueTy:
		return 26
	case symbolgraph.KindTraitAlias:
		return 27
	default:
		return 99
	}
}
