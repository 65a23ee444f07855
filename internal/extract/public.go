package extract

import (
	"sort"
	"strings"

	"github.com/mre/crux/internal/symbolgraph"
)

// PublicItem is one finished, rendered, path-addressed output record.
type PublicItem struct {
	path    []string
	kind    symbolgraph.ItemKind
	id      symbolgraph.ID
	sortKey []SortEntry
}

// Path returns the visible path segments.
func (p PublicItem) Path() []string {
	return p.path
}

// Kind returns the item kind.
func (p PublicItem) Kind() symbolgraph.ItemKind {
	return p.kind
}

// ID returns the graph Id of the target item. Several public items share an
// Id when a definition is reachable through several re-export paths.
func (p PublicItem) ID() symbolgraph.ID {
	return p.id
}

// String renders the visible path.
func (p PublicItem) String() string {
	return strings.Join(p.path, "::")
}

// PublicAPI is the extracted public interface of one library: the sorted
// data-shape items plus the missing-reference diagnostics. Both collections
// are read-only.
type PublicAPI struct {
	items      []PublicItem
	missingIDs []symbolgraph.ID
}

// Items returns the sorted public items.
func (a *PublicAPI) Items() []PublicItem {
	return a.items
}

// MissingIDs returns the Ids that were referenced but absent from the
// graph's own index, in first-seen order. Intended for verbose output;
// users cannot usually act on them.
func (a *PublicAPI) MissingIDs() []symbolgraph.ID {
	return a.missingIDs
}

// String renders one line per item.
func (a *PublicAPI) String() string {
	var sb strings.Builder
	for _, item := range a.items {
		sb.WriteString(item.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Assemble filters traversal output to data-shape kinds, sorts it by
// sortable path, and packages it with the missing-Id list. Scaffolding
// kinds (modules, imports, functions, traits, impls, statics, macros,
// associated slots) exist only to make the traversal reach the data shapes
// and are dropped here.
func Assemble(
	ctx *RenderingContext,
	output []IntermediatePublicItem,
	missingIDs []symbolgraph.ID,
) *PublicAPI {
	var items []PublicItem

	for i := range output {
		item := &output[i]
		if !isDataShape(item.Item().Kind) {
			continue
		}

		items = append(items, ctx.Render(item))
	}

	sort.SliceStable(items, func(i, j int) bool {
		return CompareSortKeys(items[i].sortKey, items[j].sortKey) < 0
	})

	return &PublicAPI{items: items, missingIDs: missingIDs}
}

// isDataShape reports whether a kind describes data rather than behavior or
// namespace structure.
func isDataShape(kind symbolgraph.ItemKind) bool {
	switch kind {
	case symbolgraph.KindStruct,
		symbolgraph.KindEnum,
		symbolgraph.KindStructField,
		symbolgraph.KindVariant,
		symbolgraph.KindPrimitive,
		symbolgraph.KindTypeAlias,
		symbolgraph.KindUnion,
		symbolgraph.KindForeignType,
		symbolgraph.KindConstant:
		return true
	default:
		return false
	}
}
