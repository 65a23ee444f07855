package extract

import (
	"github.com/mre/crux/internal/symbolgraph"
)

// NameableItem pairs a graph item with the naming and ordering state of one
// path step.
type NameableItem struct {
	// Item is the underlying graph node.
	Item *symbolgraph.Item
	// OverriddenName replaces the declared name; set when an import is
	// inlined under its local name, and for synthetic recursion-guard
	// leaves.
	OverriddenName *string
	// SortingPrefix groups items of the same kind when sorting. Derived
	// from the item kind only, never shown to users.
	SortingPrefix int
	// Position is the index of the item in its parent's member list. It
	// orders anonymous members, which have no name to sort by.
	Position int
}

// SortableName returns the override if present, else the declared name, else
// "" for anonymous members.
func (n NameableItem) SortableName() string {
	if n.OverriddenName != nil {
		return *n.OverriddenName
	}

	if n.Item.Name != nil {
		return *n.Item.Name
	}

	return ""
}

// RenderedName is the segment shown in a visible path. Anonymous members
// render as "_".
func (n NameableItem) RenderedName() string {
	if name := n.SortableName(); name != "" {
		return name
	}

	return "_"
}

// PathComponent is one step from a root to a target item.
type PathComponent struct {
	// Item carries the node plus its naming and ordering state.
	Item NameableItem
	// Type is the declared type at a field step, kept independent of that
	// type's own expansion. Nil for non-field steps.
	Type *symbolgraph.Type
	// Hide suppresses the step from rendered output. Hidden steps still
	// participate in sorting, which is how impl members stay grouped under
	// their type while the impl step itself is invisible.
	Hide bool
}

// SortEntry is one element of a sortable path.
type SortEntry struct {
	Prefix   int
	Name     string
	Position int
}

// compareSortEntries orders two entries by prefix, then name, then position.
// Position is a structural property of the graph, so the total order stays
// independent of map iteration and insertion order.
func compareSortEntries(a, b SortEntry) int {
	if a.Prefix != b.Prefix {
		if a.Prefix < b.Prefix {
			return -1
		}

		return 1
	}

	if a.Name != b.Name {
		if a.Name < b.Name {
			return -1
		}

		return 1
	}

	if a.Position != b.Position {
		if a.Position < b.Position {
			return -1
		}

		return 1
	}

	return 0
}

// CompareSortKeys is the total lexicographic order over sortable paths.
func CompareSortKeys(a, b []SortEntry) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareSortEntries(a[i], b[i]); c != 0 {
			return c
		}
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
