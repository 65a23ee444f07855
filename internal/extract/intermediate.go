package extract

import (
	"github.com/mre/crux/internal/symbolgraph"
)

// IntermediatePublicItem is one finished unit of traversal output: an
// ordered sequence of path components ending at a target item. Conceptually
// it wraps a single item even though the path consists of many.
type IntermediatePublicItem struct {
	path []PathComponent
}

// Path returns the components from root to target.
func (i *IntermediatePublicItem) Path() []PathComponent {
	return i.path
}

// Item returns the target item, i.e. the last component's item. The path is
// never empty by construction.
func (i *IntermediatePublicItem) Item() *symbolgraph.Item {
	return i.path[len(i.path)-1].Item.Item
}

// SortableKey returns the (prefix, name, position) sequence along the path.
// Hidden components are included; sorting is what keeps impl members grouped
// under their type.
func (i *IntermediatePublicItem) SortableKey() []SortEntry {
	key := make([]SortEntry, 0, len(i.path))
	for _, comp := range i.path {
		key = append(key, SortEntry{
			Prefix:   comp.Item.SortingPrefix,
			Name:     comp.Item.SortableName(),
			Position: comp.Item.Position,
		})
	}

	return key
}

// HasRenamedStep reports whether any component carries a name override.
func (i *IntermediatePublicItem) HasRenamedStep() bool {
	for _, comp := range i.path {
		if comp.Item.OverriddenName != nil {
			return true
		}
	}

	return false
}

// pathContains reports whether an Id already occurs among the path's items.
// This is the cycle guard: a per-path check, not a global visited set, so
// distinct re-export paths to one item stay distinct.
func pathContains(path []PathComponent, id symbolgraph.ID) bool {
	for _, comp := range path {
		if comp.Item.Item.ID == id {
			return true
		}
	}

	return false
}

// clonePath copies a path so queue entries never share backing storage.
func clonePath(path []PathComponent) []PathComponent {
	out := make([]PathComponent, len(path))
	copy(out, path)

	return out
}
