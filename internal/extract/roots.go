package extract

import (
	"slices"
	"sort"

	"github.com/mre/crux/internal/symbolgraph"
)

// Root is one traversal seed: an associated-type slot on a marker-trait
// implementation whose default resolves to another item.
type Root struct {
	// Impl is the Id of the implementing type.
	Impl symbolgraph.ID
	// Slot is the associated-type slot name that matched.
	Slot string
	// Target is the Id the slot's default resolves to.
	Target symbolgraph.ID
}

// FindRoots scans the graph for implementations of the named marker trait
// and returns the designated associated-type slots whose default is a
// resolved reference. Slots with inline (non-reference) defaults are
// silently excluded. Results are sorted by (impl, slot, target) so runs are
// reproducible; the graph index is a map with no iteration order of its own.
func FindRoots(graph *symbolgraph.Graph, traitName string, slots []string) []Root {
	var roots []Root

	for _, item := range graph.Crate().Index {
		if item.Kind != symbolgraph.KindImpl {
			continue
		}

		impl := item.Impl
		if impl.Trait == nil || !traitMatches(impl.Trait, traitName) {
			continue
		}

		if impl.For.Variant != symbolgraph.TypeResolvedPath {
			continue
		}
		implID := impl.For.Path.ID

		for _, memberID := range impl.Items {
			member := graph.Item(memberID)
			if member == nil || member.Kind != symbolgraph.KindAssocType {
				continue
			}

			name := member.DeclaredName()
			if !slices.Contains(slots, name) {
				continue
			}

			def := member.AssocType.Default
			if def == nil || def.Variant != symbolgraph.TypeResolvedPath {
				continue
			}

			roots = append(roots, Root{
				Impl:   implID,
				Slot:   name,
				Target: def.Path.ID,
			})
		}
	}

	sort.Slice(roots, func(i, j int) bool {
		a, b := roots[i], roots[j]
		if a.Impl != b.Impl {
			return a.Impl < b.Impl
		}
		if a.Slot != b.Slot {
			return a.Slot < b.Slot
		}

		return a.Target < b.Target
	})

	return roots
}

// traitMatches accepts both bare and fully qualified trait spellings.
func traitMatches(trait *symbolgraph.Path, name string) bool {
	return trait.Name == name || trait.LastSegment() == name
}
