package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mre/crux/internal/symbolgraph"
)

func TestFindRoots(t *testing.T) {
	b := newCrate("0:0").
		add(plainStruct("0:1", "App")).
		add(plainStruct("0:2", "Event")).
		add(plainStruct("0:3", "ViewModel")).
		add(traitImpl("0:4",
			&symbolgraph.Path{Name: "crux_core::App"},
			resolvedPath("App", "0:1"),
			"0:5", "0:6")).
		add(assocType("0:5", "Event", resolvedPath("Event", "0:2"))).
		add(assocType("0:6", "ViewModel", resolvedPath("ViewModel", "0:3")))

	roots := FindRoots(b.graph(), "App", []string{"Event", "ViewModel"})

	require.Len(t, roots, 2)
	assert.Equal(t, Root{Impl: "0:1", Slot: "Event", Target: "0:2"}, roots[0])
	assert.Equal(t, Root{Impl: "0:1", Slot: "ViewModel", Target: "0:3"}, roots[1])
}

func TestFindRootsMatchesQualifiedTraitName(t *testing.T) {
	b := newCrate("0:0").
		add(plainStruct("0:1", "Capabilities")).
		add(plainStruct("0:2", "Request")).
		add(traitImpl("0:3",
			&symbolgraph.Path{Name: "crux_core::Effect"},
			resolvedPath("Capabilities", "0:1"),
			"0:4")).
		add(assocType("0:4", "Ffi", resolvedPath("Request", "0:2")))

	roots := FindRoots(b.graph(), "Effect", []string{"Ffi"})

	require.Len(t, roots, 1)
	assert.Equal(t, symbolgraph.ID("0:2"), roots[0].Target)
}

func TestFindRootsIgnoresOtherSlots(t *testing.T) {
	b := newCrate("0:0").
		add(plainStruct("0:1", "App")).
		add(plainStruct("0:2", "Model")).
		add(traitImpl("0:3",
			&symbolgraph.Path{Name: "App"},
			resolvedPath("App", "0:1"),
			"0:4")).
		add(assocType("0:4", "Model", resolvedPath("Model", "0:2")))

	roots := FindRoots(b.graph(), "App", []string{"Event", "ViewModel"})
	assert.Empty(t, roots)
}

func TestFindRootsSkipsInlineDefaults(t *testing.T) {
	b := newCrate("0:0").
		add(plainStruct("0:1", "App")).
		add(traitImpl("0:2",
			&symbolgraph.Path{Name: "App"},
			resolvedPath("App", "0:1"),
			"0:3")).
		add(assocType("0:3", "Event", primitiveType("u8")))

	roots := FindRoots(b.graph(), "App", []string{"Event"})
	assert.Empty(t, roots)
}

func TestFindRootsIsSorted(t *testing.T) {
	b := newCrate("0:0").
		add(plainStruct("0:1", "B")).
		add(plainStruct("0:2", "A")).
		add(plainStruct("0:3", "Target")).
		add(traitImpl("0:8",
			&symbolgraph.Path{Name: "App"},
			resolvedPath("B", "0:2"),
			"0:9")).
		add(assocType("0:9", "Event", resolvedPath("Target", "0:3"))).
		add(traitImpl("0:6",
			&symbolgraph.Path{Name: "App"},
			resolvedPath("A", "0:1"),
			"0:7")).
		add(assocType("0:7", "Event", resolvedPath("Target", "0:3")))

	roots := FindRoots(b.graph(), "App", []string{"Event"})

	require.Len(t, roots, 2)
	assert.Equal(t, symbolgraph.ID("0:1"), roots[0].Impl)
	assert.Equal(t, symbolgraph.ID("0:2"), roots[1].Impl)
}
