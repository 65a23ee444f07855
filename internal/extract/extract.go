package extract

import (
	"github.com/mre/crux/internal/common"
	"github.com/mre/crux/internal/diagnostic"
	"github.com/mre/crux/internal/portable"
	"github.com/mre/crux/internal/symbolgraph"
)

// Diagnostic codes emitted by the extraction pipeline.
const (
	CodeMissingID = "EXTRACT_MISSING_ID"
	CodeNoRoots   = "EXTRACT_NO_ROOTS"
)

// Marker designates one marker trait and the associated-type slots whose
// defaults seed the traversal.
type Marker struct {
	Trait string
	Slots []string
}

// DefaultMarkers returns the built-in marker set: the effect registry and
// the app's event and view-model slots.
func DefaultMarkers() []Marker {
	return []Marker{
		{Trait: "Effect", Slots: []string{"Ffi"}},
		{Trait: "App", Slots: []string{"Event", "ViewModel"}},
	}
}

// Options configure an extraction run.
type Options struct {
	// Markers to seed the traversal from. Empty means DefaultMarkers.
	Markers []Marker
}

// Result is everything one run produces. All collections are pure functions
// of the input snapshot; running twice over the same document yields
// byte-identical output.
type Result struct {
	// API is the sorted, deduplicated public interface.
	API *PublicAPI
	// Model is the portable data model for binding generation.
	Model *portable.Model
	// Roots are the traversal seeds that were discovered.
	Roots []Root
	// IDToItems maps each terminal Id to every public spelling of it.
	IDToItems map[symbolgraph.ID][]*IntermediatePublicItem
	// Diagnostics collected along the way.
	Diagnostics diagnostic.Diagnostics
}

// Extract runs the full pipeline over one decoded document: root discovery,
// queue-driven traversal, rendering, and assembly. It aborts with an error
// only on unrecoverable conditions (redacted fields, unknown primitives,
// unimplemented generic arguments); missing Ids and unsupported type shapes
// are recorded and skipped.
func Extract(crate *symbolgraph.Crate, opts Options) (*Result, error) {
	graph := symbolgraph.NewGraph(crate)
	diags := diagnostic.Diagnostics{}

	markers := opts.Markers
	if common.IsEmpty(markers) {
		markers = DefaultMarkers()
	}

	builder := portable.NewBuilder(graph, &diags)
	processor := NewItemProcessor(graph, builder, &diags)

	var roots []Root
	for _, marker := range markers {
		found := FindRoots(graph, marker.Trait, marker.Slots)
		roots = append(roots, found...)

		for _, root := range found {
			processor.AddToWorkQueue(nil, root.Target, 0)
		}
	}

	if common.IsEmpty(roots) {
		diags.AddWarning(CodeNoRoots, "no marker-trait implementations found", "", "")
	}

	if err := processor.Run(); err != nil {
		return nil, err
	}

	ctx := NewRenderingContext(processor.Output())
	api := Assemble(ctx, processor.Output(), graph.MissingIDs())

	for _, id := range api.MissingIDs() {
		diags.AddInfo(CodeMissingID, "referenced Id is missing from the graph index", "", string(id))
	}

	return &Result{
		API:         api,
		Model:       builder.Model(),
		Roots:       roots,
		IDToItems:   ctx.IDToItems(),
		Diagnostics: diags,
	}, nil
}
