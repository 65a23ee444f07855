package extract

import (
	"github.com/mre/crux/internal/diagnostic"
	"github.com/mre/crux/internal/portable"
	"github.com/mre/crux/internal/symbolgraph"
)

// CodeOddImpl marks an impl block carrying both the blanket and the
// automatically-derived markers; the producer format does not document
// whether the combination is possible.
const CodeOddImpl = "EXTRACT_ODD_IMPL"

// unprocessedItem is one unit of work: a processed path to an item that is
// about to be processed further, and the Id of that item.
type unprocessedItem struct {
	parentPath []PathComponent
	id         symbolgraph.ID
	position   int
}

// ItemProcessor takes one Id at a time off the work queue and figures out
// what to do with it. Non-obvious cases it covers: a single item imported
// several times, re-exports of items with no backing Id, implementation
// blocks that are pure noise, and re-export cycles.
type ItemProcessor struct {
	graph  *symbolgraph.Graph
	model  *portable.Builder
	diags  *diagnostic.Diagnostics
	queue  []unprocessedItem
	output []IntermediatePublicItem
}

// NewItemProcessor creates a processor over one graph. The portable model
// builder receives every finished data-shape item.
func NewItemProcessor(
	graph *symbolgraph.Graph,
	model *portable.Builder,
	diags *diagnostic.Diagnostics,
) *ItemProcessor {
	return &ItemProcessor{
		graph: graph,
		model: model,
		diags: diags,
	}
}

// AddToWorkQueue inserts at the front of the queue. Items are popped from
// the front, so a node's structural children are fully expanded before its
// siblings and groupings (struct fields, enum variants, impl members) stay
// together in the output.
func (p *ItemProcessor) AddToWorkQueue(parentPath []PathComponent, id symbolgraph.ID, position int) {
	entry := unprocessedItem{parentPath: parentPath, id: id, position: position}
	p.queue = append([]unprocessedItem{entry}, p.queue...)
}

// Output returns the finished items in traversal order.
func (p *ItemProcessor) Output() []IntermediatePublicItem {
	return p.output
}

// Run drains the work queue, adding more entries as items are expanded.
// When it returns, all reachable items and their children and impls have
// been processed. A lookup miss drops that unit of work; the graph records
// the Id.
func (p *ItemProcessor) Run() error {
	for len(p.queue) > 0 {
		entry := p.queue[0]
		p.queue = p.queue[1:]

		item := p.graph.Item(entry.id)
		if item == nil {
			continue
		}

		if err := p.processAnyItem(item, entry); err != nil {
			return err
		}
	}

	return nil
}

// processAnyItem dispatches on the item kind; imports and impls need special
// treatment.
func (p *ItemProcessor) processAnyItem(item *symbolgraph.Item, entry unprocessedItem) error {
	switch item.Kind {
	case symbolgraph.KindImport:
		if item.Import.Glob {
			return p.processImportGlob(item, entry)
		}

		return p.processImport(item, entry)
	case symbolgraph.KindImpl:
		return p.processImpl(item, entry)
	default:
		return p.processItemUnlessRecursive(entry, item, nil)
	}
}

// processImportGlob inlines a wildcard import: all children of the target
// module are enqueued under the current path and the module itself
// contributes no visible segment. If the module cannot be resolved, or is
// indirectly importing itself, the import degrades to an opaque leaf.
func (p *ItemProcessor) processImportGlob(item *symbolgraph.Item, entry unprocessedItem) error {
	imp := item.Import

	var target *symbolgraph.Item
	if imp.ID != nil {
		target = p.itemIfNotInPath(entry.parentPath, *imp.ID)
	}

	if target != nil && target.Kind == symbolgraph.KindModule {
		for i, childID := range target.Module.Items {
			p.AddToWorkQueue(clonePath(entry.parentPath), childID, i)
		}

		return nil
	}

	name := "<<" + imp.Source + "::*>>"

	return p.processItem(entry, item, &name)
}

// processImport inlines a public re-export: the imported item's structure is
// processed under the import's local name. Re-exports with no backing Id
// (e.g. renamed primitives) stay as leaves.
func (p *ItemProcessor) processImport(item *symbolgraph.Item, entry unprocessedItem) error {
	actual := item

	if imp := item.Import; imp.ID != nil {
		if target := p.itemIfNotInPath(entry.parentPath, *imp.ID); target != nil {
			actual = target
		}
	}

	name := item.Import.Name

	return p.processItem(entry, actual, &name)
}

// processImpl drops noise impls and enqueues the members of retained ones
// under the implementing type.
func (p *ItemProcessor) processImpl(item *symbolgraph.Item, entry unprocessedItem) error {
	impl := item.Impl

	if impl.BlanketImpl != nil && hasDerivedAttr(item) {
		p.diags.AddWarning(CodeOddImpl,
			"impl block carries both blanket and automatically-derived markers; classified as blanket",
			"", string(item.ID))
	}

	if !classifyImpl(item).isActive() {
		return nil
	}

	return p.processItemForType(entry, item, nil, &impl.For)
}

// processItemUnlessRecursive stops expansion when the item already occurs on
// the candidate path. The cycle is cut with a terminal leaf whose synthetic
// name wraps the real one.
func (p *ItemProcessor) processItemUnlessRecursive(
	entry unprocessedItem,
	item *symbolgraph.Item,
	override *string,
) error {
	if pathContains(entry.parentPath, item.ID) {
		name := "<<" + item.DeclaredName() + ">>"
		p.output = append(p.output, finish(entry, item, &name, nil))

		return nil
	}

	return p.processItem(entry, item, override)
}

func (p *ItemProcessor) processItem(
	entry unprocessedItem,
	item *symbolgraph.Item,
	override *string,
) error {
	return p.processItemForType(entry, item, override, nil)
}

// processItemForType finishes the path, feeds the portable model, sets up
// jobs for the item's children and impls, and appends the finished item to
// the output.
func (p *ItemProcessor) processItemForType(
	entry unprocessedItem,
	item *symbolgraph.Item,
	override *string,
	implFor *symbolgraph.Type,
) error {
	finished := finish(entry, item, override, implFor)

	if err := p.record(&finished, item); err != nil {
		return err
	}

	for i, childID := range childrenForItem(item) {
		p.AddToWorkQueue(clonePath(finished.path), childID, i)
	}

	// Impl members should group with the type they are implemented for,
	// but render under that type rather than the impl itself. Hiding every
	// ancestor keeps the sorting path intact while the rendered path picks
	// up only the steps added below the impl.
	for i, implID := range implsForItem(item) {
		path := clonePath(finished.path)
		for j := range path {
			path[j].Hide = true
		}

		p.AddToWorkQueue(path, implID, i)
	}

	p.output = append(p.output, finished)

	return nil
}

// record feeds data-shape items into the portable model as they finish.
func (p *ItemProcessor) record(finished *IntermediatePublicItem, item *symbolgraph.Item) error {
	switch item.Kind {
	case symbolgraph.KindStruct:
		return p.model.RecordStruct(item)
	case symbolgraph.KindEnum:
		p.model.RecordEnum(item)
		return nil
	case symbolgraph.KindVariant:
		ownerID, ok := nearestAncestor(finished.path, symbolgraph.KindEnum)
		if !ok {
			return nil
		}

		return p.model.RecordVariant(ownerID, item)
	case symbolgraph.KindStructField:
		ownerID, ok := fieldOwner(finished.path)
		if !ok {
			return nil
		}

		return p.model.RecordField(ownerID, item)
	case symbolgraph.KindTypeAlias:
		return p.model.RecordAlias(item)
	default:
		return nil
	}
}

// itemIfNotInPath resolves an Id unless doing so would create a path cycle.
// A genuine lookup miss is recorded by the graph.
func (p *ItemProcessor) itemIfNotInPath(path []PathComponent, id symbolgraph.ID) *symbolgraph.Item {
	if pathContains(path, id) {
		return nil
	}

	return p.graph.Item(id)
}

// finish turns an unprocessed entry into a finished item by completing the
// path with its target.
func finish(
	entry unprocessedItem,
	item *symbolgraph.Item,
	override *string,
	implFor *symbolgraph.Type,
) IntermediatePublicItem {
	component := PathComponent{
		Item: NameableItem{
			Item:           item,
			OverriddenName: override,
			SortingPrefix:  sortingPrefix(item),
			Position:       entry.position,
		},
	}

	if item.Kind == symbolgraph.KindStructField {
		component.Type = item.StructField
	}

	if implFor != nil {
		component.Type = implFor
	}

	return IntermediatePublicItem{path: append(entry.parentPath, component)}
}

// nearestAncestor returns the Id of the closest path ancestor of the given
// kind.
func nearestAncestor(path []PathComponent, kind symbolgraph.ItemKind) (symbolgraph.ID, bool) {
	for i := len(path) - 2; i >= 0; i-- {
		if path[i].Item.Item.Kind == kind {
			return path[i].Item.Item.ID, true
		}
	}

	return "", false
}

// fieldOwner finds the struct, variant, or union a field step belongs to.
func fieldOwner(path []PathComponent) (symbolgraph.ID, bool) {
	for i := len(path) - 2; i >= 0; i-- {
		switch path[i].Item.Item.Kind {
		case symbolgraph.KindStruct, symbolgraph.KindVariant, symbolgraph.KindUnion:
			return path[i].Item.Item.ID, true
		}
	}

	return "", false
}

func hasDerivedAttr(item *symbolgraph.Item) bool {
	for _, attr := range item.Attrs {
		if attr == attrAutomaticallyDerived {
			return true
		}
	}

	return false
}

// childrenForItem lists the structural children an item contributes to the
// traversal. The switch is exhaustive over the closed kind set; kinds with
// no children return nil.
func childrenForItem(item *symbolgraph.Item) []symbolgraph.ID {
	switch item.Kind {
	case symbolgraph.KindModule:
		return item.Module.Items
	case symbolgraph.KindUnion:
		return item.Union.Fields
	case symbolgraph.KindStruct:
		switch item.Struct.Kind.Shape {
		case symbolgraph.ShapePlain:
			return item.Struct.Kind.Fields
		case symbolgraph.ShapeTuple:
			return presentIDs(item.Struct.Kind.Tuple)
		default:
			return nil
		}
	case symbolgraph.KindEnum:
		return item.Enum.Variants
	case symbolgraph.KindVariant:
		switch item.Variant.Kind.Shape {
		case symbolgraph.VariantStruct:
			return item.Variant.Kind.Fields
		case symbolgraph.VariantTuple:
			return presentIDs(item.Variant.Kind.Tuple)
		default:
			return nil
		}
	case symbolgraph.KindTrait:
		return item.Trait.Items
	case symbolgraph.KindImpl:
		return item.Impl.Items
	default:
		// extern_crate, import, struct_field, function, trait_alias,
		// typedef, opaque_ty, constant, static, foreign_type, macro,
		// proc_macro, primitive, assoc_const, assoc_type.
		return nil
	}
}

// presentIDs flattens a positional field list, skipping stripped slots.
func presentIDs(ids []*symbolgraph.ID) []symbolgraph.ID {
	out := make([]symbolgraph.ID, 0, len(ids))
	for _, id := range ids {
		if id != nil {
			out = append(out, *id)
		}
	}

	return out
}

// implsForItem lists the implementation blocks attached to an item.
func implsForItem(item *symbolgraph.Item) []symbolgraph.ID {
	switch item.Kind {
	case symbolgraph.KindUnion:
		return item.Union.Impls
	case symbolgraph.KindStruct:
		return item.Struct.Impls
	case symbolgraph.KindEnum:
		return item.Enum.Impls
	case symbolgraph.KindPrimitive:
		return item.Primitive.Impls
	case symbolgraph.KindTrait:
		return item.Trait.Implementations
	default:
		return nil
	}
}
