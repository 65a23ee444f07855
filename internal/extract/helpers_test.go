package extract

import (
	"github.com/mre/crux/internal/symbolgraph"
)

// Test fixtures build small in-memory crates directly instead of going
// through JSON decoding; the decoder has its own tests.

type crateBuilder struct {
	crate *symbolgraph.Crate
}

func newCrate(root symbolgraph.ID) *crateBuilder {
	return &crateBuilder{crate: &symbolgraph.Crate{
		Root:  root,
		Index: make(map[symbolgraph.ID]*symbolgraph.Item),
		Paths: make(map[symbolgraph.ID]symbolgraph.ItemSummary),
	}}
}

func (b *crateBuilder) add(item *symbolgraph.Item) *crateBuilder {
	b.crate.Index[item.ID] = item
	return b
}

func (b *crateBuilder) graph() *symbolgraph.Graph {
	return symbolgraph.NewGraph(b.crate)
}

func named(id symbolgraph.ID, name string) *symbolgraph.Item {
	return &symbolgraph.Item{ID: id, Name: &name}
}

func module(id symbolgraph.ID, name string, items ...symbolgraph.ID) *symbolgraph.Item {
	item := named(id, name)
	item.Kind = symbolgraph.KindModule
	item.Module = &symbolgraph.Module{Items: items}

	return item
}

func plainStruct(id symbolgraph.ID, name string, fields ...symbolgraph.ID) *symbolgraph.Item {
	item := named(id, name)
	item.Kind = symbolgraph.KindStruct
	item.Struct = &symbolgraph.Struct{
		Kind: symbolgraph.StructKind{Shape: symbolgraph.ShapePlain, Fields: fields},
	}

	return item
}

func structField(id symbolgraph.ID, name string, fieldType *symbolgraph.Type) *symbolgraph.Item {
	item := named(id, name)
	item.Kind = symbolgraph.KindStructField
	item.StructField = fieldType

	return item
}

func primitiveType(name string) *symbolgraph.Type {
	return &symbolgraph.Type{Variant: symbolgraph.TypePrimitive, Primitive: name}
}

func resolvedPath(name string, id symbolgraph.ID) *symbolgraph.Type {
	return &symbolgraph.Type{
		Variant: symbolgraph.TypeResolvedPath,
		Path:    &symbolgraph.Path{Name: name, ID: id},
	}
}

func importOf(id symbolgraph.ID, localName string, target symbolgraph.ID) *symbolgraph.Item {
	item := named(id, localName)
	item.Kind = symbolgraph.KindImport
	item.Import = &symbolgraph.Import{Source: localName, Name: localName, ID: &target}

	return item
}

func globImport(id symbolgraph.ID, source string, target *symbolgraph.ID) *symbolgraph.Item {
	item := &symbolgraph.Item{ID: id}
	item.Kind = symbolgraph.KindImport
	item.Import = &symbolgraph.Import{Source: source, ID: target, Glob: true}

	return item
}

func constant(id symbolgraph.ID, name string, constType *symbolgraph.Type) *symbolgraph.Item {
	item := named(id, name)
	item.Kind = symbolgraph.KindConstant
	item.Constant = &symbolgraph.Constant{Type: *constType}

	return item
}

func function(id symbolgraph.ID, name string) *symbolgraph.Item {
	item := named(id, name)
	item.Kind = symbolgraph.KindFunction

	return item
}

func inherentImpl(id symbolgraph.ID, forType *symbolgraph.Type, items ...symbolgraph.ID) *symbolgraph.Item {
	item := &symbolgraph.Item{ID: id}
	item.Kind = symbolgraph.KindImpl
	item.Impl = &symbolgraph.Impl{For: *forType, Items: items}

	return item
}

func traitImpl(
	id symbolgraph.ID,
	trait *symbolgraph.Path,
	forType *symbolgraph.Type,
	items ...symbolgraph.ID,
) *symbolgraph.Item {
	item := inherentImpl(id, forType, items...)
	item.Impl.Trait = trait

	return item
}

func blanketImpl(id symbolgraph.ID, forType *symbolgraph.Type, items ...symbolgraph.ID) *symbolgraph.Item {
	item := inherentImpl(id, forType, items...)
	item.Impl.Trait = &symbolgraph.Path{Name: "Any"}
	item.Impl.BlanketImpl = &symbolgraph.Type{Variant: symbolgraph.TypeGeneric, Generic: "T"}

	return item
}

func assocType(id symbolgraph.ID, name string, def *symbolgraph.Type) *symbolgraph.Item {
	item := named(id, name)
	item.Kind = symbolgraph.KindAssocType
	item.AssocType = &symbolgraph.AssocType{Default: def}

	return item
}

// renderedPaths assembles the API and returns its printed lines.
func renderedPaths(output []IntermediatePublicItem, missing []symbolgraph.ID) []string {
	ctx := NewRenderingContext(output)
	api := Assemble(ctx, output, missing)

	var lines []string
	for _, item := range api.Items() {
		lines = append(lines, item.String())
	}

	return lines
}
