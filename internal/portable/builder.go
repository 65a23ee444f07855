package portable

import (
	"github.com/mre/crux/internal/diagnostic"
	"github.com/mre/crux/internal/symbolgraph"
)

// Diagnostic codes emitted while collecting the portable model.
const (
	CodeOmittedField  = "PORTABLE_OMITTED_FIELD"
	CodeUnknownOwner  = "PORTABLE_UNKNOWN_OWNER"
	CodeOmittedTarget = "PORTABLE_OMITTED_ALIAS"
)

// Builder collects the portable data model while the traversal runs. Records
// arriving a second time through another re-export path are deduplicated by
// Id and member name.
type Builder struct {
	norm     *Normalizer
	model    *Model
	diags    *diagnostic.Diagnostics
	variants map[symbolgraph.ID]*VariantRecord
}

// NewBuilder creates a Builder over the given graph.
func NewBuilder(graph *symbolgraph.Graph, diags *diagnostic.Diagnostics) *Builder {
	return &Builder{
		norm:     NewNormalizer(graph, diags),
		model:    NewModel(),
		diags:    diags,
		variants: make(map[symbolgraph.ID]*VariantRecord),
	}
}

// Model returns the collected model.
func (b *Builder) Model() *Model {
	return b.model
}

// RecordStruct registers a struct item. A plain struct whose fields were
// redacted from the document aborts the run.
func (b *Builder) RecordStruct(item *symbolgraph.Item) error {
	name := item.DeclaredName()
	if item.Struct.Kind.Shape == symbolgraph.ShapePlain && item.Struct.Kind.FieldsStripped {
		return &InaccessibleFieldsError{Item: name}
	}

	if _, ok := b.model.Structs[item.ID]; ok {
		return nil
	}

	b.model.Structs[item.ID] = &Struct{ID: item.ID, Name: name}

	return nil
}

// RecordEnum registers an enum item.
func (b *Builder) RecordEnum(item *symbolgraph.Item) {
	if _, ok := b.model.Enums[item.ID]; ok {
		return
	}

	b.model.Enums[item.ID] = &Enum{ID: item.ID, Name: item.DeclaredName()}
}

// RecordVariant registers a variant under its owning enum. A struct variant
// whose fields were redacted aborts the run.
func (b *Builder) RecordVariant(enumID symbolgraph.ID, item *symbolgraph.Item) error {
	name := item.DeclaredName()
	if item.Variant.Kind.Shape == symbolgraph.VariantStruct && item.Variant.Kind.FieldsStripped {
		return &InaccessibleFieldsError{Item: name}
	}

	owner, ok := b.model.Enums[enumID]
	if !ok {
		b.diags.AddWarning(CodeUnknownOwner, "variant finished before its enum", name, string(enumID))
		return nil
	}

	if _, ok := b.variants[item.ID]; ok {
		return nil
	}

	record := &VariantRecord{Name: name, Shape: item.Variant.Kind.Shape}
	b.variants[item.ID] = record
	owner.Variants = append(owner.Variants, record)

	return nil
}

// RecordField normalizes a field's type and attaches it to its owner, which
// is either a struct or a variant. Fields with no portable type form are
// omitted with a warning; unknown primitives and unimplemented generic
// arguments abort the run.
func (b *Builder) RecordField(ownerID symbolgraph.ID, item *symbolgraph.Item) error {
	name := item.DeclaredName()

	ir, ok, err := b.norm.Normalize(item.StructField)
	if err != nil {
		return err
	}
	if !ok {
		b.diags.AddWarning(CodeOmittedField,
			"field type has no portable form and was omitted", name, string(item.ID))

		return nil
	}

	field := Field{Name: name, Type: ir}

	if owner, found := b.model.Structs[ownerID]; found {
		if !hasField(owner.Fields, name) {
			owner.Fields = append(owner.Fields, field)
		}

		return nil
	}

	if owner, found := b.variants[ownerID]; found {
		if !hasField(owner.Fields, name) {
			owner.Fields = append(owner.Fields, field)
		}

		return nil
	}

	// Union fields and trait-associated slots have no portable owner.
	return nil
}

// RecordAlias normalizes a type alias target. Aliases to forms with no
// portable representation are omitted with a warning.
func (b *Builder) RecordAlias(item *symbolgraph.Item) error {
	name := item.DeclaredName()

	ir, ok, err := b.norm.Normalize(&item.TypeAlias.Type)
	if err != nil {
		return err
	}
	if !ok {
		b.diags.AddWarning(CodeOmittedTarget,
			"alias target has no portable form and was omitted", name, string(item.ID))

		return nil
	}

	if _, found := b.model.Aliases[item.ID]; found {
		return nil
	}

	b.model.Aliases[item.ID] = &Alias{ID: item.ID, Name: name, Type: ir}

	return nil
}

// hasField reports whether a field with the given name was already recorded.
func hasField(fields []Field, name string) bool {
	for _, f := range fields {
		if f.Name == name {
			return true
		}
	}

	return false
}
