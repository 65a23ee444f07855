package symbolgraph

import (
	"encoding/json"
	"fmt"
)

// itemEnvelope is the fixed outer shape of every item node.
type itemEnvelope struct {
	ID      ID              `json:"id"`
	CrateID int             `json:"crate_id"`
	Name    *string         `json:"name"`
	Attrs   []string        `json:"attrs"`
	Docs    *string         `json:"docs"`
	Inner   json.RawMessage `json:"inner"`
}

// UnmarshalJSON decodes the envelope and dispatches on the single tag key of
// the inner payload.
func (it *Item) UnmarshalJSON(data []byte) error {
	var env itemEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("failed to decode item envelope: %w", err)
	}

	it.ID = env.ID
	it.CrateID = env.CrateID
	it.Name = env.Name
	it.Attrs = env.Attrs
	it.Docs = env.Docs

	if len(env.Inner) == 0 {
		it.Kind = KindUnknown
		return nil
	}

	// Payload-free kinds are encoded as a bare tag string.
	var tag string
	if err := json.Unmarshal(env.Inner, &tag); err == nil {
		it.Kind = kindFromTag(tag)
		return nil
	}

	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(env.Inner, &tagged); err != nil {
		return fmt.Errorf("failed to decode item payload for %s: %w", env.ID, err)
	}

	for key, raw := range tagged {
		if err := it.decodePayload(key, raw); err != nil {
			return fmt.Errorf("failed to decode %q payload for %s: %w", key, env.ID, err)
		}
	}

	return nil
}

// decodePayload fills the payload slot matching one inner tag.
func (it *Item) decodePayload(key string, raw json.RawMessage) error {
	it.Kind = kindFromTag(key)

	switch it.Kind {
	case KindModule:
		it.Module = new(Module)
		return json.Unmarshal(raw, it.Module)
	case KindImport:
		it.Import = new(Import)
		return json.Unmarshal(raw, it.Import)
	case KindUnion:
		it.Union = new(Union)
		return json.Unmarshal(raw, it.Union)
	case KindStruct:
		var payload struct {
			Kind  StructKind `json:"kind"`
			Impls []ID       `json:"impls"`
		}
		if err := json.Unmarshal(raw, &payload); err != nil {
			return err
		}
		it.Struct = &Struct{Kind: payload.Kind, Impls: payload.Impls}
		return nil
	case KindStructField:
		it.StructField = new(Type)
		return json.Unmarshal(raw, it.StructField)
	case KindEnum:
		it.Enum = new(Enum)
		return json.Unmarshal(raw, it.Enum)
	case KindVariant:
		it.Variant = new(Variant)
		return json.Unmarshal(raw, it.Variant)
	case KindTrait:
		it.Trait = new(Trait)
		return json.Unmarshal(raw, it.Trait)
	case KindImpl:
		it.Impl = new(Impl)
		return json.Unmarshal(raw, it.Impl)
	case KindTypeAlias:
		it.TypeAlias = new(TypeAlias)
		return json.Unmarshal(raw, it.TypeAlias)
	case KindConstant:
		it.Constant = new(Constant)
		return json.Unmarshal(raw, it.Constant)
	case KindPrimitive:
		return it.decodePrimitive(raw)
	case KindAssocType:
		it.AssocType = new(AssocType)
		return json.Unmarshal(raw, it.AssocType)
	default:
		// Pass-through kinds: the tag is all we need.
		return nil
	}
}

// decodePrimitive accepts both the bare-name and the object encoding of a
// primitive payload.
func (it *Item) decodePrimitive(raw json.RawMessage) error {
	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		it.Primitive = &Primitive{Name: name}
		return nil
	}

	it.Primitive = new(Primitive)

	return json.Unmarshal(raw, it.Primitive)
}

// kindFromTag maps an inner tag to its ItemKind. Unrecognized tags map to
// KindUnknown so a newer document degrades instead of failing to decode.
func kindFromTag(tag string) ItemKind {
	switch tag {
	case "module":
		return KindModule
	case "extern_crate":
		return KindExternCrate
	case "import", "use":
		return KindImport
	case "union":
		return KindUnion
	case "struct":
		return KindStruct
	case "struct_field":
		return KindStructField
	case "enum":
		return KindEnum
	case "variant":
		return KindVariant
	case "function":
		return KindFunction
	case "trait":
		return KindTrait
	case "trait_alias":
		return KindTraitAlias
	case "impl":
		return KindImpl
	case "typedef", "type_alias":
		return KindTypeAlias
	case "opaque_ty":
		return KindOpaqueTy
	case "constant":
		return KindConstant
	case "static":
		return KindStatic
	case "foreign_type":
		return KindForeignType
	case "macro":
		return KindMacro
	case "proc_macro":
		return KindProcMacro
	case "primitive":
		return KindPrimitive
	case "assoc_const":
		return KindAssocConst
	case "assoc_type":
		return KindAssocType
	default:
		return KindUnknown
	}
}

// UnmarshalJSON decodes "unit" | {"tuple": [...]} | {"plain": {...}}.
func (k *StructKind) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		if tag != "unit" {
			return fmt.Errorf("unexpected struct kind tag %q", tag)
		}
		k.Shape = ShapeUnit

		return nil
	}

	var tagged struct {
		Tuple []*ID `json:"tuple"`
		Plain *struct {
			Fields         []ID `json:"fields"`
			FieldsStripped bool `json:"fields_stripped"`
		} `json:"plain"`
	}
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("failed to decode struct kind: %w", err)
	}

	switch {
	case tagged.Plain != nil:
		k.Shape = ShapePlain
		k.Fields = tagged.Plain.Fields
		k.FieldsStripped = tagged.Plain.FieldsStripped
	default:
		k.Shape = ShapeTuple
		k.Tuple = tagged.Tuple
	}

	return nil
}

// UnmarshalJSON decodes the variant payload, whose kind slot is
// "plain" | {"tuple": [...]} | {"struct": {...}}.
func (v *Variant) UnmarshalJSON(data []byte) error {
	var payload struct {
		Kind json.RawMessage `json:"kind"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("failed to decode variant: %w", err)
	}

	if len(payload.Kind) == 0 {
		v.Kind.Shape = VariantPlain
		return nil
	}

	var tag string
	if err := json.Unmarshal(payload.Kind, &tag); err == nil {
		if tag != "plain" {
			return fmt.Errorf("unexpected variant kind tag %q", tag)
		}
		v.Kind.Shape = VariantPlain

		return nil
	}

	var tagged struct {
		Tuple  []*ID `json:"tuple"`
		Struct *struct {
			Fields         []ID `json:"fields"`
			FieldsStripped bool `json:"fields_stripped"`
		} `json:"struct"`
	}
	if err := json.Unmarshal(payload.Kind, &tagged); err != nil {
		return fmt.Errorf("failed to decode variant kind: %w", err)
	}

	switch {
	case tagged.Struct != nil:
		v.Kind.Shape = VariantStruct
		v.Kind.Fields = tagged.Struct.Fields
		v.Kind.FieldsStripped = tagged.Struct.FieldsStripped
	default:
		v.Kind.Shape = VariantTuple
		v.Kind.Tuple = tagged.Tuple
	}

	return nil
}

// UnmarshalJSON decodes one raw type reference.
func (t *Type) UnmarshalJSON(data []byte) error {
	// Unit forms are encoded as a bare tag string.
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		if tag == "infer" {
			t.Variant = TypeInfer
		} else {
			t.Variant = TypeUnknown
		}

		return nil
	}

	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("failed to decode type: %w", err)
	}

	for key, raw := range tagged {
		if err := t.decodeForm(key, raw); err != nil {
			return fmt.Errorf("failed to decode %q type form: %w", key, err)
		}
	}

	return nil
}

// decodeForm fills the payload for one type form tag.
func (t *Type) decodeForm(key string, raw json.RawMessage) error {
	switch key {
	case "resolved_path":
		t.Variant = TypeResolvedPath
		t.Path = new(Path)
		return json.Unmarshal(raw, t.Path)
	case "dyn_trait":
		t.Variant = TypeDynTrait
	case "generic":
		t.Variant = TypeGeneric
		return json.Unmarshal(raw, &t.Generic)
	case "primitive":
		t.Variant = TypePrimitive
		return json.Unmarshal(raw, &t.Primitive)
	case "function_pointer":
		t.Variant = TypeFunctionPointer
	case "tuple":
		t.Variant = TypeTuple
		return json.Unmarshal(raw, &t.Tuple)
	case "slice":
		t.Variant = TypeSlice
		t.Elem = new(Type)
		return json.Unmarshal(raw, t.Elem)
	case "array":
		t.Variant = TypeArray
		var payload struct {
			Type *Type `json:"type"`
		}
		if err := json.Unmarshal(raw, &payload); err != nil {
			return err
		}
		t.Elem = payload.Type
	case "impl_trait":
		t.Variant = TypeImplTrait
	case "raw_pointer":
		t.Variant = TypeRawPointer
		return t.decodeInner(raw)
	case "borrowed_ref":
		t.Variant = TypeBorrowedRef
		return t.decodeInner(raw)
	case "qualified_path":
		t.Variant = TypeQualifiedPath
	default:
		t.Variant = TypeUnknown
	}

	return nil
}

// decodeInner extracts the "type" slot shared by pointer-like forms.
func (t *Type) decodeInner(raw json.RawMessage) error {
	var payload struct {
		Type *Type `json:"type"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return err
	}
	t.Elem = payload.Type

	return nil
}

// UnmarshalJSON decodes {"angle_bracketed": {...}} | {"parenthesized": {...}}.
func (a *GenericArgs) UnmarshalJSON(data []byte) error {
	var tagged struct {
		AngleBracketed *AngleBracketed `json:"angle_bracketed"`
		Parenthesized  json.RawMessage `json:"parenthesized"`
	}
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("failed to decode generic args: %w", err)
	}

	a.AngleBracketed = tagged.AngleBracketed
	a.Parenthesized = len(tagged.Parenthesized) > 0

	return nil
}

// UnmarshalJSON decodes "infer" | {"lifetime": ...} | {"type": ...} |
// {"const": ...}.
func (g *GenericArg) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		g.Kind = ArgInfer
		return nil
	}

	var tagged struct {
		Lifetime *string         `json:"lifetime"`
		Type     *Type           `json:"type"`
		Const    json.RawMessage `json:"const"`
	}
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("failed to decode generic arg: %w", err)
	}

	switch {
	case tagged.Type != nil:
		g.Kind = ArgType
		g.Type = tagged.Type
	case tagged.Lifetime != nil:
		g.Kind = ArgLifetime
	default:
		g.Kind = ArgConst
	}

	return nil
}
