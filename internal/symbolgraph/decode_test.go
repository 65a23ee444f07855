package symbolgraph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `{
	"root": "0:0",
	"crate_version": "0.1.0",
	"format_version": 27,
	"index": {
		"0:0": {
			"id": "0:0",
			"crate_id": 0,
			"name": "shared",
			"inner": {"module": {"is_crate": true, "items": ["0:1", "0:2", "0:5"]}}
		},
		"0:1": {
			"crate_id": 0,
			"name": "Point",
			"inner": {"struct": {"kind": {"plain": {"fields": ["0:3"], "fields_stripped": false}}, "impls": []}}
		},
		"0:3": {
			"crate_id": 0,
			"name": "x",
			"inner": {"struct_field": {"primitive": "f64"}}
		},
		"0:2": {
			"crate_id": 0,
			"name": "Direction",
			"inner": {"enum": {"variants": ["0:4"], "impls": []}}
		},
		"0:4": {
			"crate_id": 0,
			"name": "Up",
			"inner": {"variant": {"kind": "plain"}}
		},
		"0:5": {
			"crate_id": 0,
			"name": "Shell",
			"inner": {"import": {"source": "app::Shell", "name": "Shell", "id": "0:1", "glob": false}}
		}
	},
	"paths": {
		"0:1": {"crate_id": 0, "path": ["shared", "Point"], "kind": "struct"}
	},
	"external_crates": {
		"1": {"name": "serde", "html_root_url": ""}
	}
}`

func TestDecodeCrate(t *testing.T) {
	crate, err := DecodeCrate(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	assert.Equal(t, ID("0:0"), crate.Root)
	assert.Equal(t, 27, crate.FormatVersion)
	require.NotNil(t, crate.CrateVersion)
	assert.Equal(t, "0.1.0", *crate.CrateVersion)
	assert.Len(t, crate.Index, 6)

	root := crate.Index["0:0"]
	require.NotNil(t, root)
	assert.Equal(t, KindModule, root.Kind)
	require.NotNil(t, root.Module)
	assert.True(t, root.Module.IsCrate)
	assert.Equal(t, []ID{"0:1", "0:2", "0:5"}, root.Module.Items)
}

func TestDecodeCrateStampsIDs(t *testing.T) {
	crate, err := DecodeCrate(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	// Only the root repeats its id inside the payload; the rest must be
	// stamped from the index keys.
	for id, item := range crate.Index {
		assert.Equal(t, id, item.ID)
	}
}

func TestDecodeStructPayload(t *testing.T) {
	crate, err := DecodeCrate(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	point := crate.Index["0:1"]
	require.Equal(t, KindStruct, point.Kind)
	require.NotNil(t, point.Struct)
	assert.Equal(t, ShapePlain, point.Struct.Kind.Shape)
	assert.Equal(t, []ID{"0:3"}, point.Struct.Kind.Fields)
	assert.False(t, point.Struct.Kind.FieldsStripped)

	field := crate.Index["0:3"]
	require.Equal(t, KindStructField, field.Kind)
	require.NotNil(t, field.StructField)
	assert.Equal(t, TypePrimitive, field.StructField.Variant)
	assert.Equal(t, "f64", field.StructField.Primitive)
}

func TestDecodeEnumAndVariant(t *testing.T) {
	crate, err := DecodeCrate(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	enum := crate.Index["0:2"]
	require.Equal(t, KindEnum, enum.Kind)
	assert.Equal(t, []ID{"0:4"}, enum.Enum.Variants)

	variant := crate.Index["0:4"]
	require.Equal(t, KindVariant, variant.Kind)
	assert.Equal(t, VariantPlain, variant.Variant.Kind.Shape)
}

func TestDecodeImportPayload(t *testing.T) {
	crate, err := DecodeCrate(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	imp := crate.Index["0:5"]
	require.Equal(t, KindImport, imp.Kind)
	require.NotNil(t, imp.Import)
	assert.Equal(t, "app::Shell", imp.Import.Source)
	assert.Equal(t, "Shell", imp.Import.Name)
	require.NotNil(t, imp.Import.ID)
	assert.Equal(t, ID("0:1"), *imp.Import.ID)
	assert.False(t, imp.Import.Glob)
}

func TestDecodeBareTagKinds(t *testing.T) {
	doc := `{"root": "0:0", "index": {
		"0:0": {"name": "f", "inner": "function"},
		"0:1": {"name": "Weird", "inner": "never_seen_before"}
	}, "paths": {}}`

	crate, err := DecodeCrate(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, KindFunction, crate.Index["0:0"].Kind)
	assert.Equal(t, KindUnknown, crate.Index["0:1"].Kind)
}

func TestDecodeTypeAliasTags(t *testing.T) {
	// Newer producers renamed the tag; both spellings must decode.
	doc := `{"root": "0:0", "index": {
		"0:0": {"name": "A", "inner": {"typedef": {"type": {"primitive": "u8"}}}},
		"0:1": {"name": "B", "inner": {"type_alias": {"type": {"primitive": "u8"}}}}
	}, "paths": {}}`

	crate, err := DecodeCrate(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, KindTypeAlias, crate.Index["0:0"].Kind)
	assert.Equal(t, KindTypeAlias, crate.Index["0:1"].Kind)
}

func TestDecodeStructKindShapes(t *testing.T) {
	doc := `{"root": "0:0", "index": {
		"0:0": {"name": "Unit", "inner": {"struct": {"kind": "unit", "impls": []}}},
		"0:1": {"name": "Pair", "inner": {"struct": {"kind": {"tuple": ["0:2", null]}, "impls": []}}},
		"0:3": {"name": "Opaque", "inner": {"struct": {"kind": {"plain": {"fields": [], "fields_stripped": true}}, "impls": []}}}
	}, "paths": {}}`

	crate, err := DecodeCrate(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, ShapeUnit, crate.Index["0:0"].Struct.Kind.Shape)

	pair := crate.Index["0:1"].Struct.Kind
	assert.Equal(t, ShapeTuple, pair.Shape)
	require.Len(t, pair.Tuple, 2)
	assert.Equal(t, ID("0:2"), *pair.Tuple[0])
	assert.Nil(t, pair.Tuple[1])

	opaque := crate.Index["0:3"].Struct.Kind
	assert.Equal(t, ShapePlain, opaque.Shape)
	assert.True(t, opaque.FieldsStripped)
}

func TestDecodeResolvedPathWithArgs(t *testing.T) {
	doc := `{"root": "0:0", "index": {
		"0:0": {"name": "items", "inner": {"struct_field": {"resolved_path": {
			"name": "Vec",
			"id": "5:1",
			"args": {"angle_bracketed": {"args": [{"type": {"primitive": "u32"}}]}}
		}}}}
	}, "paths": {}}`

	crate, err := DecodeCrate(strings.NewReader(doc))
	require.NoError(t, err)

	field := crate.Index["0:0"].StructField
	require.NotNil(t, field)
	require.Equal(t, TypeResolvedPath, field.Variant)
	assert.Equal(t, "Vec", field.Path.Name)
	assert.Equal(t, ID("5:1"), field.Path.ID)

	require.NotNil(t, field.Path.Args)
	require.NotNil(t, field.Path.Args.AngleBracketed)
	args := field.Path.Args.AngleBracketed.Args
	require.Len(t, args, 1)
	assert.Equal(t, ArgType, args[0].Kind)
	assert.Equal(t, TypePrimitive, args[0].Type.Variant)
	assert.Equal(t, "u32", args[0].Type.Primitive)
}

func TestDecodeGenericArgForms(t *testing.T) {
	doc := `{"root": "0:0", "index": {
		"0:0": {"name": "r", "inner": {"struct_field": {"resolved_path": {
			"name": "Cow",
			"id": "5:2",
			"args": {"angle_bracketed": {"args": [{"lifetime": "'a"}, {"type": {"primitive": "bool"}}]}}
		}}}}
	}, "paths": {}}`

	crate, err := DecodeCrate(strings.NewReader(doc))
	require.NoError(t, err)

	args := crate.Index["0:0"].StructField.Path.Args.AngleBracketed.Args
	require.Len(t, args, 2)
	assert.Equal(t, ArgLifetime, args[0].Kind)
	assert.Equal(t, ArgType, args[1].Kind)
}

func TestDecodePrimitiveItemForms(t *testing.T) {
	doc := `{"root": "0:0", "index": {
		"0:0": {"name": "u53", "inner": {"primitive": "U53"}},
		"0:1": {"name": "i54", "inner": {"primitive": {"name": "I54", "impls": ["0:9"]}}}
	}, "paths": {}}`

	crate, err := DecodeCrate(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "U53", crate.Index["0:0"].Primitive.Name)
	assert.Equal(t, "I54", crate.Index["0:1"].Primitive.Name)
	assert.Equal(t, []ID{"0:9"}, crate.Index["0:1"].Primitive.Impls)
}

func TestLastSegment(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Vec", "Vec"},
		{"mod::Shell", "Shell"},
		{"a::b::C", "C"},
		{"", ""},
	}

	for _, tt := range tests {
		p := Path{Name: tt.name}
		assert.Equal(t, tt.want, p.LastSegment())
	}
}
