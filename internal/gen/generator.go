package gen

import (
	"bytes"
	"fmt"
	"sort"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/mre/crux/internal/portable"
	"github.com/mre/crux/internal/symbolgraph"
)

// GeneratorConfig holds configuration for binding generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName: "shared_types",
		OutputDir:   "./generated",
	}
}

// Generator emits Go bindings from a portable data model.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "types.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate emits one file holding every collected type. Output is sorted by
// type name, so two runs over the same model are byte-identical.
func (g *Generator) Generate(model *portable.Model) ([]GeneratedFile, error) {
	data := g.buildTemplateData(model)

	var buf bytes.Buffer
	if err := bindingsTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute bindings template: %w", err)
	}

	formatted, err := imports.Process(data.Filename, buf.Bytes(), nil)
	if err != nil {
		// Return unformatted code for debugging
		return []GeneratedFile{{
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}}, fmt.Errorf("failed to format generated code: %w", err)
	}

	return []GeneratedFile{{
		Filename: data.Filename,
		Content:  formatted,
	}}, nil
}

// templateData holds all data needed for the bindings template.
type templateData struct {
	PackageName string
	Filename    string
	Structs     []structData
	PlainEnums  []plainEnumData
	SumEnums    []sumEnumData
	Aliases     []aliasData
}

type structData struct {
	Name   string
	Fields []fieldData
}

type fieldData struct {
	Name string
	Type string
	Tag  string
}

// plainEnumData is a sum type whose variants all carry no payload. It
// becomes a string type plus constants.
type plainEnumData struct {
	Name     string
	Variants []constData
}

type constData struct {
	Name  string
	Value string
}

// sumEnumData is an algebraic sum type. It becomes a sealed interface plus
// one struct per variant.
type sumEnumData struct {
	Name     string
	Marker   string
	Variants []structData
}

type aliasData struct {
	Name string
	Type string
}

func (g *Generator) buildTemplateData(model *portable.Model) *templateData {
	data := &templateData{
		PackageName: g.config.PackageName,
		Filename:    "types.go",
	}

	for _, s := range sortedByName(model.Structs, func(s *portable.Struct) string { return s.Name }) {
		data.Structs = append(data.Structs, structData{
			Name:   exportedName(s.Name),
			Fields: fieldList(s.Fields),
		})
	}

	for _, e := range sortedByName(model.Enums, func(e *portable.Enum) string { return e.Name }) {
		if isPlainOnly(e) {
			data.PlainEnums = append(data.PlainEnums, plainEnum(e))
		} else {
			data.SumEnums = append(data.SumEnums, sumEnum(e))
		}
	}

	for _, a := range sortedByName(model.Aliases, func(a *portable.Alias) string { return a.Name }) {
		data.Aliases = append(data.Aliases, aliasData{
			Name: exportedName(a.Name),
			Type: goType(a.Type),
		})
	}

	return data
}

// sortedByName flattens an Id-keyed map into a name-ordered slice. Iteration
// over the map itself would leak map ordering into the output.
func sortedByName[T any](m map[symbolgraph.ID]T, name func(T) string) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}

	sort.Slice(out, func(i, j int) bool { return name(out[i]) < name(out[j]) })

	return out
}

func fieldList(fields []portable.Field) []fieldData {
	out := make([]fieldData, 0, len(fields))
	for _, f := range fields {
		out = append(out, fieldData{
			Name: exportedName(f.Name),
			Type: goType(f.Type),
			Tag:  fmt.Sprintf("`json:%q`", f.Name),
		})
	}

	return out
}

func isPlainOnly(e *portable.Enum) bool {
	for _, v := range e.Variants {
		if v.Shape != symbolgraph.VariantPlain {
			return false
		}
	}

	return true
}

func plainEnum(e *portable.Enum) plainEnumData {
	data := plainEnumData{Name: exportedName(e.Name)}
	for _, v := range e.Variants {
		data.Variants = append(data.Variants, constData{
			Name:  data.Name + exportedName(v.Name),
			Value: v.Name,
		})
	}

	return data
}

func sumEnum(e *portable.Enum) sumEnumData {
	name := exportedName(e.Name)
	data := sumEnumData{
		Name:   name,
		Marker: "is" + name,
	}

	for _, v := range e.Variants {
		data.Variants = append(data.Variants, structData{
			Name:   name + exportedName(v.Name),
			Fields: fieldList(v.Fields),
		})
	}

	return data
}

var bindingsTemplate = template.Must(template.New("bindings").Parse(`// Code generated by crux. DO NOT EDIT.

package {{.PackageName}}
{{range .Aliases}}
type {{.Name}} = {{.Type}}
{{end}}
{{- range .Structs}}
type {{.Name}} struct {
{{- range .Fields}}
	{{.Name}} {{.Type}} {{.Tag}}
{{- end}}
}
{{end}}
{{- range $enum := .PlainEnums}}
type {{$enum.Name}} string

const (
{{- range .Variants}}
	{{.Name}} {{$enum.Name}} = "{{.Value}}"
{{- end}}
)
{{end}}
{{- range $enum := .SumEnums}}
type {{$enum.Name}} interface {
	{{$enum.Marker}}()
}
{{range $variant := $enum.Variants}}
type {{$variant.Name}} struct {
{{- range .Fields}}
	{{.Name}} {{.Type}} {{.Tag}}
{{- end}}
}

func ({{$variant.Name}}) {{$enum.Marker}}() {}
{{end}}
{{- end}}
`))
