package htmlgen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"
)

// fileData feeds the file templates
type fileData struct {
	Header    string
	Package   string
	DomImport string
	Prefix    string
	Entries   []*Entry

	// Attribute and property files only
	ValueType string // "Attribute"
	Ctor      string // "NewAttribute"
	Noun      string // "attribute"
}

var elementsTemplate = template.Must(template.New("elements").Parse(`{{.Header}}

package {{.Package}}

import "{{.DomImport}}"

// Element wire-names.
const (
{{- range .Entries}}
	{{$.Prefix}}{{.Ident}} = {{printf "%q" .Wire}}
{{- end}}
)
{{range .Entries}}
// {{.Accessor}} returns a new <{{.Wire}}> element.
{{- if .Void}}
func {{.Accessor}}(opts ...dom.VoidOption) *dom.VoidElement {
	return dom.Void({{$.Prefix}}{{.Ident}}, opts...)
}
{{- else}}
func {{.Accessor}}(opts ...dom.ContainerOption) *dom.ContainerElement {
	return dom.Container({{$.Prefix}}{{.Ident}}, opts...)
}
{{- end}}
{{end}}
// Bindings lists every generated element in table order.
var Bindings = []Binding{
{{- range .Entries}}
	{Ident: {{printf "%q" .Ident}}, Accessor: {{printf "%q" .Accessor}}, Kind: dom.Kind{Tag: {{$.Prefix}}{{.Ident}}{{if .Void}}, Void: true{{end}}}},
{{- end}}
}
`))

var valuesTemplate = template.Must(template.New("values").Parse(`{{.Header}}

package {{.Package}}

import "{{.DomImport}}"

// Wire-names of the generated {{.Noun}} constructors.
const (
{{- range .Entries}}
	{{$.Prefix}}{{.Ident}} = {{printf "%q" .Wire}}
{{- end}}
)
{{range .Entries}}
// {{.Accessor}} returns the {{.Wire}} {{$.Noun}}.
func {{.Accessor}}(value string) dom.{{$.ValueType}} {
	return dom.{{$.Ctor}}({{$.Prefix}}{{.Ident}}, value)
}
{{end}}
// Bindings lists every generated {{.Noun}} in table order.
var Bindings = []Binding{
{{- range .Entries}}
	{Ident: {{printf "%q" .Ident}}, Accessor: {{printf "%q" .Accessor}}, Wire: {{$.Prefix}}{{.Ident}}, New: {{.Accessor}}},
{{- end}}
}
`))

// RenderFile produces the gofmt'd source of one generated file
func RenderFile(t *Table, target Target, config Config) ([]byte, error) {
	config = config.withDefaults()

	data := fileData{
		Header:    GeneratedHeader,
		Package:   target.Package,
		DomImport: config.Module + "/dom",
		Prefix:    target.Prefix,
		Entries:   t.Section(target.Section),
	}

	tmpl := valuesTemplate
	switch target.Section {
	case SectionElements:
		tmpl = elementsTemplate
	case SectionAttributes:
		data.ValueType, data.Ctor, data.Noun = "Attribute", "NewAttribute", "attribute"
	case SectionProperties:
		data.ValueType, data.Ctor, data.Noun = "Property", "NewProperty", "CSS property"
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", target.File, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", target.File, err)
	}
	return src, nil
}

// targetPath returns where a target is written
func targetPath(target Target, config Config) string {
	config = config.withDefaults()
	return filepath.Join(config.OutputRoot, target.Dir, target.File)
}

// WriteFiles renders every target and writes it below config.OutputRoot
func WriteFiles(t *Table, config Config) ([]string, error) {
	var written []string

	for _, target := range config.Targets() {
		src, err := RenderFile(t, target, config)
		if err != nil {
			return written, err
		}

		path := targetPath(target, config)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return written, fmt.Errorf("create %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, src, 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}

		if config.Verbose {
			fmt.Printf("Wrote %s (%d entries)\n", path, len(t.Section(target.Section)))
		}
		written = append(written, path)
	}

	return written, nil
}
