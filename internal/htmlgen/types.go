// Package htmlgen expands naming tables into the Go accessor files of the
// html, attr and css packages.
//
// # Naming tables
//
// A table row is a triple [ident, accessor, wire]:
//
//	attributes:
//	  - [AcceptCharset, AcceptCharset, accept-charset]
//
// The ident names the wire-name constant, the accessor names the builder
// function and the wire-name is the literal text written into HTML. An empty
// accessor is derived from the wire-name (accept-charset -> AcceptCharset).
//
// # Output
//
//   - html/elements.gen.go: TagX constants, one constructor per element, Bindings
//   - attr/attributes.gen.go: NameX constants, one constructor per attribute, Bindings
//   - css/properties.gen.go: PropX constants, one constructor per property, Bindings
package htmlgen

import "errors"

// Section identifies which table a row came from.
type Section string

// Table sections
const (
	SectionElements   Section = "elements"
	SectionAttributes Section = "attributes"
	SectionProperties Section = "properties"
)

// Entry is one row of a naming table.
type Entry struct {
	Ident    string // "AcceptCharset", names the wire-name constant
	Accessor string // "AcceptCharset", names the builder function
	Wire     string // "accept-charset"
	Void     bool   // Elements only: no children, no closing tag
	Source   string // Table file the row came from
	Line     int    // 1-based row position in its section
}

// Table holds every row loaded from the naming tables, in file order.
type Table struct {
	Elements   []*Entry
	Attributes []*Entry
	Properties []*Entry
}

// Section returns the rows of one section.
func (t *Table) Section(s Section) []*Entry {
	switch s {
	case SectionElements:
		return t.Elements
	case SectionAttributes:
		return t.Attributes
	case SectionProperties:
		return t.Properties
	}
	return nil
}

// Target describes one generated file.
type Target struct {
	Section Section
	Package string // "attr"
	Dir     string // Directory relative to Config.OutputRoot
	File    string // "attributes.gen.go"
	Prefix  string // Wire-name constant prefix: "Name"
	// Reserved lists hand-written identifiers of the package that generated
	// names must not collide with.
	Reserved []string
}

// Config holds generator configuration
type Config struct {
	Tables     []string // Glob patterns for table files; empty uses the embedded defaults
	OutputRoot string   // Module root holding the html, attr and css directories
	HTMLDir    string   // "html"
	AttrDir    string   // "attr"
	CSSDir     string   // "css"
	Module     string   // Import path of the module, used to import dom
	Verbose    bool     // Enable progress output
}

// GenerateResult contains generation stats
type GenerateResult struct {
	TablesScanned       int
	ElementsGenerated   int
	AttributesGenerated int
	PropertiesGenerated int
	Files               []string
	Warnings            []string
}

// Defaults
const (
	DefaultModule     = "github.com/yacobolo/htmldsl"
	DefaultOutputRoot = "."
	DefaultHTMLDir    = "html"
	DefaultAttrDir    = "attr"
	DefaultCSSDir     = "css"
	GeneratedHeader   = "// Code generated by htmlgen. DO NOT EDIT."
)

// Table validation errors
var (
	ErrMalformedRow       = errors.New("row must have exactly 3 fields")
	ErrEmptyWireName      = errors.New("empty wire-name")
	ErrInvalidIdentifier  = errors.New("not an exported Go identifier")
	ErrDuplicateAccessor  = errors.New("duplicate accessor")
	ErrDuplicateIdent     = errors.New("duplicate identifier")
	ErrDuplicateWireName  = errors.New("duplicate wire-name")
	ErrReservedIdentifier = errors.New("identifier collides with hand-written code")
	ErrNoTables           = errors.New("no table files matched")
)

// withDefaults fills empty fields.
func (c Config) withDefaults() Config {
	if c.OutputRoot == "" {
		c.OutputRoot = DefaultOutputRoot
	}
	if c.HTMLDir == "" {
		c.HTMLDir = DefaultHTMLDir
	}
	if c.AttrDir == "" {
		c.AttrDir = DefaultAttrDir
	}
	if c.CSSDir == "" {
		c.CSSDir = DefaultCSSDir
	}
	if c.Module == "" {
		c.Module = DefaultModule
	}
	return c
}

// Targets returns the generated files in a fixed order.
func (c Config) Targets() []Target {
	c = c.withDefaults()
	return []Target{
		{
			Section:  SectionElements,
			Package:  "html",
			Dir:      c.HTMLDir,
			File:     "elements.gen.go",
			Prefix:   "Tag",
			Reserved: []string{"Binding", "Bindings", "Text", "Gomponent", "LookupKind", "New"},
		},
		{
			Section:  SectionAttributes,
			Package:  "attr",
			Dir:      c.AttrDir,
			File:     "attributes.gen.go",
			Prefix:   "Name",
			Reserved: []string{"Binding", "Bindings", "Custom", "Lookup"},
		},
		{
			Section:  SectionProperties,
			Package:  "css",
			Dir:      c.CSSDir,
			File:     "properties.gen.go",
			Prefix:   "Prop",
			Reserved: []string{"Binding", "Bindings", "Custom", "Lookup", "Parse", "Style"},
		},
	}
}
