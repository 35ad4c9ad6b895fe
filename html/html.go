// Package html holds the element constructors.
//
// Container elements accept attributes, a style and child nodes; void
// elements accept only attributes and a style:
//
//	html.P(css.Style(css.FontSize("14pt")), html.Text("This is some paragraph text."))
//	html.Meta(attr.Charset("utf-8"))
package html

import (
	g "maragu.dev/gomponents"

	"github.com/yacobolo/htmldsl/dom"
)

// Binding ties a generated constructor to its table row.
type Binding struct {
	Ident    string
	Accessor string
	Kind     dom.Kind
}

// Text returns a text node written verbatim.
func Text(s string) dom.Text {
	return dom.Text(s)
}

// Gomponent splices a gomponents node into the tree. Every dom node is also
// a valid gomponents node, so trees can be nested either way.
func Gomponent(n g.Node) *dom.Embedded {
	return dom.Embed(n)
}

var kinds = func() map[string]dom.Kind {
	m := make(map[string]dom.Kind, len(Bindings))
	for _, b := range Bindings {
		m[b.Kind.Tag] = b.Kind
	}
	return m
}()

// LookupKind returns the kind registered for tag.
func LookupKind(tag string) (dom.Kind, bool) {
	k, ok := kinds[tag]
	return k, ok
}

// New returns an empty element for tag. Tags missing from the table are
// treated as container elements.
func New(tag string) dom.Node {
	if k, ok := LookupKind(tag); ok {
		return k.New()
	}
	return dom.Container(tag)
}
