// Package attr holds the HTML attribute constructors.
//
// Every constructor returns a [dom.Attribute] that serializes as name="value".
// Values are written verbatim.
package attr

import "github.com/yacobolo/htmldsl/dom"

// Binding ties a generated constructor to its table row.
type Binding struct {
	Ident    string
	Accessor string
	Wire     string
	New      func(value string) dom.Attribute
}

// Custom returns an attribute with an arbitrary name. Whitespace in name is
// removed so the serialized token stays a single attribute; the value is kept
// as given.
func Custom(name, value string) dom.Attribute {
	return dom.NewAttribute(name, value)
}

var byWire = func() map[string]Binding {
	m := make(map[string]Binding, len(Bindings))
	for _, b := range Bindings {
		m[b.Wire] = b
	}
	return m
}()

// Lookup returns the binding for a wire-name.
func Lookup(wire string) (Binding, bool) {
	b, ok := byWire[wire]
	return b, ok
}
