// Package css holds the CSS property constructors and style helpers.
//
//	css.Style(css.Color("red"), css.FontFamily("monospace"))
//
// renders as color: red;font-family: monospace; inside a style attribute.
package css

import "github.com/yacobolo/htmldsl/dom"

// Binding ties a generated constructor to its table row.
type Binding struct {
	Ident    string
	Accessor string
	Wire     string
	New      func(value string) dom.Property
}

// Style returns a style block holding props in order.
func Style(props ...dom.Property) *dom.Style {
	return dom.NewStyle(props...)
}

// Custom returns a declaration with an arbitrary property name.
func Custom(name, value string) dom.Property {
	return dom.NewProperty(name, value)
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
