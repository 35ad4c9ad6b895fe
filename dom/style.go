package dom

import "strings"

// Property is a single CSS declaration.
type Property struct {
	name  string
	value string
}

// NewProperty creates a CSS declaration. Whitespace in name is removed; value
// is kept exactly as given.
func NewProperty(name, value string) Property {
	return Property{name: stripSpace(name), value: value}
}

// Name returns the wire-name.
func (p Property) Name() string { return p.name }

// Value returns the raw value.
func (p Property) Value() string { return p.value }

// String returns the token "name: value;".
func (p Property) String() string {
	return p.name + ": " + p.value + ";"
}

// Style is an ordered list of CSS declarations rendered into a style attribute.
// Order is kept and duplicate names are all written.
type Style struct {
	props []Property
}

// NewStyle creates a style holding props in order.
func NewStyle(props ...Property) *Style {
	s := &Style{props: make([]Property, 0, len(props))}
	s.props = append(s.props, props...)
	return s
}

// Add appends p and returns the style for chaining.
func (s *Style) Add(p Property) *Style {
	s.props = append(s.props, p)
	return s
}

// Len returns the number of declarations.
func (s *Style) Len() int {
	if s == nil {
		return 0
	}
	return len(s.props)
}

// Properties returns a copy of the declarations in insertion order.
func (s *Style) Properties() []Property {
	if s == nil {
		return nil
	}
	out := make([]Property, len(s.props))
	copy(out, s.props)
	return out
}

// String concatenates every declaration token with no separator.
func (s *Style) String() string {
	if s == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range s.props {
		b.WriteString(p.String())
	}
	return b.String()
}

func (s *Style) applyVoid(e *VoidElement)           { e.SetStyle(s) }
func (s *Style) applyContainer(e *ContainerElement) { e.SetStyle(s) }
