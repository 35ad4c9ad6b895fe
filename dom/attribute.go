package dom

// Attribute is a name="value" pair attached to an element.
type Attribute struct {
	name  string
	value string
}

// NewAttribute creates an attribute. Whitespace in name is removed; value is
// kept exactly as given.
func NewAttribute(name, value string) Attribute {
	return Attribute{name: stripSpace(name), value: value}
}

// Name returns the wire-name.
func (a Attribute) Name() string { return a.name }

// Value returns the raw value.
func (a Attribute) Value() string { return a.value }

// String returns the token name="value".
func (a Attribute) String() string {
	return a.name + `="` + a.value + `"`
}

func (a Attribute) applyVoid(e *VoidElement)           { e.AddAttribute(a) }
func (a Attribute) applyContainer(e *ContainerElement) { e.AddAttribute(a) }
