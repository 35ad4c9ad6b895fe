package dom

import (
	"io"
	"strings"
)

// Kind binds an element wire-name to its content model.
type Kind struct {
	Tag  string
	Void bool
}

// String returns the tag.
func (k Kind) String() string { return k.Tag }

// New returns an empty element of this kind: a *VoidElement when Void is set,
// otherwise a *ContainerElement.
func (k Kind) New() Node {
	if k.Void {
		return Void(k.Tag)
	}
	return Container(k.Tag)
}

// element holds what void and container elements share.
type element struct {
	tag   string
	attrs []Attribute
	style *Style
}

// Tag returns the element wire-name.
func (e *element) Tag() string { return e.tag }

// Attributes returns a copy of the attributes in insertion order.
func (e *element) Attributes() []Attribute {
	out := make([]Attribute, len(e.attrs))
	copy(out, e.attrs)
	return out
}

// Style returns the style block, or nil if none is set.
func (e *element) Style() *Style { return e.style }

// VoidElement is an element that never has children or a closing tag.
type VoidElement struct {
	element
}

// Void creates a void element with the given wire-name. The tag is not
// checked against any vocabulary.
func Void(tag string, opts ...VoidOption) *VoidElement {
	e := &VoidElement{element{tag: stripSpace(tag)}}
	for _, opt := range opts {
		if opt != nil {
			opt.applyVoid(e)
		}
	}
	return e
}

func (*VoidElement) node() {}

// AddAttribute appends a. Duplicates are kept.
func (e *VoidElement) AddAttribute(a Attribute) *VoidElement {
	e.attrs = append(e.attrs, a)
	return e
}

// SetStyle replaces the style block. A nil style removes it.
func (e *VoidElement) SetStyle(s *Style) *VoidElement {
	e.style = s
	return e
}

// String serializes the element.
func (e *VoidElement) String() string { return Printer{}.Sprint(e) }

// Render writes the serialized element to w.
func (e *VoidElement) Render(w io.Writer) error { return Printer{}.Fprint(w, e) }

func (e *VoidElement) applyContainer(c *ContainerElement) { c.AddChild(e) }

// ContainerElement is an element with an ordered list of children.
type ContainerElement struct {
	element
	children []Node
}

// Container creates a container element with the given wire-name. The tag is
// not checked against any vocabulary, so Container("br") yields <br></br>. Use
// the generated html accessors, html.New or Kind.New to pick the element kind
// from the tag.
func Container(tag string, opts ...ContainerOption) *ContainerElement {
	e := &ContainerElement{element: element{tag: stripSpace(tag)}}
	for _, opt := range opts {
		if opt != nil {
			opt.applyContainer(e)
		}
	}
	return e
}

func (*ContainerElement) node() {}

// AddAttribute appends a. Duplicates are kept.
func (e *ContainerElement) AddAttribute(a Attribute) *ContainerElement {
	e.attrs = append(e.attrs, a)
	return e
}

// SetStyle replaces the style block. A nil style removes it.
func (e *ContainerElement) SetStyle(s *Style) *ContainerElement {
	e.style = s
	return e
}

// AddChild appends n, taking ownership of it. A nil node, including a nil
// element pointer, is ignored.
func (e *ContainerElement) AddChild(n Node) *ContainerElement {
	if isNil(n) {
		return e
	}
	e.children = append(e.children, n)
	return e
}

// Children returns a copy of the children in insertion order.
func (e *ContainerElement) Children() []Node {
	out := make([]Node, len(e.children))
	copy(out, e.children)
	return out
}

// String serializes the element and its subtree.
func (e *ContainerElement) String() string { return Printer{}.Sprint(e) }

// Render writes the serialized subtree to w.
func (e *ContainerElement) Render(w io.Writer) error { return Printer{}.Fprint(w, e) }

func (e *ContainerElement) applyContainer(c *ContainerElement) { c.AddChild(e) }

// isNil reports whether n is nil or a nil pointer variant.
func isNil(n Node) bool {
	switch n := n.(type) {
	case nil:
		return true
	case *VoidElement:
		return n == nil
	case *ContainerElement:
		return n == nil
	case *Embedded:
		return n == nil
	}
	return false
}

// Group collects nodes for passing as a single container option.
type Group []Node

func (g Group) applyContainer(e *ContainerElement) {
	for _, n := range g {
		e.AddChild(n)
	}
}

// String serializes each node in order.
func (g Group) String() string {
	var b strings.Builder
	for _, n := range g {
		if n != nil {
			b.WriteString(n.String())
		}
	}
	return b.String()
}
