// Package dom is the object model behind the htmldsl builders.
//
// A document is a tree of [Node] values. Nodes form a closed set:
//
//   - [Text]: raw text, written verbatim
//   - [VoidElement]: an element that can never hold children (<br>, <meta>, <img>)
//   - [ContainerElement]: an element with an ordered list of children
//   - [Embedded]: a foreign renderer (for example a gomponents node) spliced into the tree
//
// Both element kinds carry an ordered list of [Attribute] values and at most one
// [Style] block. Serialization is a single depth-first pass:
//
//	<p style="font-size: 14pt;">This is some paragraph text.</p>
//
// Attribute order, property order and child order are preserved exactly and
// nothing is de-duplicated. Values are not escaped unless a [Printer] with
// Escape set is used.
package dom

import (
	"io"
	"strings"
	"unicode"
)

// Node is anything that serializes to an HTML fragment.
//
// Render writes the same bytes String returns. The method set is sealed so the
// serializer can switch over every variant.
type Node interface {
	String() string
	Render(w io.Writer) error
	node()
}

// Renderer matches the gomponents Node interface.
type Renderer interface {
	Render(w io.Writer) error
}

// VoidOption configures a void element at construction time.
// Attributes and styles are options; nodes are not.
type VoidOption interface {
	applyVoid(e *VoidElement)
}

// ContainerOption configures a container element at construction time.
// Attributes, styles and every Node are options; nodes become children.
type ContainerOption interface {
	applyContainer(e *ContainerElement)
}

// Text is a leaf node holding raw text.
type Text string

func (Text) node() {}

// String returns the text verbatim.
func (t Text) String() string { return string(t) }

// Render writes the text verbatim.
func (t Text) Render(w io.Writer) error {
	_, err := io.WriteString(w, string(t))
	return err
}

func (t Text) applyContainer(e *ContainerElement) { e.AddChild(t) }

// Embedded splices a foreign renderer into the tree.
type Embedded struct {
	r Renderer
}

// Embed wraps r as a Node. A nil renderer writes nothing.
func Embed(r Renderer) *Embedded {
	return &Embedded{r: r}
}

func (*Embedded) node() {}

// Render delegates to the wrapped renderer.
func (e *Embedded) Render(w io.Writer) error {
	if e == nil || e.r == nil {
		return nil
	}
	return e.r.Render(w)
}

// String renders into a buffer. A render error truncates the output.
func (e *Embedded) String() string {
	var b strings.Builder
	_ = e.Render(&b)
	return b.String()
}

func (e *Embedded) applyContainer(c *ContainerElement) { c.AddChild(e) }

// stripSpace removes every whitespace rune from a wire-name.
func stripSpace(name string) string {
	if strings.IndexFunc(name, unicode.IsSpace) < 0 {
		return name
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, name)
}
