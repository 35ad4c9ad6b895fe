package dom

import (
	"html"
	"io"
	"strings"
)

// Printer serializes node trees.
//
// The zero Printer writes every value verbatim, which is what Node.String and
// Node.Render use. With Escape set, text, attribute values and CSS values are
// HTML-escaped; wire-names and embedded renderers are never touched.
type Printer struct {
	Escape bool
}

// Sprint returns the serialized form of n.
func (p Printer) Sprint(n Node) string {
	var b strings.Builder
	_ = p.Fprint(&b, n)
	return b.String()
}

// Fprint writes the serialized form of n to w and returns the first write error.
func (p Printer) Fprint(w io.Writer, n Node) error {
	pw := &printWriter{w: w, escape: p.Escape}
	pw.node(n)
	return pw.err
}

// printWriter is a depth-first serializer that stops writing after the first error.
type printWriter struct {
	w      io.Writer
	escape bool
	err    error
}

func (p *printWriter) write(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printWriter) value(s string) {
	if p.escape {
		s = html.EscapeString(s)
	}
	p.write(s)
}

func (p *printWriter) node(n Node) {
	if isNil(n) {
		return
	}
	switch n := n.(type) {
	case Text:
		p.value(string(n))
	case *VoidElement:
		p.open(&n.element)
	case *ContainerElement:
		p.open(&n.element)
		for _, child := range n.children {
			p.node(child)
		}
		p.write("</" + n.tag + ">")
	case *Embedded:
		if p.err == nil {
			p.err = n.Render(p.w)
		}
	}
}

// open writes the start tag: name, attributes in order, then the style block.
func (p *printWriter) open(e *element) {
	p.write("<" + e.tag)
	for _, a := range e.attrs {
		p.write(" " + a.name + `="`)
		p.value(a.value)
		p.write(`"`)
	}
	if e.style != nil {
		p.write(` style="`)
		for _, prop := range e.style.props {
			p.write(prop.name + ": ")
			p.value(prop.value)
			p.write(";")
		}
		p.write(`"`)
	}
	p.write(">")
}
