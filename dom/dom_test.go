package dom

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyElements(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{name: "container", node: Container("div"), want: "<div></div>"},
		{name: "void", node: Void("br"), want: "<br>"},
		{name: "kind container", node: Kind{Tag: "p"}.New(), want: "<p></p>"},
		{name: "kind void", node: Kind{Tag: "meta", Void: true}.New(), want: "<meta>"},
		{name: "text", node: Text("plain <b>"), want: "plain <b>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.String())

			var b strings.Builder
			require.NoError(t, tt.node.Render(&b))
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestAttributeToken(t *testing.T) {
	tests := []struct {
		name      string
		attrName  string
		value     string
		want      string
		wantName  string
		wantValue string
	}{
		{name: "simple", attrName: "class", value: "btn", want: `class="btn"`, wantName: "class", wantValue: "btn"},
		{name: "hyphenated", attrName: "accept-charset", value: "utf-8", want: `accept-charset="utf-8"`, wantName: "accept-charset", wantValue: "utf-8"},
		{name: "whitespace stripped from name", attrName: "accept - charset", value: "x", want: `accept-charset="x"`, wantName: "accept-charset", wantValue: "x"},
		{name: "value kept verbatim", attrName: "title", value: ` a "b" `, want: `title=" a "b" "`, wantName: "title", wantValue: ` a "b" `},
		{name: "empty value", attrName: "hidden", value: "", want: `hidden=""`, wantName: "hidden", wantValue: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAttribute(tt.attrName, tt.value)
			assert.Equal(t, tt.want, a.String())
			assert.Equal(t, tt.wantName, a.Name())
			assert.Equal(t, tt.wantValue, a.Value())
		})
	}
}

func TestPropertyToken(t *testing.T) {
	assert.Equal(t, "color: red;", NewProperty("color", "red").String())
	assert.Equal(t, "font-family: monospace;", NewProperty("font-family", "monospace").String())
	assert.Equal(t, "z-index: 3;", NewProperty("z -\tindex", "3").String())
}

func TestStyleOrderAndDuplicates(t *testing.T) {
	s := NewStyle(NewProperty("color", "red"))
	s.Add(NewProperty("font-family", "monospace")).Add(NewProperty("color", "blue"))

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "color: red;font-family: monospace;color: blue;", s.String())

	props := s.Properties()
	props[0] = NewProperty("margin", "0")
	assert.Equal(t, "color", s.Properties()[0].Name(), "Properties must return a copy")
}

func TestNilStyle(t *testing.T) {
	var s *Style
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, "", s.String())
	assert.Nil(t, s.Properties())
}

func TestAttributeOrder(t *testing.T) {
	div := Container("div").
		AddAttribute(NewAttribute("id", "a")).
		AddAttribute(NewAttribute("class", "b")).
		AddAttribute(NewAttribute("id", "c"))

	out := div.String()
	assert.Equal(t, `<div id="a" class="b" id="c"></div>`, out)
	assert.Less(t, strings.Index(out, `id="a"`), strings.Index(out, `class="b"`))
}

func TestSetStyleReplaces(t *testing.T) {
	first := NewStyle(NewProperty("color", "red"))
	second := NewStyle(NewProperty("margin", "0"))

	p := Container("p").SetStyle(first).SetStyle(second)
	assert.Equal(t, `<p style="margin: 0;"></p>`, p.String())
	assert.Same(t, second, p.Style())

	img := Void("img").SetStyle(first).SetStyle(second)
	assert.Equal(t, `<img style="margin: 0;">`, img.String())

	img.SetStyle(nil)
	assert.Equal(t, `<img>`, img.String())
}

func TestAttributesBeforeStyle(t *testing.T) {
	// Style is always written after every attribute, whatever the call order.
	e := Void("input").
		SetStyle(NewStyle(NewProperty("width", "4em"))).
		AddAttribute(NewAttribute("type", "text"))

	assert.Equal(t, `<input type="text" style="width: 4em;">`, e.String())
}

func TestParagraphScenario(t *testing.T) {
	p := Container("p",
		NewStyle(NewProperty("font-size", "14pt")),
		Text("This is some paragraph text."),
	)
	assert.Equal(t, `<p style="font-size: 14pt;">This is some paragraph text.</p>`, p.String())
}

func TestMetaScenario(t *testing.T) {
	meta := Void("meta", NewAttribute("charset", "utf-8"))
	assert.Equal(t, `<meta charset="utf-8">`, meta.String())
}

func TestNestedScenario(t *testing.T) {
	heading := NewStyle(
		NewProperty("color", "red"),
		NewProperty("font-family", "monospace"),
	)
	page := Container("html",
		NewAttribute("lang", "en"),
		Container("body",
			Container("div",
				Container("h4", heading, Text("Heading")),
			),
		),
	)

	want := `<html lang="en"><body><div><h4 style="color: red;font-family: monospace;">Heading</h4></div></body></html>`
	assert.Equal(t, want, page.String())
}

func TestOptionsApplyInOrder(t *testing.T) {
	div := Container("div",
		NewStyle(NewProperty("color", "red")),
		NewAttribute("id", "x"),
		Text("a"),
		NewStyle(NewProperty("color", "blue")),
		Void("br"),
		Text("b"),
		nil,
	)
	assert.Equal(t, `<div id="x" style="color: blue;">a<br>b</div>`, div.String())
	assert.Len(t, div.Children(), 3)
	assert.Equal(t, "div", div.Tag())
	assert.Len(t, div.Attributes(), 1)
}

func TestAddChildIgnoresNil(t *testing.T) {
	div := Container("div").AddChild(nil).AddChild(Text("x"))
	assert.Equal(t, "<div>x</div>", div.String())
}

func TestAddChildIgnoresNilPointers(t *testing.T) {
	var (
		void      *VoidElement
		container *ContainerElement
		embedded  *Embedded
	)

	div := Container("div", void, container, embedded, Text("x"))
	div.AddChild(void).AddChild(container).AddChild(embedded)

	assert.Len(t, div.Children(), 1)
	assert.Equal(t, "<div>x</div>", div.String())
	assert.Equal(t, "<ul>a</ul>", Container("ul", Group{void, Text("a"), container}).String())
	assert.NotPanics(t, func() { _ = Dump(void) })
	assert.Empty(t, Printer{Escape: true}.Sprint(container))
}

func TestVoidNeverContainsChildren(t *testing.T) {
	voidType := reflect.TypeOf(&VoidElement{})
	_, ok := voidType.MethodByName("AddChild")
	assert.False(t, ok, "void elements expose no way to add children")
	_, ok = voidType.MethodByName("Children")
	assert.False(t, ok)

	voidOption := reflect.TypeOf((*VoidOption)(nil)).Elem()
	for _, n := range []any{Text(""), &ContainerElement{}, &VoidElement{}, &Embedded{}, Group{}} {
		assert.False(t, reflect.TypeOf(n).Implements(voidOption), "%T must not be a void option", n)
	}

	containerOption := reflect.TypeOf((*ContainerOption)(nil)).Elem()
	for _, n := range []any{Text(""), &ContainerElement{}, &VoidElement{}, &Embedded{}, Group{}} {
		assert.True(t, reflect.TypeOf(n).Implements(containerOption), "%T", n)
	}
}

func TestGroup(t *testing.T) {
	g := Group{Text("a"), Void("hr"), Text("b")}
	assert.Equal(t, "a<hr>b", g.String())

	ul := Container("ul", g)
	assert.Equal(t, "<ul>a<hr>b</ul>", ul.String())
}

func TestPrinterEscape(t *testing.T) {
	n := Container("a",
		NewAttribute("title", `say "hi" & <bye>`),
		NewStyle(NewProperty("font-family", `"Fira Code"`)),
		Text("1 < 2 & 3 > 2"),
	)

	verbatim := `<a title="say "hi" & <bye>" style="font-family: "Fira Code";">1 < 2 & 3 > 2</a>`
	assert.Equal(t, verbatim, n.String())
	assert.Equal(t, verbatim, Printer{}.Sprint(n))

	escaped := `<a title="say &#34;hi&#34; &amp; &lt;bye&gt;" style="font-family: &#34;Fira Code&#34;;">1 &lt; 2 &amp; 3 &gt; 2</a>`
	assert.Equal(t, escaped, Printer{Escape: true}.Sprint(n))
}

type failingWriter struct {
	after int
	n     int
}

var errWrite = errors.New("write failed")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n >= w.after {
		return 0, errWrite
	}
	w.n++
	return len(p), nil
}

func TestRenderReturnsFirstError(t *testing.T) {
	n := Container("div", Text("a"), Text("b"), Text("c"))
	w := &failingWriter{after: 2}

	err := n.Render(w)
	require.ErrorIs(t, err, errWrite)
	assert.Equal(t, 2, w.n, "writing must stop after the first error")
}

type staticRenderer string

func (s staticRenderer) Render(w io.Writer) error {
	_, err := io.WriteString(w, string(s))
	return err
}

func TestEmbedded(t *testing.T) {
	div := Container("div", Embed(staticRenderer("<x-widget></x-widget>")))
	assert.Equal(t, "<div><x-widget></x-widget></div>", div.String())

	// Embedded output is never escaped.
	assert.Equal(t, "<div><x-widget></x-widget></div>", Printer{Escape: true}.Sprint(div))

	assert.Equal(t, "", Embed(nil).String())
}

func TestDump(t *testing.T) {
	page := Container("html",
		NewAttribute("lang", "en"),
		Container("body",
			Void("br"),
			Container("p", NewStyle(NewProperty("color", "red")), Text("Hello")),
		),
	)

	out := Dump(page)
	assert.Contains(t, out, `<html> lang="en"`)
	assert.Contains(t, out, "<br> (void)")
	assert.Contains(t, out, "<p> style{color: red;}")
	assert.Contains(t, out, `"Hello"`)
	assert.Less(t, strings.Index(out, "<body>"), strings.Index(out, "<br>"))
}
