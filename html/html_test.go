package html

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	nethtml "golang.org/x/net/html"
	"gopkg.in/yaml.v3"
	g "maragu.dev/gomponents"

	"github.com/yacobolo/htmldsl/attr"
	"github.com/yacobolo/htmldsl/css"
	"github.com/yacobolo/htmldsl/dom"
	"github.com/yacobolo/htmldsl/tables"
)

func TestBindingsMatchTable(t *testing.T) {
	content, err := tables.FS.ReadFile("elements.yaml")
	require.NoError(t, err)

	var table struct {
		Elements struct {
			Container [][]string `yaml:"container"`
			Void      [][]string `yaml:"void"`
		} `yaml:"elements"`
	}
	require.NoError(t, yaml.Unmarshal(content, &table))

	rows := append(append([][]string{}, table.Elements.Container...), table.Elements.Void...)
	require.Len(t, Bindings, len(rows))

	for i, row := range rows {
		b := Bindings[i]
		assert.Equal(t, row[0], b.Ident)
		assert.Equal(t, row[1], b.Accessor)
		assert.Equal(t, row[2], b.Kind.Tag)
		assert.Equal(t, i >= len(table.Elements.Container), b.Kind.Void, b.Kind.Tag)
	}
}

func TestEveryElementSerializesEmpty(t *testing.T) {
	for _, b := range Bindings {
		t.Run(b.Kind.Tag, func(t *testing.T) {
			want := "<" + b.Kind.Tag + "></" + b.Kind.Tag + ">"
			if b.Kind.Void {
				want = "<" + b.Kind.Tag + ">"
			}
			assert.Equal(t, want, b.Kind.New().String())
		})
	}
}

func TestParagraph(t *testing.T) {
	p := P(css.Style(css.FontSize("14pt")), Text("This is some paragraph text."))
	assert.Equal(t, `<p style="font-size: 14pt;">This is some paragraph text.</p>`, p.String())
}

func TestMeta(t *testing.T) {
	assert.Equal(t, `<meta charset="utf-8">`, Meta(attr.Charset("utf-8")).String())
}

func TestNestedDocument(t *testing.T) {
	page := HTML(attr.Lang("en"),
		Body(
			Div(
				H4(css.Style(css.Color("red"), css.FontFamily("monospace")),
					Text("Heading"),
				),
			),
		),
	)

	want := `<html lang="en"><body><div><h4 style="color: red;font-family: monospace;">Heading</h4></div></body></html>`
	assert.Equal(t, want, page.String())

	var buf bytes.Buffer
	require.NoError(t, page.Render(&buf))
	assert.Equal(t, want, buf.String())
}

func TestOutputParsesAsHTML(t *testing.T) {
	page := HTML(attr.Lang("en"),
		Head(Meta(attr.Charset("utf-8"))),
		Body(
			Div(attr.ID("main"), attr.Class("card"),
				P(css.Style(css.FontSize("14pt")), Text("First")),
				Br(),
				Span(Text("Second")),
			),
		),
	)

	doc, err := nethtml.Parse(strings.NewReader(page.String()))
	require.NoError(t, err)

	div := findElement(doc, "div")
	require.NotNil(t, div)
	assert.Equal(t, []nethtml.Attribute{{Key: "id", Val: "main"}, {Key: "class", Val: "card"}}, div.Attr)

	var tags []string
	for c := div.FirstChild; c != nil; c = c.NextSibling {
		tags = append(tags, c.Data)
	}
	assert.Equal(t, []string{"p", "br", "span"}, tags)

	p := findElement(doc, "p")
	require.NotNil(t, p)
	assert.Equal(t, []nethtml.Attribute{{Key: "style", Val: "font-size: 14pt;"}}, p.Attr)
	assert.Equal(t, "First", p.FirstChild.Data)

	meta := findElement(doc, "meta")
	require.NotNil(t, meta)
	assert.Equal(t, "utf-8", meta.Attr[0].Val)
}

func TestGomponentInterop(t *testing.T) {
	t.Run("gomponents inside dom", func(t *testing.T) {
		div := Div(attr.Class("wrap"), Gomponent(g.El("em", g.Text("a<b"))))
		assert.Equal(t, `<div class="wrap"><em>a&lt;b</em></div>`, div.String())
	})

	t.Run("dom inside gomponents", func(t *testing.T) {
		n := g.El("section", P(Text("hi")))
		var buf bytes.Buffer
		require.NoError(t, n.Render(&buf))
		assert.Equal(t, `<section><p>hi</p></section>`, buf.String())
	})
}

func TestLookupKind(t *testing.T) {
	k, ok := LookupKind("br")
	require.True(t, ok)
	assert.True(t, k.Void)

	k, ok = LookupKind("div")
	require.True(t, ok)
	assert.False(t, k.Void)

	_, ok = LookupKind("x-widget")
	assert.False(t, ok)
}

func TestNew(t *testing.T) {
	assert.Equal(t, "<img>", New("img").String())
	assert.Equal(t, "<div></div>", New("div").String())
	assert.Equal(t, "<x-widget></x-widget>", New("x-widget").String())

	_, isVoid := New("hr").(*dom.VoidElement)
	assert.True(t, isVoid)

	// Known void tags never come back as containers
	for _, tag := range []string{"br", "meta", "img", "input"} {
		_, isContainer := New(tag).(*dom.ContainerElement)
		assert.False(t, isContainer, tag)
	}
}

func findElement(n *nethtml.Node, tag string) *nethtml.Node {
	if n.Type == nethtml.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}
