package html_test

import (
	"fmt"
	"os"

	"github.com/yacobolo/htmldsl/attr"
	"github.com/yacobolo/htmldsl/css"
	"github.com/yacobolo/htmldsl/dom"
	"github.com/yacobolo/htmldsl/html"
)

func Example() {
	page := html.HTML(attr.Lang("en"),
		html.Head(html.Meta(attr.Charset("utf-8"))),
		html.Body(
			html.H4(css.Style(css.Color("red"), css.FontFamily("monospace")),
				html.Text("Heading"),
			),
		),
	)
	fmt.Println(page)
	// Output: <html lang="en"><head><meta charset="utf-8"></head><body><h4 style="color: red;font-family: monospace;">Heading</h4></body></html>
}

func ExampleP() {
	p := html.P(html.Text("Hello"))
	p.SetStyle(css.Style(css.FontSize("12pt")))
	p.SetStyle(css.Style(css.FontSize("14pt")))
	_ = p.Render(os.Stdout)
	// Output: <p style="font-size: 14pt;">Hello</p>
}

func Example_escape() {
	p := html.P(attr.Title(`"quoted"`), html.Text("a < b"))
	fmt.Println(p)
	fmt.Println(dom.Printer{Escape: true}.Sprint(p))
	// Output:
	// <p title=""quoted"">a < b</p>
	// <p title="&#34;quoted&#34;">a &lt; b</p>
}
