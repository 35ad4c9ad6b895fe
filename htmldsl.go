// Package htmldsl provides a typed Go DSL for HTML documents with inline CSS,
// and the generator that produces its element, attribute and CSS property
// constructors from naming tables.
//
// # Building documents
//
//	page := html.HTML(attr.Lang("en"),
//		html.Head(
//			html.Meta(attr.Charset("utf-8")),
//		),
//		html.Body(
//			html.H4(css.Style(css.Color("red"), css.FontFamily("monospace")),
//				html.Text("Heading"),
//			),
//		),
//	)
//	fmt.Println(page.String())
//
// Void elements such as html.Meta accept attributes and a style but no
// children; passing a child is a compile error.
//
// # Generation
//
// The constructors in the html, attr and css packages are generated from
// the tables in tables/:
//
//	result, err := htmldsl.Generate(htmldsl.Config{OutputRoot: "."})
//
// or with the CLI:
//
//	go run ./cmd/htmlgen generate
//	go run ./cmd/htmlgen check
package htmldsl

//go:generate go run ./cmd/htmlgen generate --quiet

import (
	"fmt"
	"io"

	"github.com/yacobolo/htmldsl/internal/htmlgen"
)

type (
	// Config holds generator configuration.
	Config = htmlgen.Config
	// GenerateResult contains generation stats.
	GenerateResult = htmlgen.GenerateResult
	// CheckResult holds drift findings for the generated files.
	CheckResult = htmlgen.CheckResult
)

// Generate loads the naming tables and writes the generated Go files.
func Generate(config Config) (*GenerateResult, error) {
	return htmlgen.Generate(config)
}

// Check reports generated files that are missing or out of date.
func Check(config Config) (*CheckResult, error) {
	return htmlgen.Check(config)
}

// List writes every element, attribute and CSS property of the configured
// tables to w, grouped by section.
func List(w io.Writer, config Config) error {
	table, _, err := htmlgen.LoadTable(config)
	if err != nil {
		return err
	}
	if _, err := htmlgen.AnalyzeTable(table, config.Targets()); err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}
	htmlgen.PrintTable(w, table, false)
	return nil
}
