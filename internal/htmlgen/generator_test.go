package htmlgen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTable = `
elements:
  container:
    - [Div, Div, div]
  void:
    - [Br, Br, br]
attributes:
  - [ID, Id, id]
  - [AcceptCharset, "", accept-charset]
properties:
  - [BackgroundColor, BackgroundColor, background-color]
`

func sampleConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	tablePath := filepath.Join(dir, "tables", "sample.yaml")
	writeFile(t, tablePath, sampleTable)

	return Config{
		Tables:     []string{tablePath},
		OutputRoot: filepath.Join(dir, "out"),
		Module:     "example.com/site",
	}
}

func TestRenderFileElements(t *testing.T) {
	config := sampleConfig(t)
	table, _, err := LoadTable(config)
	require.NoError(t, err)
	_, err = AnalyzeTable(table, config.Targets())
	require.NoError(t, err)

	src, err := RenderFile(table, config.Targets()[0], config)
	require.NoError(t, err)
	out := string(src)

	assert.True(t, strings.HasPrefix(out, GeneratedHeader+"\n"))
	assert.Contains(t, out, "package html")
	assert.Contains(t, out, `import "example.com/site/dom"`)
	assert.Contains(t, out, "TagDiv = \"div\"")
	assert.Contains(t, out, "func Div(opts ...dom.ContainerOption) *dom.ContainerElement {")
	assert.Contains(t, out, "func Br(opts ...dom.VoidOption) *dom.VoidElement {")
	assert.Contains(t, out, `{Ident: "Br", Accessor: "Br", Kind: dom.Kind{Tag: TagBr, Void: true}},`)
}

func TestRenderFileValues(t *testing.T) {
	config := sampleConfig(t)
	table, _, err := LoadTable(config)
	require.NoError(t, err)
	_, err = AnalyzeTable(table, config.Targets())
	require.NoError(t, err)

	targets := config.Targets()

	attrSrc, err := RenderFile(table, targets[1], config)
	require.NoError(t, err)
	attrOut := string(attrSrc)
	assert.Contains(t, attrOut, "package attr")
	assert.Contains(t, attrOut, "func Id(value string) dom.Attribute {")
	assert.Contains(t, attrOut, "return dom.NewAttribute(NameID, value)")
	assert.Contains(t, attrOut, "func AcceptCharset(value string) dom.Attribute {", "empty accessor derived from wire-name")

	cssSrc, err := RenderFile(table, targets[2], config)
	require.NoError(t, err)
	cssOut := string(cssSrc)
	assert.Contains(t, cssOut, "package css")
	assert.Contains(t, cssOut, "// BackgroundColor returns the background-color CSS property.")
	assert.Contains(t, cssOut, "return dom.NewProperty(PropBackgroundColor, value)")
}

func TestRenderFileDeterministic(t *testing.T) {
	table, _, err := LoadEmbedded()
	require.NoError(t, err)
	config := Config{}
	_, err = AnalyzeTable(table, config.Targets())
	require.NoError(t, err)

	for _, target := range config.Targets() {
		first, err := RenderFile(table, target, config)
		require.NoError(t, err)
		second, err := RenderFile(table, target, config)
		require.NoError(t, err)
		assert.Equal(t, first, second, target.File)
	}
}

func TestGenerate(t *testing.T) {
	config := sampleConfig(t)

	result, err := Generate(config)
	require.NoError(t, err)

	assert.Equal(t, 1, result.TablesScanned)
	assert.Equal(t, 2, result.ElementsGenerated)
	assert.Equal(t, 2, result.AttributesGenerated)
	assert.Equal(t, 1, result.PropertiesGenerated)
	assert.Empty(t, result.Warnings)

	require.Len(t, result.Files, 3)
	for _, rel := range []string{"html/elements.gen.go", "attr/attributes.gen.go", "css/properties.gen.go"} {
		path := filepath.Join(config.OutputRoot, filepath.FromSlash(rel))
		assert.Contains(t, result.Files, path)
		assert.FileExists(t, path)
	}
}

func TestGenerateCustomDirs(t *testing.T) {
	config := sampleConfig(t)
	config.HTMLDir = "ui/elements"

	result, err := Generate(config)
	require.NoError(t, err)
	assert.Contains(t, result.Files, filepath.Join(config.OutputRoot, "ui", "elements", "elements.gen.go"))
}

func TestGenerateInvalidTable(t *testing.T) {
	config := sampleConfig(t)
	writeFile(t, config.Tables[0], "attributes:\n  - [Href, Href, href]\n  - [Link, Link, href]\n")

	_, err := Generate(config)
	require.ErrorIs(t, err, ErrDuplicateWireName)
	assert.NoDirExists(t, config.OutputRoot, "nothing is written when the table is invalid")
}

func TestCheck(t *testing.T) {
	config := sampleConfig(t)

	t.Run("missing files", func(t *testing.T) {
		result, err := Check(config)
		require.NoError(t, err)
		assert.Equal(t, 3, result.FilesChecked)
		assert.Equal(t, 3, result.FilesMissing)
		assert.Equal(t, 3, result.ErrorCount)
		for _, issue := range result.Issues {
			assert.Equal(t, IssueMissingFile, issue.Text)
		}
	})

	_, err := Generate(config)
	require.NoError(t, err)

	t.Run("up to date", func(t *testing.T) {
		result, err := Check(config)
		require.NoError(t, err)
		assert.Equal(t, 3, result.FilesChecked)
		assert.Zero(t, result.ErrorCount)
		assert.Empty(t, result.Issues)
	})

	t.Run("stale after table edit", func(t *testing.T) {
		writeFile(t, config.Tables[0], strings.Replace(sampleTable, "[Div, Div, div]", "[Div, Division, div]", 1))

		result, err := Check(config)
		require.NoError(t, err)
		assert.Equal(t, 1, result.FilesStale)
		require.Len(t, result.Issues, 1)

		issue := result.Issues[0]
		assert.Equal(t, SeverityError, issue.Severity)
		assert.Equal(t, filepath.Join(config.OutputRoot, "html", "elements.gen.go"), issue.Pos.Filename)
		assert.Contains(t, issue.Text, "Division")
		assert.Positive(t, issue.Pos.Line)
		assert.Len(t, issue.SourceLines, 1)
	})
}

func TestCheckRepositoryUpToDate(t *testing.T) {
	result, err := Check(Config{OutputRoot: filepath.Join("..", "..")})
	require.NoError(t, err)
	assert.Zero(t, result.FilesMissing)
	assert.Zero(t, result.FilesStale, "run go generate ./... to refresh the generated files")
	assert.Zero(t, result.WarningCount, "check --strict passes on the default tables")
}

func TestDiffGenerated(t *testing.T) {
	want := []byte("package a\n\nconst X = 1\n")

	t.Run("equal", func(t *testing.T) {
		_, stale := diffGenerated("a.go", want, want)
		assert.False(t, stale)
	})

	t.Run("changed line", func(t *testing.T) {
		issue, stale := diffGenerated("a.go", want, []byte("package a\n\nconst X = 2\n"))
		require.True(t, stale)
		assert.Equal(t, 3, issue.Pos.Line)
		assert.Equal(t, 11, issue.Pos.Column)
		assert.Equal(t, []string{"const X = 2"}, issue.SourceLines)
	})

	t.Run("truncated", func(t *testing.T) {
		issue, stale := diffGenerated("a.go", want, []byte("package a"))
		require.True(t, stale)
		assert.Equal(t, 1, issue.Pos.Line)
	})

	t.Run("trailing lines", func(t *testing.T) {
		issue, stale := diffGenerated("a.go", []byte("package a\n\nconst X = 1"), []byte("package a\n\nconst X = 1\nvar Y = 2"))
		require.True(t, stale)
		assert.Equal(t, 4, issue.Pos.Line)
		assert.Equal(t, []string{"var Y = 2"}, issue.SourceLines)
		assert.Contains(t, issue.Text, "1 unexpected")
	})
}

func TestWarningSource(t *testing.T) {
	assert.Equal(t, "tables/a.yaml", warningSource(`tables/a.yaml row 3: element "x" is not a known HTML name`))
	assert.Equal(t, "", warningSource("no location"))
}

func TestWriteFilesCreatesDirectories(t *testing.T) {
	root := filepath.Join(t.TempDir(), "deep", "root")
	table := &Table{Properties: []*Entry{{Ident: "Color", Accessor: "Color", Wire: "color"}}}

	files, err := WriteFiles(table, Config{OutputRoot: root})
	require.NoError(t, err)
	require.Len(t, files, 3)

	content, err := os.ReadFile(filepath.Join(root, "css", "properties.gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "func Color(value string) dom.Property {")
}
