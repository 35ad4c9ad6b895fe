package htmlgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTable(t *testing.T) {
	content := []byte(`
elements:
  container:
    - [Div, Div, div]
    - [HTML, HTML, html]
  void:
    - [Br, Br, br]
attributes:
  - [AcceptCharset, AcceptCharset, accept-charset]
properties:
  - [BackgroundColor, BackgroundColor, background-color]
`)

	table := &Table{}
	require.NoError(t, ParseTable(table, content, "test.yaml"))

	require.Len(t, table.Elements, 3)
	assert.Equal(t, "Div", table.Elements[0].Ident)
	assert.False(t, table.Elements[0].Void)
	assert.Equal(t, "br", table.Elements[2].Wire)
	assert.True(t, table.Elements[2].Void, "void rows follow container rows")

	require.Len(t, table.Attributes, 1)
	attr := table.Attributes[0]
	assert.Equal(t, "accept-charset", attr.Wire)
	assert.Equal(t, "test.yaml", attr.Source)
	assert.Equal(t, 1, attr.Line)

	require.Len(t, table.Properties, 1)
	assert.Equal(t, "BackgroundColor", table.Properties[0].Accessor)
}

func TestParseTableErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "two fields",
			content: "attributes:\n  - [Id, id]\n",
			wantErr: ErrMalformedRow,
		},
		{
			name:    "four fields",
			content: "properties:\n  - [Color, Color, color, extra]\n",
			wantErr: ErrMalformedRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ParseTable(&Table{}, []byte(tt.content), "bad.yaml")
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("unknown section", func(t *testing.T) {
		err := ParseTable(&Table{}, []byte("selectors:\n  - [A, A, a]\n"), "bad.yaml")
		require.Error(t, err)
	})
}

func TestParseTableEmpty(t *testing.T) {
	table := &Table{}
	require.NoError(t, ParseTable(table, nil, "empty.yaml"))
	assert.Empty(t, table.Elements)
	assert.Empty(t, table.Attributes)
	assert.Empty(t, table.Properties)
}

func TestLoadEmbedded(t *testing.T) {
	table, files, err := LoadEmbedded()
	require.NoError(t, err)
	assert.Equal(t, 3, files)

	assert.NotEmpty(t, table.Elements)
	assert.NotEmpty(t, table.Attributes)
	assert.NotEmpty(t, table.Properties)

	var voids int
	for _, e := range table.Elements {
		if e.Void {
			voids++
		}
	}
	assert.Equal(t, 14, voids)
}

func TestLoadTableFromFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.yaml"), "attributes:\n  - [Href, Href, href]\n")
	writeFile(t, filepath.Join(dir, "b.yml"), "attributes:\n  - [Src, Src, src]\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "attributes:\n  - [Alt, Alt, alt]\n")

	table, files, err := LoadTable(Config{Tables: []string{filepath.Join(dir, "*")}})
	require.NoError(t, err)
	assert.Equal(t, 2, files)

	require.Len(t, table.Attributes, 2)
	assert.Equal(t, "href", table.Attributes[0].Wire)
	assert.Equal(t, "src", table.Attributes[1].Wire)
}

func TestLoadTableNoMatch(t *testing.T) {
	_, _, err := LoadTable(Config{Tables: []string{filepath.Join(t.TempDir(), "*.yaml")}})
	require.ErrorIs(t, err, ErrNoTables)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
