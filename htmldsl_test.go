package htmldsl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratedFilesUpToDate(t *testing.T) {
	result, err := Check(Config{})
	require.NoError(t, err)

	assert.Equal(t, 3, result.FilesChecked)
	assert.Zero(t, result.ErrorCount, "run go generate to refresh the generated files")
}

func TestGenerateIntoTempDir(t *testing.T) {
	root := t.TempDir()

	result, err := Generate(Config{OutputRoot: root})
	require.NoError(t, err)
	assert.Len(t, result.Files, 3)
	assert.Equal(t, 109, result.ElementsGenerated)
	assert.Equal(t, 162, result.AttributesGenerated)
	assert.Equal(t, 196, result.PropertiesGenerated)

	check, err := Check(Config{OutputRoot: root})
	require.NoError(t, err)
	assert.Zero(t, check.ErrorCount)
}

func TestList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, List(&buf, Config{}))

	out := buf.String()
	assert.Contains(t, out, "elements (109)")
	assert.Contains(t, out, "attributes (162)")
	assert.Contains(t, out, "properties (196)")
	assert.Contains(t, out, "<meta> void")
}
