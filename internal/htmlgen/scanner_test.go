package htmlgen

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTableFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"tables/elements.yaml", true},
		{"tables/extra.yml", true},
		{"tables/UPPER.YAML", true},
		{"tables/readme.md", false},
		{"tables/yaml", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, isTableFile(tt.path))
		})
	}
}

func TestExpandTablePatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.yaml"), "")
	writeFile(t, filepath.Join(dir, "nested", "b.yml"), "")
	writeFile(t, filepath.Join(dir, "nested", "deeper", "c.yaml"), "")
	writeFile(t, filepath.Join(dir, "nested", "notes.txt"), "")

	files, stats, err := expandTablePatterns([]string{
		filepath.Join(dir, "**", "*"),
		filepath.Join(dir, "a.yaml"), // already matched
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.yaml"),
		filepath.Join(dir, "nested", "b.yml"),
		filepath.Join(dir, "nested", "deeper", "c.yaml"),
	}, files)
	assert.Equal(t, 4, stats.FilesDiscovered)
	assert.Equal(t, 3, stats.FilesScanned)
	assert.Equal(t, 1, stats.FilesSkipped)
}
