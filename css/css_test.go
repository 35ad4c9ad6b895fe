package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yacobolo/htmldsl/tables"
)

func TestBindingsMatchTable(t *testing.T) {
	content, err := tables.FS.ReadFile("properties.yaml")
	require.NoError(t, err)

	var table struct {
		Properties [][]string `yaml:"properties"`
	}
	require.NoError(t, yaml.Unmarshal(content, &table))
	require.Len(t, Bindings, len(table.Properties))

	for i, row := range table.Properties {
		b := Bindings[i]
		assert.Equal(t, row[0], b.Ident)
		assert.Equal(t, row[1], b.Accessor)
		assert.Equal(t, row[2], b.Wire)
	}
}

func TestEveryPropertySerializes(t *testing.T) {
	for _, b := range Bindings {
		t.Run(b.Wire, func(t *testing.T) {
			p := b.New("V")
			assert.Equal(t, b.Wire, p.Name())
			assert.Equal(t, b.Wire+": V;", p.String())
		})
	}
}

func TestStyle(t *testing.T) {
	s := Style(Color("red"), FontFamily("monospace"))
	assert.Equal(t, "color: red;font-family: monospace;", s.String())
	assert.Equal(t, 2, s.Len())

	assert.Equal(t, "", Style().String())

	s = Style(Color("red"), Color("blue"))
	assert.Equal(t, "color: red;color: blue;", s.String(), "duplicates are kept in order")
}

func TestCustom(t *testing.T) {
	assert.Equal(t, "--brand: #0af;", Custom("--brand", "#0af").String())
}

func TestLookup(t *testing.T) {
	b, ok := Lookup("background-color")
	require.True(t, ok)
	assert.Equal(t, "BackgroundColor", b.Accessor)
	assert.Equal(t, "background-color: red;", b.New("red").String())

	_, ok = Lookup("colour")
	assert.False(t, ok)
}
