package attr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yacobolo/htmldsl/dom"
	"github.com/yacobolo/htmldsl/tables"
)

func TestBindingsMatchTable(t *testing.T) {
	content, err := tables.FS.ReadFile("attributes.yaml")
	require.NoError(t, err)

	var table struct {
		Attributes [][]string `yaml:"attributes"`
	}
	require.NoError(t, yaml.Unmarshal(content, &table))
	require.Len(t, Bindings, len(table.Attributes))

	for i, row := range table.Attributes {
		b := Bindings[i]
		assert.Equal(t, row[0], b.Ident)
		assert.Equal(t, row[1], b.Accessor)
		assert.Equal(t, row[2], b.Wire)
	}
}

func TestEveryAttributeSerializes(t *testing.T) {
	for _, b := range Bindings {
		t.Run(b.Wire, func(t *testing.T) {
			a := b.New("V")
			assert.Equal(t, b.Wire, a.Name())
			assert.Equal(t, b.Wire+`="V"`, a.String())
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		attr dom.Attribute
		want string
	}{
		{Lang("en"), `lang="en"`},
		{Charset("utf-8"), `charset="utf-8"`},
		{AcceptCharset("utf-8"), `accept-charset="utf-8"`},
		{ID("main"), `id="main"`},
		{HTTPEquiv("refresh"), `http-equiv="refresh"`},
		{Href(""), `href=""`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.attr.String())
	}
}

func TestCustom(t *testing.T) {
	assert.Equal(t, `hx-get="/items"`, Custom("hx-get", "/items").String())
	assert.Equal(t, `data-x="1"`, Custom(" data-x ", "1").String(), "whitespace is removed from names")
}

func TestLookup(t *testing.T) {
	b, ok := Lookup("accept-charset")
	require.True(t, ok)
	assert.Equal(t, "AcceptCharset", b.Accessor)
	assert.Equal(t, `accept-charset="x"`, b.New("x").String())

	_, ok = Lookup("no-such-attribute")
	assert.False(t, ok)
}
