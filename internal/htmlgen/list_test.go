package htmlgen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintTable(t *testing.T) {
	table := &Table{
		Elements: []*Entry{
			{Ident: "Div", Accessor: "Div", Wire: "div"},
			{Ident: "Br", Accessor: "Br", Wire: "br", Void: true},
		},
		Attributes: []*Entry{
			{Ident: "AcceptCharset", Accessor: "AcceptCharset", Wire: "accept-charset"},
		},
	}

	var buf bytes.Buffer
	PrintTable(&buf, table, false)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	require.Equal(t, []string{
		"elements (2)",
		"  Div  <div>",
		"  Br   <br> void",
		"",
		"attributes (1)",
		"  AcceptCharset  accept-charset",
		"",
		"properties (0)",
	}, lines)
}
