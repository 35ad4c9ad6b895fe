package css

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	tcss "github.com/tdewolff/parse/v2/css"

	"github.com/yacobolo/htmldsl/dom"
)

// ErrMalformedDeclaration is returned by Parse for a declaration that is not
// of the form "name: value".
var ErrMalformedDeclaration = errors.New("malformed declaration")

// Parse builds a style from an inline declaration list such as
// "color: red; font-family: monospace". Declarations keep their order and
// duplicates are kept. Property names are not checked against any vocabulary.
func Parse(text string) (*dom.Style, error) {
	style := dom.NewStyle()
	lexer := tcss.NewLexer(parse.NewInputString(text))

	var (
		name  string
		colon bool
		value []string
	)
	index := 1

	flush := func() error {
		if name == "" && !colon && len(value) == 0 {
			return nil // empty declaration, e.g. ";;"
		}
		v := strings.TrimSpace(strings.Join(value, ""))
		if name == "" || !colon || v == "" {
			return fmt.Errorf("declaration %d %q: %w", index, name+strings.Join(value, ""), ErrMalformedDeclaration)
		}
		style.Add(dom.NewProperty(name, v))
		name, colon, value = "", false, nil
		return nil
	}

	for {
		tt, data := lexer.Next()

		switch {
		case tt == tcss.ErrorToken:
			if err := lexer.Err(); err != nil && err != io.EOF {
				return nil, fmt.Errorf("lex style: %w", err)
			}
			if err := flush(); err != nil {
				return nil, err
			}
			return style, nil
		case tt == tcss.CommentToken:
			continue
		case tt == tcss.SemicolonToken:
			if err := flush(); err != nil {
				return nil, err
			}
			index++
		case colon:
			value = append(value, string(data))
		case tt == tcss.WhitespaceToken:
			continue
		case name == "" && (tt == tcss.IdentToken || tt == tcss.CustomPropertyNameToken):
			name = string(data)
		case name != "" && tt == tcss.ColonToken:
			colon = true
		default:
			// A stray token before the colon
			value = append(value, string(data))
			return nil, fmt.Errorf("declaration %d %q: %w", index, name+strings.Join(value, ""), ErrMalformedDeclaration)
		}
	}
}
