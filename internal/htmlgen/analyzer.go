package htmlgen

import (
	"fmt"
	"go/token"
	"strings"
	"unicode"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AnalyzeTable normalizes every row and checks the table against the targets.
// Hard errors stop generation; suspicious but valid rows become warnings.
func AnalyzeTable(t *Table, targets []Target) ([]string, error) {
	var warnings []string

	for _, target := range targets {
		entries := t.Section(target.Section)

		for _, e := range entries {
			normalizeEntry(e)
			if err := validateEntry(e); err != nil {
				return nil, err
			}
			if w := vocabularyWarning(target.Section, e); w != "" {
				warnings = append(warnings, w)
			}
		}

		if err := checkCollisions(entries, target); err != nil {
			return nil, err
		}
	}

	return warnings, nil
}

// normalizeEntry strips whitespace from the wire-name and derives missing names
func normalizeEntry(e *Entry) {
	e.Ident = strings.TrimSpace(e.Ident)
	e.Accessor = strings.TrimSpace(e.Accessor)
	e.Wire = removeWhitespace(e.Wire)

	if e.Accessor == "" {
		e.Accessor = toGoName(e.Wire)
	}
	if e.Ident == "" {
		e.Ident = e.Accessor
	}
}

func validateEntry(e *Entry) error {
	if e.Wire == "" {
		return fmt.Errorf("%s row %d: %w", e.Source, e.Line, ErrEmptyWireName)
	}
	for _, name := range []string{e.Ident, e.Accessor} {
		if !token.IsIdentifier(name) || !token.IsExported(name) {
			return fmt.Errorf("%s row %d: %q: %w", e.Source, e.Line, name, ErrInvalidIdentifier)
		}
	}
	return nil
}

// checkCollisions rejects duplicate rows and generated names that clash with
// each other or with the hand-written part of the package
func checkCollisions(entries []*Entry, target Target) error {
	owners := make(map[string]*Entry) // generated Go name -> row
	wires := make(map[string]*Entry)
	idents := make(map[string]*Entry)

	reserved := make(map[string]bool, len(target.Reserved))
	for _, r := range target.Reserved {
		reserved[r] = true
	}

	for _, e := range entries {
		if prev, ok := wires[e.Wire]; ok {
			return fmt.Errorf("%s row %d: %q also at %s row %d: %w",
				e.Source, e.Line, e.Wire, prev.Source, prev.Line, ErrDuplicateWireName)
		}
		wires[e.Wire] = e

		if prev, ok := idents[e.Ident]; ok {
			return fmt.Errorf("%s row %d: %q also at %s row %d: %w",
				e.Source, e.Line, e.Ident, prev.Source, prev.Line, ErrDuplicateIdent)
		}
		idents[e.Ident] = e

		constName := target.Prefix + e.Ident
		for _, name := range []string{e.Accessor, constName} {
			if reserved[name] {
				return fmt.Errorf("%s row %d: %s.%s: %w", e.Source, e.Line, target.Package, name, ErrReservedIdentifier)
			}
			if prev, ok := owners[name]; ok {
				return fmt.Errorf("%s row %d: %s.%s also generated by %s row %d: %w",
					e.Source, e.Line, target.Package, name, prev.Source, prev.Line, ErrDuplicateAccessor)
			}
			owners[name] = e
		}
	}

	return nil
}

// vocabularyWarning flags wire-names that HTML or CSS would not recognize
func vocabularyWarning(section Section, e *Entry) string {
	switch section {
	case SectionElements:
		if atom.Lookup([]byte(e.Wire)) == 0 {
			return fmt.Sprintf("%s row %d: element %q is not a known HTML name", e.Source, e.Line, e.Wire)
		}
	case SectionAttributes:
		if atom.Lookup([]byte(e.Wire)) == 0 && !strings.HasPrefix(e.Wire, "data-") && !strings.HasPrefix(e.Wire, "aria-") && !isEventHandler(e.Wire) {
			return fmt.Sprintf("%s row %d: attribute %q is not a known HTML name", e.Source, e.Line, e.Wire)
		}
	case SectionProperties:
		if !isCSSIdent(e.Wire) {
			return fmt.Sprintf("%s row %d: property %q is not a single CSS identifier", e.Source, e.Line, e.Wire)
		}
	}
	return ""
}

// isEventHandler reports whether name looks like an on* event handler
// attribute. The atom table only knows a fixed subset of them.
func isEventHandler(name string) bool {
	event, ok := strings.CutPrefix(name, "on")
	if !ok || event == "" {
		return false
	}
	for _, r := range event {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// isCSSIdent reports whether name lexes as exactly one CSS identifier
func isCSSIdent(name string) bool {
	lexer := css.NewLexer(parse.NewInputString(name))
	tt, _ := lexer.Next()
	if tt != css.IdentToken && tt != css.CustomPropertyNameToken {
		return false
	}
	tt, _ = lexer.Next()
	return tt == css.ErrorToken
}

// removeWhitespace drops every whitespace rune
func removeWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// toGoName converts a kebab-case wire-name to PascalCase
func toGoName(wire string) string {
	parts := strings.FieldsFunc(wire, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	caser := cases.Title(language.English)
	for i, part := range parts {
		parts[i] = caser.String(part)
	}

	return strings.Join(parts, "")
}
