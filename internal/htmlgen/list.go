package htmlgen

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// PrintTable lists every row of the table grouped by section
func PrintTable(w io.Writer, t *Table, useColors bool) {
	sections := []Section{SectionElements, SectionAttributes, SectionProperties}

	for i, section := range sections {
		entries := t.Section(section)
		if i > 0 {
			fmt.Fprintln(w, "")
		}
		header := fmt.Sprintf("%s (%d)", section, len(entries))
		fmt.Fprintln(w, RenderStyle(StyleCyan, header, useColors))

		width := 0
		for _, e := range entries {
			if len(e.Accessor) > width {
				width = len(e.Accessor)
			}
		}
		column := lipgloss.NewStyle().Width(width + 2)

		for _, e := range entries {
			wire := e.Wire
			if section == SectionElements {
				wire = "<" + e.Wire + ">"
				if e.Void {
					wire += " void"
				}
			}
			fmt.Fprintf(w, "  %s%s\n", column.Render(e.Accessor), RenderStyle(StyleGray, wire, useColors))
		}
	}
}
