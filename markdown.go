package fileinspector

import (
	"fmt"
	"io"
	"strings"
)

func writeMarkdown(w io.Writer, t *table) error {
	// Minimum 3 for alignment markers.
	widths := headerWidths(t.header, t.widths)
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	if err := writeMarkdownRow(w, t.header, widths, t.aligns); err != nil {
		return err
	}

	sep := make([]string, len(widths))
	for i, width := range widths {
		switch alignAt(t.aligns, i) {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for r := range t.records {
		if err := writeMarkdownRow(w, r.cells, widths, t.aligns); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = escapeMarkdown(cells[i])
		}
		padded[i] = alignCell(cell, width, alignAt(aligns, i))
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

// escapeMarkdown keeps "|" and "\" mnemonics from breaking the table.
func escapeMarkdown(s string) string {
	return strings.NewReplacer(`\`, `\\`, "|", `\|`).Replace(s)
}
