package fileinspector

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// columnPadding is the number of spaces in front of every classic cell.
const columnPadding = 3

// Render writes the classic view of src[start:end+1] under layout l: a blank
// line, a header of column labels, a separator of "=" as long as the header,
// and one line per row prefixed with its byte offset.
func Render(w io.Writer, l *Layout, src []byte, start, end int) error {
	return Write(w, Classic, Dump{Layout: l, Data: src, Start: start, End: end})
}

// Lines returns the output of [Render] split into lines.
func Lines(l *Layout, src []byte, start, end int) ([]string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, l, src, start, end); err != nil {
		return nil, err
	}
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n"), nil
}

// writeClassic renders t as right-justified cells behind a "key:" lead
// column. The lead column is one wider than its minimum width to make room
// for the colon and carries no header label.
func writeClassic(w io.Writer, t *table, o options) error {
	lead := t.widths[0] + 1
	pad := strings.Repeat(" ", columnPadding)

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", lead))
	for i := 1; i < len(t.header); i++ {
		sb.WriteString(alignCell(t.header[i], t.widths[i]+columnPadding, AlignRight))
	}
	header := sb.String()
	sep := strings.Repeat("=", len(header))
	if o.headerStyle != nil {
		header = o.headerStyle(header)
	}
	if _, err := fmt.Fprintf(w, "\n%s\n%s\n", header, sep); err != nil {
		return err
	}

	for r := range t.records {
		sb.Reset()
		sb.WriteString(alignCell(r.cells[0]+":", lead, AlignRight))
		for i := 1; i < len(r.cells); i++ {
			sb.WriteString(pad)
			sb.WriteString(alignCell(r.cells[i], t.widths[i], AlignRight))
		}
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
