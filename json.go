package fileinspector

import (
	"io"

	"github.com/goccy/go-json"
)

// writeJSON streams the records as the elements of one JSON array.
func writeJSON(w io.Writer, t *table, o options) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	first := true
	for r := range t.records {
		if !first {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		first = false
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		if o.indent != "" {
			enc.SetIndent("", o.indent)
		}
		if err := enc.Encode(r.item); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]\n")
	return err
}
