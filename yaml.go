package fileinspector

import (
	"io"

	"gopkg.in/yaml.v3"
)

// writeYAML collects every record first; the encoder needs a complete
// document.
func writeYAML(w io.Writer, t *table, o options) error {
	items := []any{}
	for r := range t.records {
		items = append(items, r.item)
	}
	enc := yaml.NewEncoder(w)
	if o.indent != "" {
		enc.SetIndent(len(o.indent))
	}
	if err := enc.Encode(items); err != nil {
		return err
	}
	return enc.Close()
}
