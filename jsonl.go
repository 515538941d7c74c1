package fileinspector

import (
	"io"

	"github.com/goccy/go-json"
)

func writeJSONL(w io.Writer, t *table) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for r := range t.records {
		if err := enc.Encode(r.item); err != nil {
			return err
		}
	}
	return nil
}
