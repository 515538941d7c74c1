package fileinspector

import (
	"fmt"
	"io"
	"strings"
)

func writeTSV(w io.Writer, t *table) error {
	if _, err := fmt.Fprintln(w, strings.Join(t.header, "\t")); err != nil {
		return err
	}
	for r := range t.records {
		if _, err := fmt.Fprintln(w, strings.Join(r.cells, "\t")); err != nil {
			return err
		}
	}
	return nil
}
