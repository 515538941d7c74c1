package fileinspector

import (
	"fmt"
	"io"
	"text/template"
)

func parseTemplate(tmplStr string) (*template.Template, error) {
	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	return tmpl, nil
}

// writeGoTemplate executes the template once per record, each on its own
// line. For a dump the template data is a [Row]; for a catalog it is a
// [Column].
func writeGoTemplate(w io.Writer, tmplStr string, t *table) error {
	tmpl, err := parseTemplate(tmplStr)
	if err != nil {
		return err
	}
	for r := range t.records {
		if err := tmpl.Execute(w, r.item); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
