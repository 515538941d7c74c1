package fileinspector

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Format represents an output format.
type Format string

const (
	Classic  Format = "classic"
	Table    Format = "table"
	Markdown Format = "markdown"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
	HTML     Format = "html"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Classic, Table, Markdown, CSV, TSV, JSON, JSONL, YAML, HTML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each row using a Go text/template.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

var borderNames = map[string]BorderStyle{
	"rounded": BorderRounded,
	"none":    BorderNone,
	"ascii":   BorderASCII,
	"heavy":   BorderHeavy,
	"double":  BorderDouble,
}

// ParseBorder parses a border style name such as "ascii".
func ParseBorder(s string) (BorderStyle, error) {
	if b, ok := borderNames[s]; ok {
		return b, nil
	}
	return 0, fmt.Errorf("%w: border %q", ErrUnsupportedFormat, s)
}

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

type options struct {
	border      BorderStyle
	pageSize    int
	headerStyle func(string) string
	indent      string
}

// Option configures [Write].
type Option func(*options)

// WithBorder sets the border style of the Table format.
// Default: BorderRounded.
func WithBorder(b BorderStyle) Option {
	return func(o *options) { o.border = b }
}

// WithPageSize re-prints the Table header every n data rows.
// Zero disables paging.
func WithPageSize(n int) Option {
	return func(o *options) { o.pageSize = n }
}

// WithHeaderStyle wraps header text after alignment, so escape codes never
// affect width calculations. Used by the Classic and Table formats.
func WithHeaderStyle(fn func(string) string) Option {
	return func(o *options) { o.headerStyle = fn }
}

// WithIndent sets the JSON and YAML indentation.
// Without it, JSON is compact and YAML uses its default indent.
func WithIndent(indent string) Option {
	return func(o *options) { o.indent = indent }
}

// Write renders src in format f to w. Invalid input is reported before
// anything is written.
func Write(w io.Writer, f Format, src Source, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	// Validate the template before touching the source.
	tmpl, isTemplate := strings.CutPrefix(string(f), goTemplatePrefix)
	if !isTemplate && !f.valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if isTemplate {
		if _, err := parseTemplate(tmpl); err != nil {
			return err
		}
	}

	t, err := src.table()
	if err != nil {
		return err
	}

	switch f {
	case Classic:
		return writeClassic(w, t, o)
	case Table:
		return writeTable(w, t, o)
	case Markdown:
		return writeMarkdown(w, t)
	case CSV:
		return writeCSV(w, t)
	case TSV:
		return writeTSV(w, t)
	case JSON:
		return writeJSON(w, t, o)
	case JSONL:
		return writeJSONL(w, t)
	case YAML:
		return writeYAML(w, t, o)
	case HTML:
		return writeHTML(w, t)
	default:
		return writeGoTemplate(w, tmpl, t)
	}
}

func (f Format) valid() bool {
	for _, known := range formats {
		if f == known {
			return true
		}
	}
	return false
}

// Marshal renders src in format f and returns the bytes.
func Marshal(f Format, src Source, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, src, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
