// Package fileinspector renders raw bytes as a multi-column table where every
// column reinterprets the same byte stream under a different fixed-width
// encoding: characters, signed and unsigned integers, floats, bit strings
// and hex.
//
// # Format Specifications
//
// A format specification is a string of one-character codes. Each character
// selects one column, left to right; repeats are allowed:
//
//	a        character (control bytes shown as [NUL], [SPACE], [DEL], ...)
//	b B      bit string, LSB first / MSB first
//	c C      8-bit signed / unsigned integer
//	h H      hex string, low nibble first / high nibble first
//	s S      16-bit signed / unsigned, little-endian
//	n v      16-bit unsigned, big-endian / little-endian
//	i I l L  32-bit signed / unsigned, little-endian
//	f F g    32-bit float, little-endian (f, F) / big-endian (g)
//	d D e E  64-bit float, little-endian
//	G        64-bit float, big-endian
//	q Q      64-bit signed / unsigned, little-endian
//	N V      64-bit unsigned, big-endian / little-endian
//
// [Compile] turns a specification into a [Layout]. The narrowest column sets
// the layout's row stride: the number of bytes each display row advances.
// Wider columns show their value on the first row they cover and stay blank
// on the rows after it.
//
//	l, err := fileinspector.Compile("as")
//	if err != nil { ... }
//	err = fileinspector.Render(os.Stdout, l, data, 0, len(data)-1)
//
// # Decoding
//
// [Decode] turns a block of bytes into one [Value] per column item. A trailing
// group that is shorter than the column's byte width decodes to a Truncated
// value, rendered as "..". [Scan] walks a byte range in [BlockSize] blocks and
// yields [Row] values lazily.
//
// # Output Formats
//
// [Write] renders a [Source] ([Dump] or [Catalog]) in any [Format]: the classic
// hex-dump view, a bordered table, Markdown, HTML, CSV, TSV, JSON, JSONL, YAML
// or a Go template. Use [ParseFormat] to convert a CLI flag:
//
//	f, err := fileinspector.ParseFormat(flagValue)
//	err = fileinspector.Write(os.Stdout, f, fileinspector.Dump{Layout: l, Data: data, End: len(data) - 1})
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrConfiguration]: parent of [ErrEmptyFormat] and [ErrUnsupportedCode]
//   - [ErrRange]: the byte range is inverted or outside the data
//   - [ErrUnsupportedFormat]: unknown output format or border name
//   - [ErrInvalidTemplate]: invalid go-template syntax
//
// Every error is reported before any output is written.
package fileinspector
