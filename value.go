package fileinspector

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/goccy/go-json"
)

// Kind identifies what a decoded Value holds.
type Kind int

const (
	// Blank fills the rows a wide column spans after its value.
	Blank Kind = iota
	// Truncated marks a trailing group with fewer bytes than the column needs.
	Truncated
	Char
	Bits
	Hex
	Signed
	Unsigned
	Float
)

// TruncatedText is how a Truncated value renders.
const TruncatedText = ".."

// Value is one decoded cell of a column.
type Value struct {
	Kind  Kind
	Text  string // Char, Bits and Hex
	Int   int64
	Uint  uint64
	Float float64

	// precision is 32 or 64 for Float values.
	precision int
}

// String renders the value as cell text.
func (v Value) String() string {
	switch v.Kind {
	case Truncated:
		return TruncatedText
	case Char, Bits, Hex:
		return v.Text
	case Signed:
		return strconv.FormatInt(v.Int, 10)
	case Unsigned:
		return strconv.FormatUint(v.Uint, 10)
	case Float:
		prec := v.precision
		if prec == 0 {
			prec = 64
		}
		return strconv.FormatFloat(v.Float, 'g', -1, prec)
	default:
		return ""
	}
}

// data returns the value in its natural Go type for structured encoders.
// Blank values are nil; truncation is the marker string.
func (v Value) data() any {
	switch v.Kind {
	case Truncated:
		return TruncatedText
	case Char:
		return v.charText()
	case Bits, Hex:
		return v.Text
	case Signed:
		return v.Int
	case Unsigned:
		return v.Uint
	case Float:
		if v.precision == 32 {
			return float32(v.Float)
		}
		return v.Float
	default:
		return nil
	}
}

// charText is the Char text for structured encoders. Bytes 0x80 to 0xFF
// are kept raw in cell text, which is not valid UTF-8, so they are written
// as a "\xC8" escape instead.
func (v Value) charText() string {
	if len(v.Text) == 1 && v.Text[0] >= utf8.RuneSelf {
		return fmt.Sprintf(`\x%02X`, v.Text[0])
	}
	return v.Text
}

// MarshalJSON encodes numbers as JSON numbers, text as strings, blanks as
// null and truncation as "..". HTML characters are left unescaped.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case Blank:
		return []byte("null"), nil
	case Signed, Unsigned:
		return []byte(v.String()), nil
	case Float:
		// NaN and infinities have no JSON number form.
		if math.IsNaN(v.Float) || math.IsInf(v.Float, 0) {
			return json.MarshalNoEscape(v.String())
		}
		return []byte(v.String()), nil
	case Char:
		return json.MarshalNoEscape(v.charText())
	default:
		return json.MarshalNoEscape(v.String())
	}
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (any, error) {
	return v.data(), nil
}
