package fileinspector

import (
	"encoding/binary"
	"fmt"
)

// Code is a single-character column format code.
type Code byte

const (
	CodeAlpha        Code = 'a' // raw byte, shown as a character mnemonic
	CodeBitsLSB      Code = 'b' // bit string, least significant bit first
	CodeBitsMSB      Code = 'B' // bit string, most significant bit first
	CodeInt8         Code = 'c'
	CodeUint8        Code = 'C'
	CodeHexLow       Code = 'h' // hex string, low nibble first
	CodeHexHigh      Code = 'H' // hex string, high nibble first
	CodeInt16        Code = 's'
	CodeUint16       Code = 'S'
	CodeUint16BE     Code = 'n'
	CodeUint16LE     Code = 'v'
	CodeInt32        Code = 'i'
	CodeUint32       Code = 'I'
	CodeLong         Code = 'l'
	CodeULong        Code = 'L'
	CodeFloat32      Code = 'f'
	CodeFloat32Alt   Code = 'F'
	CodeFloat32BE    Code = 'g'
	CodeFloat64      Code = 'd'
	CodeFloat64Alt   Code = 'D'
	CodeFloat64LE    Code = 'e'
	CodeFloat64LEAlt Code = 'E'
	CodeFloat64BE    Code = 'G'
	CodeInt64        Code = 'q'
	CodeUint64       Code = 'Q'
	CodeUint64BE     Code = 'N'
	CodeUint64LE     Code = 'V'
)

var codes = []Code{
	CodeAlpha,
	CodeBitsLSB, CodeBitsMSB,
	CodeInt8, CodeUint8,
	CodeHexLow, CodeHexHigh,
	CodeInt16, CodeUint16, CodeUint16BE, CodeUint16LE,
	CodeInt32, CodeUint32, CodeLong, CodeULong,
	CodeFloat32, CodeFloat32Alt, CodeFloat32BE,
	CodeFloat64, CodeFloat64Alt, CodeFloat64LE, CodeFloat64LEAlt, CodeFloat64BE,
	CodeInt64, CodeUint64, CodeUint64BE, CodeUint64LE,
}

// Codes returns every supported format code in catalog order.
func Codes() []Code {
	out := make([]Code, len(codes))
	copy(out, codes)
	return out
}

// String returns the code as a one-character string.
func (c Code) String() string { return string(rune(c)) }

// MarshalText encodes the code as its character.
func (c Code) MarshalText() ([]byte, error) { return []byte{byte(c)}, nil }

// decoding selects how a full chunk of bytes turns into a Value.
type decoding int

const (
	decodeChar decoding = iota
	decodeBits
	decodeHex
	decodeSigned
	decodeUnsigned
	decodeFloat
)

// entry is the static metadata carried by one code.
type entry struct {
	byteWidth    int
	displayWidth int
	caption      string
	decoding     decoding
	order        binary.ByteOrder
}

// entry resolves c to its catalog metadata. The switch is exhaustive over
// the declared codes; anything else reports ok == false.
func (c Code) entry() (e entry, ok bool) {
	le, be := binary.ByteOrder(binary.LittleEndian), binary.ByteOrder(binary.BigEndian)
	switch c {
	case CodeAlpha:
		return entry{1, 7, "Alpha", decodeChar, nil}, true
	case CodeBitsLSB, CodeBitsMSB:
		return entry{1, 8, "Binary", decodeBits, nil}, true
	case CodeInt8:
		return entry{1, 3, "Int8", decodeSigned, nil}, true
	case CodeUint8:
		return entry{1, 3, "Int8", decodeUnsigned, nil}, true
	case CodeHexLow, CodeHexHigh:
		return entry{1, 2, "Hex", decodeHex, nil}, true
	case CodeInt16:
		return entry{2, 6, "", decodeSigned, le}, true
	case CodeUint16, CodeUint16LE:
		return entry{2, 6, "", decodeUnsigned, le}, true
	case CodeUint16BE:
		return entry{2, 6, "", decodeUnsigned, be}, true
	case CodeInt32, CodeLong:
		return entry{4, 10, "Int32", decodeSigned, le}, true
	case CodeUint32, CodeULong:
		return entry{4, 10, "Int32", decodeUnsigned, le}, true
	case CodeFloat32, CodeFloat32Alt:
		return entry{4, 22, "", decodeFloat, le}, true
	case CodeFloat32BE:
		return entry{4, 22, "", decodeFloat, be}, true
	case CodeFloat64, CodeFloat64Alt, CodeFloat64LE, CodeFloat64LEAlt:
		return entry{8, 22, "", decodeFloat, le}, true
	case CodeFloat64BE:
		return entry{8, 22, "", decodeFloat, be}, true
	case CodeInt64:
		return entry{8, 16, "int16", decodeSigned, le}, true
	case CodeUint64, CodeUint64LE:
		return entry{8, 16, "int16", decodeUnsigned, le}, true
	case CodeUint64BE:
		return entry{8, 16, "int16", decodeUnsigned, be}, true
	}
	return entry{}, false
}

// Supported reports whether c names a column format.
func (c Code) Supported() bool {
	_, ok := c.entry()
	return ok
}

// Column describes how one column decodes and displays the byte stream.
// Columns are values; a compiled [Layout] never hands out shared state.
type Column struct {
	Code         Code   `json:"code" yaml:"code"`
	ByteWidth    int    `json:"byte_width" yaml:"byte_width"`
	DisplayWidth int    `json:"display_width" yaml:"display_width"`
	Caption      string `json:"caption" yaml:"caption"`

	// ItemsPerGroup is the number of bits for binary columns, the number of
	// nibbles for hex columns, and the number of row strides one item spans
	// for every other column. Zero until the column is compiled into a Layout.
	ItemsPerGroup int `json:"items_per_group,omitempty" yaml:"items_per_group,omitempty"`
}

// Describe returns the catalog metadata for format character ch.
// ItemsPerGroup is left zero; it depends on the other columns of a layout.
func Describe(ch byte) (Column, error) {
	c := Code(ch)
	e, ok := c.entry()
	if !ok {
		return Column{}, fmt.Errorf("%w: %q", ErrUnsupportedCode, rune(ch))
	}
	return Column{
		Code:         c,
		ByteWidth:    e.byteWidth,
		DisplayWidth: e.displayWidth,
		Caption:      e.caption,
	}, nil
}

// Label returns the header label of the column: its caption, or the format
// code itself when the caption is empty.
func (c Column) Label() string {
	if c.Caption != "" {
		return c.Caption
	}
	return c.Code.String()
}
