package fileinspector

import (
	"encoding/binary"
	"math"
	"strings"
)

// Decode splits block into col.ByteWidth sized groups and decodes each one
// under the column's format code. A trailing group that is too short yields
// a single Truncated value. For a compiled column each group is followed by
// ItemsPerGroup-1 Blank values, so that every column produces one item per
// row stride. Decode never fails; an unsupported code yields nil.
func Decode(block []byte, col Column) []Value {
	e, ok := col.Code.entry()
	if !ok || col.ByteWidth <= 0 {
		return nil
	}

	pad := 0
	if e.decoding != decodeBits && e.decoding != decodeHex && col.ItemsPerGroup > 1 {
		pad = col.ItemsPerGroup - 1
	}

	groups := (len(block) + col.ByteWidth - 1) / col.ByteWidth
	out := make([]Value, 0, groups*(pad+1))
	for i := 0; i < len(block); i += col.ByteWidth {
		end := i + col.ByteWidth
		if end > len(block) {
			out = append(out, Value{Kind: Truncated})
		} else {
			out = append(out, decodeGroup(block[i:end], col, e))
		}
		for range pad {
			out = append(out, Value{Kind: Blank})
		}
	}
	return out
}

func decodeGroup(group []byte, col Column, e entry) Value {
	switch e.decoding {
	case decodeChar:
		return Value{Kind: Char, Text: Mnemonic(group[0])}
	case decodeBits:
		return Value{Kind: Bits, Text: bitString(group[0], col.Code == CodeBitsMSB, digits(col, 8))}
	case decodeHex:
		return Value{Kind: Hex, Text: hexString(group[0], col.Code == CodeHexHigh, digits(col, 2))}
	case decodeSigned:
		return Value{Kind: Signed, Int: signExtend(readUint(group, e.order), len(group))}
	case decodeUnsigned:
		return Value{Kind: Unsigned, Uint: readUint(group, e.order)}
	case decodeFloat:
		u := readUint(group, e.order)
		if len(group) == 4 {
			return Value{Kind: Float, Float: float64(math.Float32frombits(uint32(u))), precision: 32}
		}
		return Value{Kind: Float, Float: math.Float64frombits(u), precision: 64}
	}
	return Value{}
}

// digits returns how many digits a bit or hex column shows per byte.
func digits(col Column, max int) int {
	if col.ItemsPerGroup <= 0 || col.ItemsPerGroup > max {
		return max
	}
	return col.ItemsPerGroup
}

func readUint(group []byte, order binary.ByteOrder) uint64 {
	switch len(group) {
	case 1:
		return uint64(group[0])
	case 2:
		return uint64(order.Uint16(group))
	case 4:
		return uint64(order.Uint32(group))
	default:
		return order.Uint64(group)
	}
}

func signExtend(u uint64, width int) int64 {
	switch width {
	case 1:
		return int64(int8(u))
	case 2:
		return int64(int16(u))
	case 4:
		return int64(int32(u))
	default:
		return int64(u)
	}
}

func bitString(b byte, msbFirst bool, n int) string {
	var sb strings.Builder
	for i := range n {
		shift := i
		if msbFirst {
			shift = 7 - i
		}
		if b>>shift&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

const hexDigits = "0123456789abcdef"

func hexString(b byte, highFirst bool, n int) string {
	nibbles := [2]byte{hexDigits[b&0x0f], hexDigits[b>>4]}
	if highFirst {
		nibbles[0], nibbles[1] = nibbles[1], nibbles[0]
	}
	return string(nibbles[:n])
}
