package fileinspector_test

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/jstrait/fileinspector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// column compiles spec and returns its column at index i.
func column(t *testing.T, spec string, i int) fileinspector.Column {
	t.Helper()
	l, err := fileinspector.Compile(spec)
	require.NoError(t, err)
	return l.Columns()[i]
}

func texts(values []fileinspector.Value) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}

func TestDecode(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		block []byte
		spec  string
		want  []string
	}{
		"chars":              {block: []byte("Test"), spec: "a", want: []string{"T", "e", "s", "t"}},
		"chars with space":   {block: []byte("Te t"), spec: "a", want: []string{"T", "e", "[SPACE]", "t"}},
		"control chars":      {block: []byte{0x00, 0x0A, 0x7F}, spec: "a", want: []string{"[NUL]", "[LF]", "[DEL]"}},
		"high byte raw":      {block: []byte{0xC8}, spec: "a", want: []string{"\xc8"}},
		"int8":               {block: []byte("a"), spec: "c", want: []string{"97"}},
		"int8 negative":      {block: []byte{0xFF}, spec: "c", want: []string{"-1"}},
		"uint8":              {block: []byte{0xFF}, spec: "C", want: []string{"255"}},
		"short":              {block: []byte("aa"), spec: "s", want: []string{"24929"}},
		"short truncated":    {block: []byte("aaa"), spec: "s", want: []string{"24929", ".."}},
		"double too short":   {block: []byte("aaa"), spec: "d", want: []string{".."}},
		"short negative":     {block: []byte{0xFF, 0xFF}, spec: "s", want: []string{"-1"}},
		"ushort little":      {block: []byte{0x01, 0x02}, spec: "S", want: []string{"513"}},
		"network short":      {block: []byte{0x01, 0x02}, spec: "n", want: []string{"258"}},
		"vax short":          {block: []byte{0x01, 0x02}, spec: "v", want: []string{"513"}},
		"int32 negative":     {block: []byte{0xFF, 0xFF, 0xFF, 0xFF}, spec: "i", want: []string{"-1"}},
		"uint32":             {block: []byte{0xFF, 0xFF, 0xFF, 0xFF}, spec: "I", want: []string{"4294967295"}},
		"long":               {block: []byte{0x2A, 0x00, 0x00, 0x00}, spec: "l", want: []string{"42"}},
		"int64 negative":     {block: bytes.Repeat([]byte{0xFF}, 8), spec: "q", want: []string{"-1"}},
		"uint64":             {block: bytes.Repeat([]byte{0xFF}, 8), spec: "Q", want: []string{"18446744073709551615"}},
		"network quad":       {block: []byte{0, 0, 0, 0, 0, 0, 0, 1}, spec: "N", want: []string{"1"}},
		"vax quad":           {block: []byte{0, 0, 0, 0, 0, 0, 0, 1}, spec: "V", want: []string{"72057594037927936"}},
		"bits lsb first":     {block: []byte{0x06}, spec: "b", want: []string{"01100000"}},
		"bits msb first":     {block: []byte{0x06}, spec: "B", want: []string{"00000110"}},
		"hex low first":      {block: []byte{0x4F}, spec: "h", want: []string{"f4"}},
		"hex high first":     {block: []byte{0x4F}, spec: "H", want: []string{"4f"}},
		"hex several":        {block: []byte{0x00, 0xAB}, spec: "H", want: []string{"00", "ab"}},
		"float little":       {block: float32Bytes(binary.LittleEndian, 1.5), spec: "f", want: []string{"1.5"}},
		"float big":          {block: float32Bytes(binary.BigEndian, 1.5), spec: "g", want: []string{"1.5"}},
		"float precision":    {block: float32Bytes(binary.LittleEndian, 0.1), spec: "F", want: []string{"0.1"}},
		"double little":      {block: float64Bytes(binary.LittleEndian, -2.25), spec: "d", want: []string{"-2.25"}},
		"double e":           {block: float64Bytes(binary.LittleEndian, 1e100), spec: "e", want: []string{"1e+100"}},
		"double big":         {block: float64Bytes(binary.BigEndian, 2.5), spec: "G", want: []string{"2.5"}},
		"double wide pace":   {block: float64Bytes(binary.LittleEndian, 1.5), spec: "sd", want: []string{"1.5", "", "", ""}},
		"truncated pace":     {block: []byte("aaa"), spec: "sd", want: []string{"..", "", "", ""}},
		"quad byte pace":     {block: append(bytes.Repeat([]byte{0}, 8), 1), spec: "cq", want: []string{"0", "", "", "", "", "", "", "", "..", "", "", "", "", "", "", ""}},
		"empty block":        {block: nil, spec: "a", want: []string{}},
		"bits ignore pace":   {block: []byte{0x01, 0x80}, spec: "db", want: []string{"10000000", "00000001"}},
		"short pace by byte": {block: []byte{0x01, 0x00, 0x02}, spec: "as", want: []string{"1", "", "..", ""}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			col := column(t, tt.spec, len(tt.spec)-1)
			got := fileinspector.Decode(tt.block, col)
			assert.Equal(t, tt.want, texts(got))
		})
	}
}

func TestDecodeLongBlock(t *testing.T) {
	t.Parallel()
	col := column(t, "s", 0)

	got := fileinspector.Decode(bytes.Repeat([]byte("a"), 600), col)
	require.Len(t, got, 300)
	for _, v := range got {
		assert.Equal(t, fileinspector.Signed, v.Kind)
		assert.Equal(t, int64(24929), v.Int)
	}

	got = fileinspector.Decode(bytes.Repeat([]byte("a"), 601), col)
	require.Len(t, got, 301)
	assert.Equal(t, fileinspector.Truncated, got[300].Kind)
	for _, v := range got[:300] {
		assert.Equal(t, int64(24929), v.Int)
	}
}

func TestDecodeKinds(t *testing.T) {
	t.Parallel()
	got := fileinspector.Decode([]byte{0x41}, column(t, "a", 0))
	require.Len(t, got, 1)
	assert.Equal(t, fileinspector.Char, got[0].Kind)

	got = fileinspector.Decode([]byte{0x41, 0x00}, column(t, "S", 0))
	require.Len(t, got, 1)
	assert.Equal(t, fileinspector.Unsigned, got[0].Kind)
	assert.Equal(t, uint64(65), got[0].Uint)

	got = fileinspector.Decode(float64Bytes(binary.LittleEndian, 3.75), column(t, "D", 0))
	require.Len(t, got, 1)
	assert.Equal(t, fileinspector.Float, got[0].Kind)
	assert.InDelta(t, 3.75, got[0].Float, 0)
}

func TestDecodeUncompiledColumn(t *testing.T) {
	t.Parallel()
	col, err := fileinspector.Describe('b')
	require.NoError(t, err)
	assert.Equal(t, []string{"11111111"}, texts(fileinspector.Decode([]byte{0xFF}, col)))

	col, err = fileinspector.Describe('d')
	require.NoError(t, err)
	assert.Equal(t, []string{".."}, texts(fileinspector.Decode([]byte{1, 2}, col)))
}

func TestDecodeUnsupportedColumn(t *testing.T) {
	t.Parallel()
	assert.Nil(t, fileinspector.Decode([]byte("abc"), fileinspector.Column{Code: 'x', ByteWidth: 1}))
	assert.Nil(t, fileinspector.Decode([]byte("abc"), fileinspector.Column{Code: 'a'}))
}

func float32Bytes(order binary.ByteOrder, f float32) []byte {
	b := make([]byte, 4)
	order.PutUint32(b, math.Float32bits(f))
	return b
}

func float64Bytes(order binary.ByteOrder, f float64) []byte {
	b := make([]byte, 8)
	order.PutUint64(b, math.Float64bits(f))
	return b
}
