package fileinspector_test

import (
	"testing"

	"github.com/jstrait/fileinspector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		ch   byte
		want fileinspector.Column
	}{
		"alpha":   {ch: 'a', want: fileinspector.Column{Code: 'a', ByteWidth: 1, DisplayWidth: 7, Caption: "Alpha"}},
		"binary":  {ch: 'B', want: fileinspector.Column{Code: 'B', ByteWidth: 1, DisplayWidth: 8, Caption: "Binary"}},
		"int8":    {ch: 'c', want: fileinspector.Column{Code: 'c', ByteWidth: 1, DisplayWidth: 3, Caption: "Int8"}},
		"hex":     {ch: 'h', want: fileinspector.Column{Code: 'h', ByteWidth: 1, DisplayWidth: 2, Caption: "Hex"}},
		"short":   {ch: 'n', want: fileinspector.Column{Code: 'n', ByteWidth: 2, DisplayWidth: 6}},
		"int32":   {ch: 'L', want: fileinspector.Column{Code: 'L', ByteWidth: 4, DisplayWidth: 10, Caption: "Int32"}},
		"float":   {ch: 'g', want: fileinspector.Column{Code: 'g', ByteWidth: 4, DisplayWidth: 22}},
		"double":  {ch: 'E', want: fileinspector.Column{Code: 'E', ByteWidth: 8, DisplayWidth: 22}},
		"quad":    {ch: 'Q', want: fileinspector.Column{Code: 'Q', ByteWidth: 8, DisplayWidth: 16, Caption: "int16"}},
		"network": {ch: 'N', want: fileinspector.Column{Code: 'N', ByteWidth: 8, DisplayWidth: 16, Caption: "int16"}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := fileinspector.Describe(tt.ch)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDescribeUnsupported(t *testing.T) {
	t.Parallel()
	for _, ch := range []byte("MmPpUuwXxZ@A%r ") {
		_, err := fileinspector.Describe(ch)
		require.Error(t, err, "code %q", ch)
		assert.ErrorIs(t, err, fileinspector.ErrUnsupportedCode)
		assert.ErrorIs(t, err, fileinspector.ErrConfiguration)
		assert.Contains(t, err.Error(), string(rune(ch)))
	}
}

func TestCodes(t *testing.T) {
	t.Parallel()
	got := fileinspector.Codes()
	require.Len(t, got, 27)
	for _, c := range got {
		assert.True(t, c.Supported(), "code %s", c)
		col, err := fileinspector.Describe(byte(c))
		require.NoError(t, err)
		assert.Contains(t, []int{1, 2, 4, 8}, col.ByteWidth)
		assert.Positive(t, col.DisplayWidth)
	}
	// Returned slice must be a copy.
	got[0] = 'x'
	assert.Equal(t, fileinspector.CodeAlpha, fileinspector.Codes()[0])
}

func TestCodeSupported(t *testing.T) {
	t.Parallel()
	assert.True(t, fileinspector.CodeUint64LE.Supported())
	assert.False(t, fileinspector.Code('Z').Supported())
}

func TestColumnLabel(t *testing.T) {
	t.Parallel()
	alpha, err := fileinspector.Describe('a')
	require.NoError(t, err)
	assert.Equal(t, "Alpha", alpha.Label())

	short, err := fileinspector.Describe('s')
	require.NoError(t, err)
	assert.Equal(t, "s", short.Label())
}

func TestMnemonic(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		b    byte
		want string
	}{
		"nul":       {b: 0x00, want: "[NUL]"},
		"tab":       {b: 0x09, want: "[TAB]"},
		"escape":    {b: 0x1B, want: "[ESC]"},
		"space":     {b: 0x20, want: "[SPACE]"},
		"bang":      {b: 0x21, want: "!"},
		"upper":     {b: 0x41, want: "A"},
		"T":         {b: 0x54, want: "T"},
		"backslash": {b: 0x5C, want: `\`},
		"tilde":     {b: 0x7E, want: "~"},
		"del":       {b: 0x7F, want: "[DEL]"},
		"high":      {b: 0x80, want: "\x80"},
		"max":       {b: 0xFF, want: "\xff"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fileinspector.Mnemonic(tt.b))
		})
	}
}

func TestMnemonicPrintableIdentity(t *testing.T) {
	t.Parallel()
	for b := byte(0x21); b <= 0x7E; b++ {
		assert.Equal(t, string(rune(b)), fileinspector.Mnemonic(b))
	}
}
