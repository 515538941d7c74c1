package fileinspector

// mnemonics maps every 7-bit byte value to its display text. Control
// characters and space get bracketed names, printable ASCII maps to itself.
var mnemonics = [128]string{
	"[NUL]", "[SOH]", "[STX]", "[ETX]", "[EOT]", "[ENQ]", "[ACK]", "[BEL]",
	"[BS]", "[TAB]", "[LF]", "[VT]", "[FF]", "[CR]", "[SO]", "[SI]",
	"[DLE]", "[DC1]", "[DC2]", "[DC3]", "[DC4]", "[NAK]", "[SYN]", "[ETB]",
	"[CAN]", "[EM]", "[SUB]", "[ESC]", "[FS]", "[GS]", "[RS]", "[US]",
	"[SPACE]", "!", "\"", "#", "$", "%", "&", "'",
	"(", ")", "*", "+", ",", "-", ".", "/",
	"0", "1", "2", "3", "4", "5", "6", "7",
	"8", "9", ":", ";", "<", "=", ">", "?",
	"@", "A", "B", "C", "D", "E", "F", "G",
	"H", "I", "J", "K", "L", "M", "N", "O",
	"P", "Q", "R", "S", "T", "U", "V", "W",
	"X", "Y", "Z", "[", "\\", "]", "^", "_",
	"`", "a", "b", "c", "d", "e", "f", "g",
	"h", "i", "j", "k", "l", "m", "n", "o",
	"p", "q", "r", "s", "t", "u", "v", "w",
	"x", "y", "z", "{", "|", "}", "~", "[DEL]",
}

// Mnemonic returns the display text of byte b. Bytes 0x80-0xFF are outside
// the table and come back as the raw one-byte string.
func Mnemonic(b byte) string {
	if int(b) < len(mnemonics) {
		return mnemonics[b]
	}
	return string([]byte{b})
}
