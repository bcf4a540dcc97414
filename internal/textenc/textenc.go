// Package textenc normalizes the encoding of Org file bytes.
//
// Org files are UTF-8 in practice, but files written on other platforms
// occasionally arrive as UTF-16 with a byte order mark, or as UTF-8
// with a leading BOM. Normalize sniffs the mark and returns UTF-8 text
// with the mark removed. Bytes without a mark pass through untouched,
// so serialization stays byte-exact for plain files.
package textenc

import (
	"golang.org/x/text/encoding/unicode"
)

type byteOrderMark int

const (
	bomNone byteOrderMark = iota
	bomUTF8
	bomUTF16LE
	bomUTF16BE
)

// Normalize converts raw file bytes to a UTF-8 string. UTF-8 and UTF-16
// byte order marks are detected and stripped, and UTF-16 content is
// transcoded. Content without a mark is returned unchanged, as is
// UTF-16 content that fails to decode.
func Normalize(content []byte) string {
	switch sniffBOM(content) {
	case bomUTF8:
		return string(content[3:])
	case bomUTF16LE:
		return decodeUTF16(content, unicode.LittleEndian)
	case bomUTF16BE:
		return decodeUTF16(content, unicode.BigEndian)
	default:
		return string(content)
	}
}

func sniffBOM(content []byte) byteOrderMark {
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return bomUTF8
	}
	if len(content) >= 2 {
		switch {
		case content[0] == 0xFF && content[1] == 0xFE:
			return bomUTF16LE
		case content[0] == 0xFE && content[1] == 0xFF:
			return bomUTF16BE
		}
	}
	return bomNone
}

func decodeUTF16(content []byte, endianness unicode.Endianness) string {
	decoder := unicode.UTF16(endianness, unicode.ExpectBOM).NewDecoder()
	decoded, err := decoder.Bytes(content)
	if err != nil {
		return string(content)
	}
	return string(decoded)
}
