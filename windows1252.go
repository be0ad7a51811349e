package recode

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Windows1252ToBytes encodes s as Windows-1252. The 27 characters the code
// page places in 0x80-0x9F are remapped; every other character passes through
// as its own code point and must be at most U+00FF.
func Windows1252ToBytes(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for i, r := range s {
		if b, ok := windows1252Table[r]; ok {
			out = append(out, b)
			continue
		}
		if r > 0xFF {
			return nil, invalidInput(Windows1252, i, nil)
		}
		out = append(out, byte(r))
	}
	return out, nil
}

// BytesToWindows1252 decodes b as Windows-1252. The undefined bytes 0x81,
// 0x8D, 0x8F, 0x90 and 0x9D fail with ErrInvalidInput.
func BytesToWindows1252(b []byte) (string, error) {
	var sb strings.Builder
	sb.Grow(len(b))
	for i, c := range b {
		r := charmap.Windows1252.DecodeByte(c)
		if r == utf8.RuneError {
			return "", invalidInput(Windows1252, i, nil)
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}
