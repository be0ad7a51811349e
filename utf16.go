package recode

import (
	"encoding/binary"
	"errors"
	"strings"
	"unicode"
	"unicode/utf16"
)

var (
	errOddLength         = errors.New("odd number of bytes")
	errUnpairedSurrogate = errors.New("unpaired surrogate")
)

// UTF16ToBytes packs the UTF-16 code units of s in native byte order. Runes
// outside the Basic Multilingual Plane take a surrogate pair. It never fails;
// the error result keeps the signature in line with the other decoders.
func UTF16ToBytes(s string) ([]byte, error) {
	units := utf16.Encode([]rune(s))
	out := make([]byte, 2*len(units))
	for i, u := range units {
		binary.NativeEndian.PutUint16(out[2*i:], u)
	}
	return out, nil
}

// BytesToUTF16 decodes native byte order UTF-16. Odd-length input and
// unpaired surrogates fail with ErrInvalidInput.
func BytesToUTF16(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", invalidInput(UTF16, len(b)-1, errOddLength)
	}
	n := len(b) / 2
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		u := rune(binary.NativeEndian.Uint16(b[2*i:]))
		if !utf16.IsSurrogate(u) {
			sb.WriteRune(u)
			continue
		}
		if i+1 < n {
			r := utf16.DecodeRune(u, rune(binary.NativeEndian.Uint16(b[2*i+2:])))
			if r != unicode.ReplacementChar {
				sb.WriteRune(r)
				i++
				continue
			}
		}
		return "", invalidInput(UTF16, 2*i, errUnpairedSurrogate)
	}
	return sb.String(), nil
}
