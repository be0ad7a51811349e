package recode

import "strings"

// Latin1ToBytes maps each character to the byte equal to its code point.
// Characters above U+00FF cannot be represented and fail with ErrInvalidInput.
func Latin1ToBytes(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for i, r := range s {
		if r > 0xFF {
			return nil, invalidInput(Binary, i, nil)
		}
		out = append(out, byte(r))
	}
	return out, nil
}

// BytesToLatin1 maps each byte to the character with the same code point.
func BytesToLatin1(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		sb.WriteRune(rune(c))
	}
	return sb.String()
}
