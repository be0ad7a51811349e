package recode

import "strings"

// Base2ToBytes decodes a string of '0' and '1' digits, eight per byte.
// A final group shorter than eight digits is padded with zeros on the right,
// so "101" decodes to 0xA0.
func Base2ToBytes(s string) ([]byte, error) {
	out := make([]byte, (len(s)+7)/8)
	for i := 0; i < len(s); i++ {
		var bit byte
		switch s[i] {
		case '0':
		case '1':
			bit = 1
		default:
			return nil, invalidInput(Base2, i, nil)
		}
		out[i/8] |= bit << (7 - uint(i%8))
	}
	return out, nil
}

// BytesToBase2 renders each byte as eight binary digits, most significant first.
func BytesToBase2(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) * 8)
	for _, c := range b {
		for shift := 7; shift >= 0; shift-- {
			sb.WriteByte('0' + (c>>uint(shift))&1)
		}
	}
	return sb.String()
}
