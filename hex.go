package recode

import "encoding/hex"

// HexToBytes decodes hex digit pairs from the left. An odd trailing digit is
// read as a low nibble, so "d" decodes to 0x0d and "abc" to 0xab 0x0c.
func HexToBytes(s string) ([]byte, error) {
	out := make([]byte, 0, (len(s)+1)/2)
	for i := 0; i < len(s); i += 2 {
		if i+1 == len(s) {
			lo, ok := hexDigits[s[i]]
			if !ok {
				return nil, invalidInput(Hex, i, nil)
			}
			out = append(out, lo)
			break
		}
		hi, ok := hexDigits[s[i]]
		if !ok {
			return nil, invalidInput(Hex, i, nil)
		}
		lo, ok := hexDigits[s[i+1]]
		if !ok {
			return nil, invalidInput(Hex, i+1, nil)
		}
		out = append(out, hi<<4|lo)
	}
	return out, nil
}

// BytesToHex renders each byte as two lowercase hex digits.
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}
