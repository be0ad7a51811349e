package recode

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// UTF8ToBytes returns the UTF-8 bytes of s. Invalid sequences already present
// in s are replaced with U+FFFD, so the result is always valid UTF-8.
func UTF8ToBytes(s string) ([]byte, error) {
	return []byte(strings.ToValidUTF8(s, "\uFFFD")), nil
}

// BytesToUTF8 validates b as UTF-8 and returns it as text. Overlong forms,
// surrogates, truncated sequences and stray continuation bytes fail with
// ErrInvalidInput.
func BytesToUTF8(b []byte) (string, error) {
	out, n, err := transform.Bytes(encoding.UTF8Validator, b)
	if err != nil {
		return "", invalidInput(UTF8, n, err)
	}
	return string(out), nil
}
