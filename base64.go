package recode

import (
	"encoding/base64"
	"strings"
)

// Base64ToBytes decodes standard Base64. ASCII whitespace is ignored and
// padding is optional, but a length of 4n+1 after removing up to two trailing
// '=' on a padded input, or any character outside the alphabet, fails with
// ErrInvalidInput.
func Base64ToBytes(s string) ([]byte, error) {
	return decodeBase64(s, Base64)
}

// Base64URLToBytes decodes URL-safe Base64 by mapping '-' and '_' back to the
// standard alphabet before decoding. Padding is accepted but not required.
func Base64URLToBytes(s string) ([]byte, error) {
	return decodeBase64(urlToStd.Replace(s), Base64URL)
}

// BytesToBase64 encodes b with the standard alphabet and '=' padding.
func BytesToBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// BytesToBase64URL encodes b with the URL-safe alphabet and no padding.
func BytesToBase64URL(b []byte) string {
	s := strings.TrimRight(base64.StdEncoding.EncodeToString(b), "=")
	return stdToURL.Replace(s)
}

var (
	urlToStd = strings.NewReplacer("-", "+", "_", "/")
	stdToURL = strings.NewReplacer("+", "-", "/", "_")
)

func decodeBase64(s string, enc Encoding) ([]byte, error) {
	s = stripWhitespace(s)
	if len(s)%4 == 0 {
		switch {
		case strings.HasSuffix(s, "=="):
			s = s[:len(s)-2]
		case strings.HasSuffix(s, "="):
			s = s[:len(s)-1]
		}
	}
	if len(s)%4 == 1 {
		return nil, invalidInput(enc, len(s)-1, nil)
	}
	out, err := base64.RawStdEncoding.DecodeString(s)
	if err != nil {
		offset := -1
		if ce, ok := err.(base64.CorruptInputError); ok {
			offset = int(ce)
		}
		return nil, invalidInput(enc, offset, err)
	}
	return out, nil
}

// stripWhitespace removes ASCII whitespace: tab, line feed, form feed,
// carriage return and space.
func stripWhitespace(s string) string {
	if !strings.ContainsAny(s, "\t\n\f\r ") {
		return s
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\n', '\f', '\r', ' ':
			return -1
		}
		return r
	}, s)
}
