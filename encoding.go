package recode

import "sort"

// Encoding names a supported text representation of a byte buffer.
// Several labels are aliases for the same codec: "hex" and "base16",
// "base64" and "ascii", and so on.
type Encoding string

const (
	// Base2 renders each byte as eight '0'/'1' digits.
	Base2 Encoding = "base2"

	// Binary maps each byte to the code point of the same value.
	Binary Encoding = "binary"

	// Latin1 is an alias for Binary.
	Latin1 Encoding = "latin1"

	// Base16 renders each byte as two lowercase hex digits.
	Base16 Encoding = "base16"

	// Hex is an alias for Base16.
	Hex Encoding = "hex"

	// Base64 uses the standard alphabet with '=' padding.
	Base64 Encoding = "base64"

	// ASCII is an alias for Base64.
	ASCII Encoding = "ascii"

	// Base64URL uses the URL-safe alphabet without padding.
	Base64URL Encoding = "base64Url"

	// ASCIIURL is an alias for Base64URL.
	ASCIIURL Encoding = "asciiUrl"

	// Windows1252 is the Windows code page 1252 character set.
	Windows1252 Encoding = "windows1252"

	// Windows1252Dash is an alias for Windows1252.
	Windows1252Dash Encoding = "windows-1252"

	// UTF16 packs UTF-16 code units in native byte order.
	UTF16 Encoding = "utf16"

	// UTF16Dash is an alias for UTF16.
	UTF16Dash Encoding = "utf-16"

	// UCS2 is an alias for UTF16.
	UCS2 Encoding = "ucs2"

	// UTF8 is standard UTF-8.
	UTF8 Encoding = "utf8"

	// UTF8Dash is an alias for UTF8.
	UTF8Dash Encoding = "utf-8"
)

// codecID identifies one of the eight codec pairs.
type codecID int

const (
	codecBase2 codecID = iota + 1
	codecBinary
	codecHex
	codecBase64
	codecBase64URL
	codecWindows1252
	codecUTF16
	codecUTF8
)

// aliases resolves every accepted label to its codec.
var aliases = map[Encoding]codecID{
	Base2:           codecBase2,
	Binary:          codecBinary,
	Latin1:          codecBinary,
	Base16:          codecHex,
	Hex:             codecHex,
	Base64:          codecBase64,
	ASCII:           codecBase64,
	Base64URL:       codecBase64URL,
	ASCIIURL:        codecBase64URL,
	Windows1252:     codecWindows1252,
	Windows1252Dash: codecWindows1252,
	UTF16:           codecUTF16,
	UTF16Dash:       codecUTF16,
	UCS2:            codecUTF16,
	UTF8:            codecUTF8,
	UTF8Dash:        codecUTF8,
}

// canonical is the primary label of each codec.
var canonical = map[codecID]Encoding{
	codecBase2:       Base2,
	codecBinary:      Binary,
	codecHex:         Hex,
	codecBase64:      Base64,
	codecBase64URL:   Base64URL,
	codecWindows1252: Windows1252,
	codecUTF16:       UTF16,
	codecUTF8:        UTF8,
}

// resolve maps a label to its codec or fails with ErrUnsupportedEncoding.
func resolve(enc Encoding) (codecID, error) {
	id, ok := aliases[enc]
	if !ok {
		return 0, newEncodingError(ErrUnsupportedEncoding, enc, -1, nil)
	}
	return id, nil
}

// IsValidEncoding returns true if the label is a known encoding or alias.
func IsValidEncoding(enc Encoding) bool {
	_, ok := aliases[enc]
	return ok
}

// Canonical returns the primary label for enc, so that Canonical("base16")
// and Canonical("hex") both return Hex.
func Canonical(enc Encoding) (Encoding, error) {
	id, err := resolve(enc)
	if err != nil {
		return "", err
	}
	return canonical[id], nil
}

// Encodings returns every accepted label, sorted.
func Encodings() []Encoding {
	labels := make([]Encoding, 0, len(aliases))
	for enc := range aliases {
		labels = append(labels, enc)
	}
	sort.Slice(labels, func(i, j int) bool {
		return labels[i] < labels[j]
	})
	return labels
}
