// Package recode converts between byte buffers and their text forms.
//
// Eight codecs are supported, each reachable under one or more labels:
//
//	base2                         '0'/'1' digits, eight per byte
//	binary, latin1                one character per byte, code point == byte
//	hex, base16                   two lowercase hex digits per byte
//	base64, ascii                 standard Base64 with '=' padding
//	base64Url, asciiUrl           URL-safe Base64 without padding
//	windows1252, windows-1252     Windows code page 1252
//	utf16, utf-16, ucs2           UTF-16 code units in native byte order
//	utf8, utf-8                   UTF-8
//
// Labels are case-sensitive. Anything else fails with ErrUnsupportedEncoding.
//
// # Codec Pairs
//
// Every codec has a decoder (text to bytes) and an encoder (bytes to text)
// that can be called directly:
//
//	b, err := recode.HexToBytes("48656c6c6f") // []byte("Hello")
//	s := recode.BytesToBase64(b)              // "SGVsbG8="
//
// Or through the dispatchers, by label:
//
//	b, err := recode.StringToBytes("48656c6c6f", recode.Hex)
//	s, err := recode.BytesToString(b, recode.Base64)
//
// Decoders reject input outside their grammar with ErrInvalidInput and never
// return a partial result. Two lenient cases are deliberate: an odd trailing
// hex digit is a low nibble ("d" is 0x0d), and a short final bit group is
// zero-padded on the right ("101" is 0xA0).
//
// # Converting
//
// Convert relabels a Value, built with TextValue or BinaryValue, from one
// encoding to another:
//
//	s, err := recode.ConvertString("48656c6c6f", recode.Hex, recode.Base64) // "SGVsbG8="
//
// Text is decoded from the source encoding and encoded into the destination.
// Bytes go the other way round: they are rendered as source text and that
// text is decoded as destination text. ConvertBytes(b, UTF8, Latin1) thus
// transcodes UTF-8 bytes to Latin-1 bytes, while ConvertBytes(b, UTF8, Hex)
// treats the UTF-8 text in b as hex digits.
//
// # Buffers
//
// NormalizeToBytes views any fixed-width integer slice as bytes without
// copying, in native byte order.
//
// # Field Processing
//
// Processor marshals structs through a Codec and converts fields tagged with
// `recode:"<from>,<to>"` on the way out (Write) and back on the way in
// (Read):
//
//	type Credential struct {
//	    ID     string `json:"id"`
//	    Secret string `json:"secret" recode:"hex,base64"`
//	}
//
//	func (c Credential) Clone() Credential { return c }
//
//	proc, _ := recode.NewProcessor[Credential](json.New())
//	data, _ := proc.Write(ctx, &Credential{ID: "k1", Secret: "48656c6c6f"})
//	// {"id":"k1","secret":"SGVsbG8="}
//
// # Codec Providers
//
// The following codec implementations are available as submodules:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
//
// # Events
//
// Processors emit capitan signals (SignalWriteStart, SignalReadComplete, ...)
// carrying content type, type name, size, duration and field count. The codec
// functions themselves emit nothing.
package recode
