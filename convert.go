package recode

// Value is either text or binary data. Build one with TextValue or BinaryValue.
type Value struct {
	text   string
	bytes  []byte
	binary bool
}

// TextValue wraps a string as a textual Value.
func TextValue(s string) Value {
	return Value{text: s}
}

// BinaryValue wraps a byte slice as a binary Value.
func BinaryValue(b []byte) Value {
	return Value{bytes: b, binary: true}
}

// IsText reports whether v holds text.
func (v Value) IsText() bool {
	return !v.binary
}

// String returns the text payload, or "" for a binary Value.
func (v Value) String() string {
	return v.text
}

// Bytes returns the binary payload, or nil for a textual Value.
func (v Value) Bytes() []byte {
	return v.bytes
}

// Convert relabels v from one encoding to another. The result has the same
// kind as v.
//
// Text is decoded from `from` into bytes and those bytes are encoded as `to`
// text. Binary input runs the other way round: the bytes are first rendered
// as `from` text, and that text is then decoded as if it were `to` text. The
// binary form is therefore not "encode these bytes as `to`": converting raw
// bytes from utf8 to hex UTF-8-decodes them and then hex-decodes the result.
//
// Both labels are checked before any input is decoded.
func Convert(v Value, from, to Encoding) (Value, error) {
	if _, err := resolve(from); err != nil {
		return Value{}, err
	}
	if _, err := resolve(to); err != nil {
		return Value{}, err
	}

	if v.IsText() {
		raw, err := StringToBytes(v.text, from)
		if err != nil {
			return Value{}, err
		}
		s, err := BytesToString(raw, to)
		if err != nil {
			return Value{}, err
		}
		return TextValue(s), nil
	}

	s, err := BytesToString(v.bytes, from)
	if err != nil {
		return Value{}, err
	}
	raw, err := StringToBytes(s, to)
	if err != nil {
		return Value{}, err
	}
	return BinaryValue(raw), nil
}

// ConvertString relabels text from one encoding to another.
//
//	ConvertString("48656c6c6f", Hex, Base64) // "SGVsbG8="
func ConvertString(s string, from, to Encoding) (string, error) {
	out, err := Convert(TextValue(s), from, to)
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

// ConvertBytes relabels binary data from one encoding to another.
// See Convert for how the two encodings are applied.
func ConvertBytes(b []byte, from, to Encoding) ([]byte, error) {
	out, err := Convert(BinaryValue(b), from, to)
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// ConvertEncoding relabels a string or byte slice, returning the same type.
func ConvertEncoding[V string | []byte](v V, from, to Encoding) (V, error) {
	var out V
	switch x := any(v).(type) {
	case string:
		s, err := ConvertString(x, from, to)
		if err != nil {
			return out, err
		}
		out = V(s)
	case []byte:
		b, err := ConvertBytes(x, from, to)
		if err != nil {
			return out, err
		}
		out = V(b)
	}
	return out, nil
}
