package recode

// StringToBytes decodes text in the given encoding into bytes.
func StringToBytes(s string, enc Encoding) ([]byte, error) {
	id, err := resolve(enc)
	if err != nil {
		return nil, err
	}

	switch id {
	case codecBase2:
		return Base2ToBytes(s)
	case codecBinary:
		return Latin1ToBytes(s)
	case codecHex:
		return HexToBytes(s)
	case codecBase64:
		return Base64ToBytes(s)
	case codecBase64URL:
		return Base64URLToBytes(s)
	case codecWindows1252:
		return Windows1252ToBytes(s)
	case codecUTF16:
		return UTF16ToBytes(s)
	case codecUTF8:
		return UTF8ToBytes(s)
	default:
		return nil, newEncodingError(ErrUnsupportedEncoding, enc, -1, nil)
	}
}

// BytesToString encodes bytes as text in the given encoding.
func BytesToString(b []byte, enc Encoding) (string, error) {
	id, err := resolve(enc)
	if err != nil {
		return "", err
	}

	switch id {
	case codecBase2:
		return BytesToBase2(b), nil
	case codecBinary:
		return BytesToLatin1(b), nil
	case codecHex:
		return BytesToHex(b), nil
	case codecBase64:
		return BytesToBase64(b), nil
	case codecBase64URL:
		return BytesToBase64URL(b), nil
	case codecWindows1252:
		return BytesToWindows1252(b)
	case codecUTF16:
		return BytesToUTF16(b)
	case codecUTF8:
		return BytesToUTF8(b)
	default:
		return "", newEncodingError(ErrUnsupportedEncoding, enc, -1, nil)
	}
}
