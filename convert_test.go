package recode

import (
	"bytes"
	"errors"
	"testing"
)

func TestValue(t *testing.T) {
	txt := TextValue("abc")
	if !txt.IsText() || txt.String() != "abc" || txt.Bytes() != nil {
		t.Errorf("Text value = %+v", txt)
	}

	bin := BinaryValue([]byte{1, 2})
	if bin.IsText() || bin.String() != "" || !bytes.Equal(bin.Bytes(), []byte{1, 2}) {
		t.Errorf("Binary value = %+v", bin)
	}

	var zero Value
	if !zero.IsText() {
		t.Error("zero Value should be empty text")
	}
}

func TestValue_BinaryLabel(t *testing.T) {
	out, err := Convert(BinaryValue([]byte{0xe9}), Binary, UTF8)
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	if out.IsText() || !bytes.Equal(out.Bytes(), []byte{0xc3, 0xa9}) {
		t.Errorf("Convert(BinaryValue, binary, utf8) = %+v", out)
	}

	out, err = Convert(TextValue("é"), Binary, Hex)
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	if !out.IsText() || out.String() != "e9" {
		t.Errorf("Convert(TextValue, binary, hex) = %+v", out)
	}
}

func TestConvertString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		from  Encoding
		to    Encoding
		want  string
	}{
		{"hex to ascii", "48656c6c6f", Hex, ASCII, "SGVsbG8="},
		{"base64 to hex", "3q2+7w==", Base64, Hex, "deadbeef"},
		{"base64Url to base64", "-_8", Base64URL, Base64, "+/8="},
		{"hex to base2", "81", Hex, Base2, "10000001"},
		{"utf8 to hex", "é", UTF8, Hex, "c3a9"},
		{"windows1252 to base64Url", "Œuvre™", Windows1252, Base64URL, "jHV2cmWZ"},
		{"same encoding", "abc", UTF8, UTF8, "abc"},
		{"empty", "", Hex, Base64, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertString(tt.input, tt.from, tt.to)
			if err != nil {
				t.Fatalf("ConvertString(%q, %q, %q) error: %v", tt.input, tt.from, tt.to, err)
			}
			if got != tt.want {
				t.Errorf("ConvertString(%q, %q, %q) = %q, want %q", tt.input, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestConvertString_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		from  Encoding
		to    Encoding
		want  error
	}{
		{"unknown source", "abc", "nonsense", Hex, ErrUnsupportedEncoding},
		{"unknown destination", "abc", Hex, "nonsense", ErrUnsupportedEncoding},
		{"labels checked first", "zz", Hex, "nonsense", ErrUnsupportedEncoding},
		{"bad source text", "zz", Hex, Base64, ErrInvalidInput},
		{"unencodable result", "ff", Hex, UTF8, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertString(tt.input, tt.from, tt.to)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if got != "" {
				t.Errorf("expected empty result on failure, got %q", got)
			}
		})
	}
}

func TestConvertBytes(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		from  Encoding
		to    Encoding
		want  []byte
	}{
		{"utf8 to latin1", []byte("café"), UTF8, Latin1, []byte{'c', 'a', 'f', 0xe9}},
		{"latin1 to utf8", []byte{'c', 'a', 'f', 0xe9}, Latin1, UTF8, []byte("café")},
		{"utf8 text read as hex", []byte("48656c6c6f"), UTF8, Hex, []byte("Hello")},
		{"hex render read as utf8", []byte("Hi"), Hex, UTF8, []byte("4869")},
		{"utf8 to windows1252", []byte("€"), UTF8, Windows1252, []byte{0x80}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertBytes(tt.input, tt.from, tt.to)
			if err != nil {
				t.Fatalf("ConvertBytes error: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("ConvertBytes = %x, want %x", got, tt.want)
			}
		})
	}
}

func TestConvertBytes_Errors(t *testing.T) {
	if _, err := ConvertBytes([]byte{0xff}, UTF8, Hex); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("invalid utf8 source: expected ErrInvalidInput, got %v", err)
	}
	if _, err := ConvertBytes([]byte("zz"), UTF8, Hex); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("non-hex text: expected ErrInvalidInput, got %v", err)
	}
	if _, err := ConvertBytes([]byte("ok"), UTF8, "nonsense"); !errors.Is(err, ErrUnsupportedEncoding) {
		t.Errorf("unknown label: expected ErrUnsupportedEncoding, got %v", err)
	}
}

func TestConvert_PreservesKind(t *testing.T) {
	out, err := Convert(TextValue("0d"), Hex, Base64)
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	if !out.IsText() || out.String() != "DQ==" {
		t.Errorf("Convert(Text) = %+v", out)
	}

	out, err = Convert(BinaryValue([]byte("DQ==")), UTF8, Base64)
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	if out.IsText() || !bytes.Equal(out.Bytes(), []byte{0x0d}) {
		t.Errorf("Convert(Binary) = %+v", out)
	}
}

func TestConvertEncoding(t *testing.T) {
	s, err := ConvertEncoding("48656c6c6f", Hex, Base64)
	if err != nil {
		t.Fatalf("ConvertEncoding[string] error: %v", err)
	}
	if s != "SGVsbG8=" {
		t.Errorf("ConvertEncoding[string] = %q", s)
	}

	b, err := ConvertEncoding([]byte("café"), UTF8, Latin1)
	if err != nil {
		t.Fatalf("ConvertEncoding[[]byte] error: %v", err)
	}
	if !bytes.Equal(b, []byte{'c', 'a', 'f', 0xe9}) {
		t.Errorf("ConvertEncoding[[]byte] = %x", b)
	}

	if _, err := ConvertEncoding("x", Hex, "nonsense"); !errors.Is(err, ErrUnsupportedEncoding) {
		t.Errorf("expected ErrUnsupportedEncoding, got %v", err)
	}
}
