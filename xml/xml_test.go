package xml

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/zoobzio/recode"
)

type certificate struct {
	Subject     string   `xml:"subject"`
	Fingerprint string   `xml:"fingerprint" recode:"base64,hex"`
	Serials     []string `xml:"serial" recode:"hex,base2"`
}

func (c certificate) Clone() certificate {
	c.Serials = append([]string(nil), c.Serials...)
	return c
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/xml" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/xml")
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	var v struct{}
	if err := New().Unmarshal([]byte("not xml at all {{{"), &v); err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}

func TestProcessor_WriteRead(t *testing.T) {
	proc, err := recode.NewProcessor[certificate](New())
	if err != nil {
		t.Fatalf("NewProcessor() error: %v", err)
	}

	original := &certificate{
		Subject:     "CN=example",
		Fingerprint: "3q2+7w==",
		Serials:     []string{"0f", "a5"},
	}

	data, err := proc.Write(context.Background(), original)
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	for _, want := range []string{
		"<fingerprint>deadbeef</fingerprint>",
		"<serial>00001111</serial>",
		"<serial>10100101</serial>",
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Write() = %s, missing %s", data, want)
		}
	}
	if original.Fingerprint != "3q2+7w==" {
		t.Errorf("Write() modified the original: %q", original.Fingerprint)
	}

	restored, err := proc.Read(context.Background(), data)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if restored.Fingerprint != original.Fingerprint {
		t.Errorf("Fingerprint = %q, want %q", restored.Fingerprint, original.Fingerprint)
	}
	if strings.Join(restored.Serials, ",") != "0f,a5" {
		t.Errorf("Serials = %v, want [0f a5]", restored.Serials)
	}
}

func TestProcessor_ReadInvalidField(t *testing.T) {
	proc, err := recode.NewProcessor[certificate](New())
	if err != nil {
		t.Fatalf("NewProcessor() error: %v", err)
	}

	data := []byte("<certificate><fingerprint>zz</fingerprint></certificate>")
	_, err = proc.Read(context.Background(), data)
	if !errors.Is(err, recode.ErrInvalidInput) {
		t.Errorf("Read() error = %v, want ErrInvalidInput", err)
	}
}
