package yaml

import (
	"context"
	"strings"
	"testing"

	"github.com/zoobzio/recode"
)

type keyring struct {
	Owner string            `yaml:"owner"`
	Keys  map[string]string `yaml:"keys" recode:"base64Url,hex"`
}

func (k keyring) Clone() keyring {
	keys := make(map[string]string, len(k.Keys))
	for name, v := range k.Keys {
		keys[name] = v
	}
	return keyring{Owner: k.Owner, Keys: keys}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/yaml" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/yaml")
	}
}

func TestMarshalNil(t *testing.T) {
	data, err := New().Marshal(nil)
	if err != nil {
		t.Fatalf("Marshal(nil) error: %v", err)
	}
	if string(data) != "null\n" {
		t.Errorf("Marshal(nil) = %q, want %q", data, "null\n")
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	var v struct {
		Name string `yaml:"name"`
	}
	if err := New().Unmarshal([]byte("name: [invalid"), &v); err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}

func TestProcessor_WriteRead(t *testing.T) {
	proc, err := recode.NewProcessor[keyring](New())
	if err != nil {
		t.Fatalf("NewProcessor() error: %v", err)
	}

	original := &keyring{
		Owner: "ops",
		Keys: map[string]string{
			"signing": "__7-",
			"empty":   "",
		},
	}

	data, err := proc.Write(context.Background(), original)
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if !strings.Contains(string(data), "signing: fffefe") {
		t.Errorf("Write() = %s, want signing key as hex", data)
	}
	if original.Keys["signing"] != "__7-" {
		t.Errorf("Write() modified the original: %q", original.Keys["signing"])
	}

	restored, err := proc.Read(context.Background(), data)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if restored.Keys["signing"] != "__7-" {
		t.Errorf("Keys[signing] = %q, want %q", restored.Keys["signing"], "__7-")
	}
	if v, ok := restored.Keys["empty"]; !ok || v != "" {
		t.Errorf("Keys[empty] = %q, %v; want empty string", v, ok)
	}
}
