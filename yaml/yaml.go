// Package yaml provides a YAML codec for recode processors.
package yaml

import (
	"gopkg.in/yaml.v3"

	"github.com/zoobzio/recode"
)

// codec implements recode.Codec for YAML.
type codec struct{}

// New returns a YAML codec.
func New() recode.Codec {
	return codec{}
}

// ContentType returns "application/yaml".
func (codec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML.
func (codec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Unmarshal decodes YAML data into v.
func (codec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
