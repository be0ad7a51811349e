// Package xml provides a XML codec for recode processors.
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/recode"
)

// codec implements recode.Codec for XML.
type codec struct{}

// New returns a XML codec.
func New() recode.Codec {
	return codec{}
}

// ContentType returns "application/xml".
func (codec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as XML.
func (codec) Marshal(v any) ([]byte, error) {
	return xml.Marshal(v)
}

// Unmarshal decodes XML data into v.
func (codec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
