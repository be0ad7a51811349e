// Package bson provides a BSON codec for recode processors.
package bson

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/zoobzio/recode"
)

// codec implements recode.Codec for BSON.
type codec struct{}

// New returns a BSON codec.
func New() recode.Codec {
	return codec{}
}

// ContentType returns "application/bson".
func (codec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON.
func (codec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v.
func (codec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}
