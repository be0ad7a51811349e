// Package msgpack provides a MessagePack codec for recode processors.
package msgpack

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/zoobzio/recode"
)

// codec implements recode.Codec for MessagePack.
type codec struct{}

// New returns a MessagePack codec.
func New() recode.Codec {
	return codec{}
}

// ContentType returns "application/msgpack".
func (codec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack.
func (codec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal decodes MessagePack data into v.
func (codec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
