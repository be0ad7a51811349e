package recode

import (
	"reflect"
	"sync"
)

// processorKey identifies a shared Processor: one per struct type and codec
// content type.
type processorKey struct {
	typ         reflect.Type
	contentType string
}

var processors struct {
	sync.RWMutex
	byKey map[processorKey]any
}

// Use returns the shared Processor for T and codec, building it on first
// request. Processors are keyed by T and codec.ContentType(), so two codecs
// reporting the same content type share one Processor.
func Use[T Cloner[T]](codec Codec) (*Processor[T], error) {
	if codec == nil {
		return nil, ErrMissingCodec
	}

	key := processorKey{typ: reflect.TypeFor[T](), contentType: codec.ContentType()}

	processors.RLock()
	p, ok := processors.byKey[key]
	processors.RUnlock()
	if ok {
		return p.(*Processor[T]), nil
	}

	processors.Lock()
	defer processors.Unlock()

	if p, ok := processors.byKey[key]; ok {
		return p.(*Processor[T]), nil
	}

	proc, err := NewProcessor[T](codec)
	if err != nil {
		return nil, err
	}

	if processors.byKey == nil {
		processors.byKey = make(map[processorKey]any)
	}
	processors.byKey[key] = proc
	return proc, nil
}

// Reset drops every shared Processor. Mostly useful between tests.
func Reset() {
	processors.Lock()
	processors.byKey = nil
	processors.Unlock()
}
