package recode

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for processor events.
var (
	SignalProcessorCreated = capitan.NewSignal("recode.processor.created", "Processor instantiated")
	SignalWriteStart       = capitan.NewSignal("recode.write.start", "Write operation beginning")
	SignalWriteComplete    = capitan.NewSignal("recode.write.complete", "Write operation finished")
	SignalReadStart        = capitan.NewSignal("recode.read.start", "Read operation beginning")
	SignalReadComplete     = capitan.NewSignal("recode.read.complete", "Read operation finished")
)

// Keys for typed event data.
var (
	KeyContentType = capitan.NewStringKey("content_type")
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
	KeyFieldCount  = capitan.NewIntKey("field_count")
)

func emitProcessorCreated(ctx context.Context, contentType, typeName string, fields int) {
	capitan.Emit(ctx, SignalProcessorCreated,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyFieldCount.Field(fields),
	)
}

func emitWriteStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalWriteStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitWriteComplete emits an event when write finishes.
func emitWriteComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, fields int, err error) {
	data := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
		KeyFieldCount.Field(fields),
	}
	if err != nil {
		data = append(data, KeyError.Field(err))
		capitan.Error(ctx, SignalWriteComplete, data...)
	} else {
		capitan.Emit(ctx, SignalWriteComplete, data...)
	}
}

func emitReadStart(ctx context.Context, contentType, typeName string, size int) {
	capitan.Emit(ctx, SignalReadStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
	)
}

// emitReadComplete emits an event when read finishes.
func emitReadComplete(ctx context.Context, contentType, typeName string, duration time.Duration, fields int, err error) {
	data := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyFieldCount.Field(fields),
	}
	if err != nil {
		data = append(data, KeyError.Field(err))
		capitan.Error(ctx, SignalReadComplete, data...)
	} else {
		capitan.Emit(ctx, SignalReadComplete, data...)
	}
}
