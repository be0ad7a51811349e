package recode

import "unsafe"

// Integer is any fixed-width integer element type a buffer may hold.
type Integer interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

// NormalizeToBytes returns a byte view over the memory backing buf, with
// multi-byte elements laid out in the platform's native byte order. No data
// is copied: writes through either slice are visible in the other. A []byte
// is returned unchanged, empty or nil ones included. Any other buffer with no
// capacity yields nil.
//
// WARNING: the view shares memory with buf. Treat it as read-only while buf
// is in use elsewhere.
func NormalizeToBytes[T Integer](buf []T) []byte {
	if b, ok := any(buf).([]byte); ok {
		return b
	}
	if cap(buf) == 0 {
		return nil
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	full := buf[:cap(buf)]
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(full))), cap(buf)*size)[:len(buf)*size]
}
