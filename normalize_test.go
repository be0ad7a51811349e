package recode

import (
	"encoding/binary"
	"testing"
	"unsafe"
)

func TestNormalizeToBytes_Identity(t *testing.T) {
	buf := make([]byte, 3, 8)
	copy(buf, "abc")

	got := NormalizeToBytes(buf)
	if len(got) != 3 || cap(got) != 8 {
		t.Fatalf("len/cap = %d/%d, want 3/8", len(got), cap(got))
	}
	if unsafe.SliceData(got) != unsafe.SliceData(buf) {
		t.Error("byte buffer should be returned with the same backing array")
	}
}

func TestNormalizeToBytes_Idempotent(t *testing.T) {
	src := []uint32{1, 2, 3}
	once := NormalizeToBytes(src)
	twice := NormalizeToBytes(once)

	if len(once) != len(twice) || cap(once) != cap(twice) {
		t.Fatalf("len/cap changed: %d/%d vs %d/%d", len(once), cap(once), len(twice), cap(twice))
	}
	if unsafe.SliceData(once) != unsafe.SliceData(twice) {
		t.Error("second normalization should not move the view")
	}
}

func TestNormalizeToBytes_Uint16(t *testing.T) {
	src := []uint16{0x0102, 0xfffe}
	got := NormalizeToBytes(src)
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	if binary.NativeEndian.Uint16(got[0:]) != 0x0102 {
		t.Errorf("first element = %#x", binary.NativeEndian.Uint16(got[0:]))
	}
	if binary.NativeEndian.Uint16(got[2:]) != 0xfffe {
		t.Errorf("second element = %#x", binary.NativeEndian.Uint16(got[2:]))
	}
}

func TestNormalizeToBytes_SharesMemory(t *testing.T) {
	src := []uint32{0}
	view := NormalizeToBytes(src)
	binary.NativeEndian.PutUint32(view, 0xdeadbeef)
	if src[0] != 0xdeadbeef {
		t.Errorf("write through view not visible: %#x", src[0])
	}
}

func TestNormalizeToBytes_Window(t *testing.T) {
	backing := []int64{1, 2, 3, 4}
	window := backing[1:3]

	got := NormalizeToBytes(window)
	if len(got) != 16 {
		t.Errorf("len = %d, want 16", len(got))
	}
	if cap(got) != 24 {
		t.Errorf("cap = %d, want 24", cap(got))
	}
	if int64(binary.NativeEndian.Uint64(got)) != 2 {
		t.Errorf("view starts at wrong element: %d", int64(binary.NativeEndian.Uint64(got)))
	}
}

func TestNormalizeToBytes_EmptyBytes(t *testing.T) {
	empty := []byte{}
	got := NormalizeToBytes(empty)
	if got == nil {
		t.Fatal("empty []byte came back as nil")
	}
	if len(got) != 0 || cap(got) != 0 {
		t.Errorf("len/cap = %d/%d, want 0/0", len(got), cap(got))
	}
	if unsafe.SliceData(got) != unsafe.SliceData(empty) {
		t.Error("empty []byte should be returned unchanged")
	}

	if got := NormalizeToBytes([]byte(nil)); got != nil {
		t.Errorf("nil []byte = %v, want nil", got)
	}
}

func TestNormalizeToBytes_Empty(t *testing.T) {
	if got := NormalizeToBytes([]uint16(nil)); got != nil {
		t.Errorf("nil buffer = %v, want nil", got)
	}
	got := NormalizeToBytes(make([]int32, 0, 2))
	if len(got) != 0 || cap(got) != 8 {
		t.Errorf("len/cap = %d/%d, want 0/8", len(got), cap(got))
	}
}

type sample int16

func TestNormalizeToBytes_NamedType(t *testing.T) {
	got := NormalizeToBytes([]sample{-1})
	if len(got) != 2 || got[0] != 0xff || got[1] != 0xff {
		t.Errorf("NormalizeToBytes([]sample{-1}) = %x", got)
	}
}
