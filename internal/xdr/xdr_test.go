package xdr

import (
	"bytes"
	"testing"
)

func TestReaderBasic(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	r := NewReader(data)

	if r.Len() != 8 {
		t.Errorf("Len() = %d, want 8", r.Len())
	}

	b, err := r.ReadByte()
	if err != nil {
		t.Errorf("ReadByte() error = %v", err)
	}
	if b != 0x01 {
		t.Errorf("ReadByte() = %d, want 1", b)
	}
	if r.Len() != 7 {
		t.Errorf("Len() after ReadByte = %d, want 7", r.Len())
	}
}

func TestReaderIntegers(t *testing.T) {
	data := []byte{
		0x78, 0x56, 0x34, 0x12, // uint32: 0x12345678
		0xFD, 0xFF, 0xFF, 0xFF, // int32: -3
	}
	r := NewReader(data)

	u32, err := r.ReadUint32()
	if err != nil {
		t.Fatalf("ReadUint32() error = %v", err)
	}
	if u32 != 0x12345678 {
		t.Errorf("ReadUint32() = 0x%08X, want 0x12345678", u32)
	}

	i32, err := r.ReadInt32()
	if err != nil {
		t.Fatalf("ReadInt32() error = %v", err)
	}
	if i32 != -3 {
		t.Errorf("ReadInt32() = %d, want -3", i32)
	}
}

func TestReaderUint8(t *testing.T) {
	r := NewReader([]byte{0, 1, 127, 128, 255})
	want := []uint8{0, 1, 127, 128, 255}
	for _, w := range want {
		got, err := r.ReadUint8()
		if err != nil {
			t.Fatalf("ReadUint8() error = %v", err)
		}
		if got != w {
			t.Errorf("ReadUint8() = %d, want %d", got, w)
		}
	}
}

func TestReaderString(t *testing.T) {
	data := []byte{'h', 'e', 'l', 'l', 'o', 0, '4', ':', '2', ':', '0', 0}
	r := NewReader(data)

	s1, err := r.ReadString()
	if err != nil {
		t.Fatalf("ReadString() error = %v", err)
	}
	if s1 != "hello" {
		t.Errorf("ReadString() = %q, want %q", s1, "hello")
	}

	s2, err := r.ReadString()
	if err != nil {
		t.Fatalf("ReadString() error = %v", err)
	}
	if s2 != "4:2:0" {
		t.Errorf("ReadString() = %q, want %q", s2, "4:2:0")
	}
}

func TestReaderStringMissingTerminator(t *testing.T) {
	r := NewReader([]byte{'a', 'b', 'c'})
	if _, err := r.ReadString(); err != ErrShortBuffer {
		t.Errorf("ReadString() without null error = %v, want ErrShortBuffer", err)
	}
}

func TestReaderBytes(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	r := NewReader(data)

	b, err := r.ReadBytes(3)
	if err != nil {
		t.Fatalf("ReadBytes() error = %v", err)
	}
	if !bytes.Equal(b, []byte{1, 2, 3}) {
		t.Errorf("ReadBytes(3) = %v, want [1 2 3]", b)
	}

	rest, err := r.ReadBytes(r.Len())
	if err != nil {
		t.Fatalf("ReadBytes(remaining) error = %v", err)
	}
	if !bytes.Equal(rest, []byte{4, 5}) {
		t.Errorf("ReadBytes(remaining) = %v, want [4 5]", rest)
	}
}

func TestReaderErrors(t *testing.T) {
	r := NewReader([]byte{1, 2})

	if _, err := r.ReadUint32(); err != ErrShortBuffer {
		t.Errorf("ReadUint32() error = %v, want ErrShortBuffer", err)
	}

	if _, err := r.ReadBytes(-1); err != ErrNegativeSize {
		t.Errorf("ReadBytes(-1) error = %v, want ErrNegativeSize", err)
	}

	r2 := NewReader([]byte{})
	if _, err := r2.ReadUint8(); err != ErrShortBuffer {
		t.Errorf("ReadUint8() on empty error = %v, want ErrShortBuffer", err)
	}
}

func TestReaderLen(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})
	r.ReadByte()
	r.ReadByte()
	r.ReadByte()
	if r.Len() != 0 {
		t.Errorf("Len() at end = %d, want 0", r.Len())
	}
	// Reading past the end must not panic, and Len stays clamped at 0.
	r.ReadByte()
	if r.Len() != 0 {
		t.Errorf("Len() past end = %d, want 0", r.Len())
	}
}

func TestBufferWriter(t *testing.T) {
	w := NewBufferWriter(16)

	if w.Len() != 0 {
		t.Errorf("Len() = %d, want 0", w.Len())
	}

	w.WriteUint32(0x12345678)
	w.WriteString("4:2:0")

	if w.Len() != 4+6 {
		t.Errorf("Len() = %d, want 10", w.Len())
	}

	r := NewReader(w.Bytes())
	u32, _ := r.ReadUint32()
	s, _ := r.ReadString()

	if u32 != 0x12345678 {
		t.Errorf("ReadUint32() = 0x%08X, want 0x12345678", u32)
	}
	if s != "4:2:0" {
		t.Errorf("ReadString() = %q, want %q", s, "4:2:0")
	}
}

func TestBufferWriterAllFields(t *testing.T) {
	w := NewBufferWriter(64)

	w.WriteByte(1)
	w.WriteBytes([]byte{2, 3})
	w.WriteUint8(4)
	w.WriteUint32(0x12345678)
	w.WriteInt32(-3)
	w.WriteString("jpeg")

	r := NewReader(w.Bytes())

	b, _ := r.ReadByte()
	if b != 1 {
		t.Errorf("ReadByte() = %d, want 1", b)
	}

	bs, _ := r.ReadBytes(2)
	if !bytes.Equal(bs, []byte{2, 3}) {
		t.Errorf("ReadBytes() = %v, want [2 3]", bs)
	}

	u8, _ := r.ReadUint8()
	if u8 != 4 {
		t.Errorf("ReadUint8() = %d, want 4", u8)
	}

	u32, _ := r.ReadUint32()
	if u32 != 0x12345678 {
		t.Errorf("ReadUint32() = 0x%08X, want 0x12345678", u32)
	}

	i32, _ := r.ReadInt32()
	if i32 != -3 {
		t.Errorf("ReadInt32() = %d, want -3", i32)
	}

	s, _ := r.ReadString()
	if s != "jpeg" {
		t.Errorf("ReadString() = %q, want %q", s, "jpeg")
	}
}

func BenchmarkReaderUint32(b *testing.B) {
	data := make([]byte, 4*b.N)
	r := NewReader(data)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.ReadUint32()
	}
}

func BenchmarkBufferWriterUint32(b *testing.B) {
	w := NewBufferWriter(4 * b.N)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.WriteUint32(uint32(i))
	}
}
