package bitio

import "testing"

// FuzzReaderReadBits exercises the bounds checking of Reader against
// arbitrary byte streams and bit-width requests, mirroring the malicious-
// input corpus style used for OpenEXR's xdr.Reader.
func FuzzReaderReadBits(f *testing.F) {
	f.Add([]byte{0xff, 0x00}, 16, 8)
	f.Add([]byte{}, 0, 1)
	f.Add([]byte{0x01}, 3, 5)
	f.Add([]byte{0xff, 0xff, 0xff, 0xff}, 32, 32)

	f.Fuzz(func(t *testing.T, data []byte, totalBits int, width int) {
		if totalBits < 0 || totalBits > len(data)*8 {
			return
		}
		if width < 0 || width > 32 {
			return
		}
		r := NewReader(data, totalBits)
		v, err := r.ReadBits(uint(width))
		if err == nil && width < 32 && v >= (uint32(1)<<uint(width)) {
			t.Errorf("ReadBits(%d) = %#x exceeds width", width, v)
		}
	})
}
