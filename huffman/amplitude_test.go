package huffman

import "testing"

func TestSizeCategory(t *testing.T) {
	cases := []struct {
		v    int32
		want uint8
	}{
		{0, 0}, {1, 1}, {-1, 1}, {2, 2}, {-3, 2}, {4, 3}, {-7, 3}, {255, 8}, {-255, 8},
	}
	for _, c := range cases {
		if got := SizeCategory(c.v); got != c.want {
			t.Errorf("SizeCategory(%d) = %d, want %d", c.v, got, c.want)
		}
	}
}

func TestAmplitudeRoundTrip(t *testing.T) {
	for v := int32(-300); v <= 300; v++ {
		size := SizeCategory(v)
		raw := EncodeAmplitude(v, size)
		got := DecodeAmplitude(raw, size)
		if got != v {
			t.Fatalf("round trip v=%d: got %d (size=%d raw=%#x)", v, got, size, raw)
		}
	}
}
