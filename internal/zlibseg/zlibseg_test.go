package zlibseg

import (
	"bytes"
	"testing"
)

func TestCompressEmpty(t *testing.T) {
	result, err := Compress(nil)
	if err != nil || result != nil {
		t.Error("compressing nil should return nil, nil")
	}

	result, err = Compress([]byte{})
	if err != nil || result != nil {
		t.Error("compressing empty should return nil, nil")
	}
}

func TestDecompressEmpty(t *testing.T) {
	result, err := Decompress(nil, 0)
	if err != nil || result != nil {
		t.Error("decompressing nil should return nil, nil")
	}

	result, err = Decompress([]byte{}, 0)
	if err != nil || result != nil {
		t.Error("decompressing empty should return nil, nil")
	}
}

func TestRoundTrip(t *testing.T) {
	tests := [][]byte{
		{1},
		{1, 2},
		{1, 2, 3, 4, 5},
		{100, 100, 100, 100, 100, 100, 100, 100},
		{1, 2, 3, 3, 3, 3, 4, 5, 6},
		{1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3},
		bytes.Repeat([]byte("container header segment"), 64),
	}

	for _, src := range tests {
		compressed, err := Compress(src)
		if err != nil {
			t.Fatalf("Compress(%v): %v", src, err)
		}
		got, err := Decompress(compressed, len(src))
		if err != nil {
			t.Fatalf("Decompress: %v", err)
		}
		if !bytes.Equal(got, src) {
			t.Fatalf("round trip = %v, want %v", got, src)
		}
	}
}

func TestRoundTripAllLevels(t *testing.T) {
	src := bytes.Repeat([]byte("quality85 sampling420"), 32)
	levels := []Level{LevelHuffmanOnly, LevelNone, LevelBestSpeed, LevelDefault, LevelBestSize}

	for _, level := range levels {
		compressed, err := CompressLevel(src, level)
		if err != nil {
			t.Fatalf("CompressLevel(level=%d): %v", level, err)
		}
		got, err := Decompress(compressed, len(src))
		if err != nil {
			t.Fatalf("Decompress(level=%d): %v", level, err)
		}
		if !bytes.Equal(got, src) {
			t.Fatalf("level %d round trip = %v, want %v", level, got, src)
		}
	}
}

func TestDecompressRejectsCorrupted(t *testing.T) {
	if _, err := Decompress([]byte("not zlib data"), 10); err == nil {
		t.Fatal("expected an error decompressing garbage")
	}
}

func TestDecompressRejectsSizeMismatch(t *testing.T) {
	compressed, err := Compress([]byte("hello world"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Decompress(compressed, 3); err == nil {
		t.Fatal("expected a size mismatch error")
	}
}
