package transform

import (
	"sync"
)

// QuantTable is an 8x8 quantization table flattened in row-major (natural,
// not zig-zag) order.
type QuantTable [BlockSize * BlockSize]int32

// IntBlock is a flattened 8x8 block of quantized integer coefficients.
type IntBlock [BlockSize * BlockSize]int32

// jpegLumaTable and jpegChromaTable are the standard JPEG base quantization
// matrices in natural (row-major) order, before quality scaling.
var jpegLumaTable = QuantTable{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	49, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

var jpegChromaTable = QuantTable{
	17, 18, 24, 47, 99, 99, 99, 99,
	18, 21, 26, 66, 99, 99, 99, 99,
	24, 26, 56, 99, 99, 99, 99, 99,
	47, 66, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
}

type quantKey struct {
	quality int
	chroma  bool
}

// quantCache lazily memoizes scaled tables keyed by (quality, chroma),
// generalizing the codec's single compile-time table cache to a runtime
// quality parameter: write-once per key, safe to read concurrently once
// populated.
var quantCache sync.Map // quantKey -> QuantTable

// ScaledTable returns the luma or chroma quantization table scaled for the
// given quality, per the standard JPEG scale formula, using a process-wide
// cache keyed by (quality, chroma).
func ScaledTable(quality int, chroma bool) (QuantTable, error) {
	if quality < 1 || quality > 100 {
		return QuantTable{}, errRange("ScaledTable: quality %d out of [1,100]", quality)
	}
	key := quantKey{quality, chroma}
	if v, ok := quantCache.Load(key); ok {
		return v.(QuantTable), nil
	}

	base := &jpegLumaTable
	if chroma {
		base = &jpegChromaTable
	}

	var scale int32
	if quality < 50 {
		scale = int32(5000 / quality)
	} else {
		scale = int32(200 - 2*quality)
	}

	var out QuantTable
	for i, v := range base {
		entry := (v*scale + 50) / 100
		if entry < 1 {
			entry = 1
		} else if entry > 255 {
			entry = 255
		}
		out[i] = entry
	}

	actual, _ := quantCache.LoadOrStore(key, out)
	return actual.(QuantTable), nil
}

// Quantize divides each DCT coefficient by the corresponding quantization
// table entry, rounding to the nearest integer.
func Quantize(b Block, table QuantTable) IntBlock {
	var out IntBlock
	for i := range b {
		out[i] = roundDiv(b[i], table[i])
	}
	return out
}

// Dequantize multiplies each quantized coefficient by the corresponding
// quantization table entry, reversing Quantize.
func Dequantize(ib IntBlock, table QuantTable) Block {
	var out Block
	for i := range ib {
		out[i] = float32(ib[i]) * float32(table[i])
	}
	return out
}

func roundDiv(v float32, t int32) int32 {
	q := v / float32(t)
	if q >= 0 {
		return int32(q + 0.5)
	}
	return int32(q - 0.5)
}

