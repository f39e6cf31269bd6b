package transform

// zigzagOrder is the canonical JPEG zig-zag permutation: zigzagOrder[i] is
// the natural-order index placed at zig-zag position i.
var zigzagOrder = [64]int{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}

// Zigzag reorders a natural-order 8x8 block into the 64-entry zig-zag scan.
func Zigzag(block IntBlock) [64]int32 {
	var v [64]int32
	for zz, natural := range zigzagOrder {
		v[zz] = block[natural]
	}
	return v
}

// InverseZigzag reorders a 64-entry zig-zag vector back into a natural-order
// 8x8 block.
func InverseZigzag(v [64]int32) IntBlock {
	var block IntBlock
	for zz, natural := range zigzagOrder {
		block[natural] = v[zz]
	}
	return block
}
