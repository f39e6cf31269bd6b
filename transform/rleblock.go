package transform

// SplitDCAC splits a 64-entry zig-zag vector into its DC coefficient and
// its 63 AC coefficients (positions 1..63).
func SplitDCAC(v [64]int32) (dc int32, ac [63]int32) {
	dc = v[0]
	copy(ac[:], v[1:])
	return dc, ac
}

// JoinDCAC reassembles a 64-entry zig-zag vector from a DC coefficient and
// 63 AC coefficients.
func JoinDCAC(dc int32, ac [63]int32) [64]int32 {
	var v [64]int32
	v[0] = dc
	copy(v[1:], ac[:])
	return v
}
