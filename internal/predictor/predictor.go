// Package predictor implements differential coding of per-block DC
// coefficients within a channel's raster order.
//
// It is the same running-difference idea OpenEXR's byte predictor applies
// to scanline data, generalized from one byte per pixel to one signed
// DC value per 8x8 block: EncodeDC turns each DC into a difference from the
// previous block's DC in the same channel, and DecodeDC reverses it.
package predictor

// EncodeDC replaces each element of dc (in place) with its difference from
// the preceding element. The first element is left unchanged — it has no
// predecessor within this channel.
//
// Work backwards so earlier values are still intact when later ones need
// them as their predictor.
func EncodeDC(dc []int32) {
	n := len(dc)
	if n < 2 {
		return
	}
	for i := n - 1; i >= 1; i-- {
		dc[i] = dc[i] - dc[i-1]
	}
}

// DecodeDC reverses EncodeDC in place: each element becomes the sum of
// itself and all preceding differences, recovering the absolute DC values.
func DecodeDC(dc []int32) {
	n := len(dc)
	if n < 2 {
		return
	}
	for i := 1; i < n; i++ {
		dc[i] = dc[i] + dc[i-1]
	}
}
