package transform

import (
	"math"

	"github.com/mrjoshuak/go-jpegcodec/internal/parallel"
)

// dctCoeff[k][n] = alpha(k) * cos((2n+1)*k*pi/16), the orthonormal 8-point
// type-II DCT matrix, precomputed once so DCTBlock/IDCTBlock reduce to two
// 8x8 matrix products instead of recomputing cosines per element.
var dctCoeff [BlockSize][BlockSize]float32

func init() {
	sqrt8 := float32(math.Sqrt(8))
	sqrt2_8 := float32(math.Sqrt(2.0 / 8.0))
	for k := 0; k < BlockSize; k++ {
		for n := 0; n < BlockSize; n++ {
			c := float32(math.Cos(float64(2*n+1) * float64(k) * math.Pi / 16.0))
			if k == 0 {
				dctCoeff[k][n] = c / sqrt8
			} else {
				dctCoeff[k][n] = c * sqrt2_8
			}
		}
	}
}

const levelShift = 128

// DCTBlock computes B = M * (b - 128) * Mt via two 8x8 matrix products: a
// row pass then a column pass over the level-shifted input.
func DCTBlock(b Block) Block {
	var shifted, workspace, out Block
	for i := range b {
		shifted[i] = b[i] - levelShift
	}

	// Row pass: workspace = shifted * Mt
	for row := 0; row < BlockSize; row++ {
		base := row * BlockSize
		for k := 0; k < BlockSize; k++ {
			var sum float32
			for n := 0; n < BlockSize; n++ {
				sum += shifted[base+n] * dctCoeff[k][n]
			}
			workspace[base+k] = sum
		}
	}

	// Column pass: out = M * workspace
	for col := 0; col < BlockSize; col++ {
		for k := 0; k < BlockSize; k++ {
			var sum float32
			for n := 0; n < BlockSize; n++ {
				sum += dctCoeff[k][n] * workspace[n*BlockSize+col]
			}
			out[k*BlockSize+col] = sum
		}
	}
	return out
}

// IDCTBlock computes b = Mt * B * M and adds back the level shift. The
// result is left in float form (no clamp to uint8); clamping happens only
// at image egress, per the codec's no-DCT-domain-clamping rule.
func IDCTBlock(B Block) Block {
	var workspace, out Block

	// Column pass: workspace = Mt * B
	for col := 0; col < BlockSize; col++ {
		for n := 0; n < BlockSize; n++ {
			var sum float32
			for k := 0; k < BlockSize; k++ {
				sum += dctCoeff[k][n] * B[k*BlockSize+col]
			}
			workspace[n*BlockSize+col] = sum
		}
	}

	// Row pass: out = workspace * M
	for row := 0; row < BlockSize; row++ {
		base := row * BlockSize
		for c := 0; c < BlockSize; c++ {
			var sum float32
			for k := 0; k < BlockSize; k++ {
				sum += workspace[base+k] * dctCoeff[k][c]
			}
			out[base+c] = sum + levelShift
		}
	}
	return out
}

// DCTAll applies DCTBlock to every tile, parallelized across blocks.
func DCTAll(blocks []Block) []Block {
	out := make([]Block, len(blocks))
	parallel.Map(parallel.GetConfig(), len(blocks), func(i int) {
		out[i] = DCTBlock(blocks[i])
	})
	return out
}

// IDCTAll applies IDCTBlock to every tile, parallelized across blocks.
func IDCTAll(blocks []Block) []Block {
	out := make([]Block, len(blocks))
	parallel.Map(parallel.GetConfig(), len(blocks), func(i int) {
		out[i] = IDCTBlock(blocks[i])
	})
	return out
}
