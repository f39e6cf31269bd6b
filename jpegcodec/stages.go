package jpegcodec

import (
	"github.com/mrjoshuak/go-jpegcodec/huffman"
	"github.com/mrjoshuak/go-jpegcodec/transform"
)

// Stages exposes the forward pipeline's intermediate results as pure
// functions over the prior stage's output, for callers that want to
// inspect or visualize a step (a preview UI, a debugging tool) without
// running the whole Encode.

// StageColorTransform runs C1 alone: RGB -> YCbCr planes.
func StageColorTransform(img *Image) (*transform.ColorPlanes, error) {
	return transform.RGBToYCbCr(img.Pix, img.Shape.Height, img.Shape.Width)
}

// StageSubsampled runs C2 alone: chroma subsampling of color planes
// already produced by StageColorTransform.
func StageSubsampled(planes *transform.ColorPlanes, mode string) (*transform.SubsampledPlanes, error) {
	return transform.Subsample(planes, mode)
}

// StageBlocks runs C3 alone: pad a single plane to a multiple of 8 and
// split it into raster-order 8x8 tiles.
func StageBlocks(plane []float32, h, w int) (blocks []transform.Block, blocksH, blocksW int, err error) {
	padded, h2, w2, err := transform.PadToMul8(plane, h, w)
	if err != nil {
		return nil, 0, 0, err
	}
	return transform.SplitIntoBlocks(padded, h2, w2)
}

// StageDCT runs C4 alone over blocks already produced by StageBlocks.
func StageDCT(blocks []transform.Block) []transform.Block {
	return transform.DCTAll(blocks)
}

// StageQuantized runs C5 alone over DCT-domain blocks already produced by
// StageDCT.
func StageQuantized(blocks []transform.Block, quality int, chroma bool) ([]transform.IntBlock, error) {
	table, err := transform.ScaledTable(quality, chroma)
	if err != nil {
		return nil, err
	}
	out := make([]transform.IntBlock, len(blocks))
	for i, b := range blocks {
		out[i] = transform.Quantize(b, table)
	}
	return out, nil
}

// StageRLE runs C6 alone: zig-zag scan, differential DC coding, and AC
// run-length coding over quantized blocks already produced by
// StageQuantized.
func StageRLE(blocks []transform.IntBlock) []huffman.EncodedBlock {
	return blocksToEncoded(blocks)
}
