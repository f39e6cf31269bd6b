package jpegcodec

import (
	"fmt"

	"github.com/mrjoshuak/go-jpegcodec/huffman"
	"github.com/mrjoshuak/go-jpegcodec/internal/codecerr"
	"github.com/mrjoshuak/go-jpegcodec/internal/predictor"
	"github.com/mrjoshuak/go-jpegcodec/transform"
)

// Encode runs the full forward pipeline — color transform, chroma
// subsampling, block DCT, quantization, zig-zag/RLE, and per-image Huffman
// coding — producing a compressed Artifact. quality is a JPEG-style
// quality factor in [1,100]; subsampling is one of transform.Sampling444,
// Sampling422, Sampling420, and is ignored for single-channel images.
func Encode(img *Image, quality int, subsampling string) (*Artifact, error) {
	h, w, ch := img.Shape.Height, img.Shape.Width, img.Shape.Channels
	if h <= 0 || w <= 0 {
		return nil, fmt.Errorf("jpegcodec: Encode: non-positive dimensions %dx%d: %w", h, w, codecerr.InvalidShape)
	}
	switch ch {
	case 1:
		if len(img.Pix) != h*w {
			return nil, fmt.Errorf("jpegcodec: Encode: pix length %d does not match %dx%dx1: %w", len(img.Pix), h, w, codecerr.InvalidShape)
		}
		return encodeGray(img, quality)
	case 3:
		if len(img.Pix) != h*w*3 {
			return nil, fmt.Errorf("jpegcodec: Encode: pix length %d does not match %dx%dx3: %w", len(img.Pix), h, w, codecerr.InvalidShape)
		}
		return encodeColor(img, quality, subsampling)
	default:
		return nil, fmt.Errorf("jpegcodec: Encode: unsupported channel count %d: %w", ch, codecerr.InvalidShape)
	}
}

func encodeGray(img *Image, quality int) (*Artifact, error) {
	h, w := img.Shape.Height, img.Shape.Width
	plane := make([]float32, h*w)
	for i, v := range img.Pix {
		plane[i] = float32(v)
	}

	lumaTable, err := transform.ScaledTable(quality, false)
	if err != nil {
		return nil, err
	}
	yBlocks, yShape, err := forwardPlane(plane, h, w, lumaTable)
	if err != nil {
		return nil, err
	}

	blocks := blocksToEncoded(yBlocks)
	dcTable, acTable, err := huffman.BuildTables(blocks)
	if err != nil {
		return nil, err
	}
	data, totalBits, err := huffman.EncodeStream(blocks, dcTable, acTable)
	if err != nil {
		return nil, err
	}

	return &Artifact{
		Bytes:         data,
		DCTable:       dcTable,
		ACTable:       acTable,
		TotalBits:     totalBits,
		OriginalShape: img.Shape,
		Quality:       quality,
		PaddedShape:   PaddedShape{Y: yShape},
	}, nil
}

func encodeColor(img *Image, quality int, subsampling string) (*Artifact, error) {
	h, w := img.Shape.Height, img.Shape.Width
	ycbcr, err := transform.RGBToYCbCr(img.Pix, h, w)
	if err != nil {
		return nil, err
	}
	sp, err := transform.Subsample(ycbcr, subsampling)
	if err != nil {
		return nil, err
	}

	lumaTable, err := transform.ScaledTable(quality, false)
	if err != nil {
		return nil, err
	}
	chromaTable, err := transform.ScaledTable(quality, true)
	if err != nil {
		return nil, err
	}

	yBlocks, yShape, err := forwardPlane(sp.Y, sp.YH, sp.YW, lumaTable)
	if err != nil {
		return nil, err
	}
	cbBlocks, cbShape, err := forwardPlane(sp.Cb, sp.ChromaH, sp.ChromaW, chromaTable)
	if err != nil {
		return nil, err
	}
	crBlocks, crShape, err := forwardPlane(sp.Cr, sp.ChromaH, sp.ChromaW, chromaTable)
	if err != nil {
		return nil, err
	}

	blocks := make([]huffman.EncodedBlock, 0, len(yBlocks)+len(cbBlocks)+len(crBlocks))
	blocks = append(blocks, blocksToEncoded(yBlocks)...)
	blocks = append(blocks, blocksToEncoded(cbBlocks)...)
	blocks = append(blocks, blocksToEncoded(crBlocks)...)

	dcTable, acTable, err := huffman.BuildTables(blocks)
	if err != nil {
		return nil, err
	}
	data, totalBits, err := huffman.EncodeStream(blocks, dcTable, acTable)
	if err != nil {
		return nil, err
	}

	return &Artifact{
		Bytes:         data,
		DCTable:       dcTable,
		ACTable:       acTable,
		TotalBits:     totalBits,
		OriginalShape: img.Shape,
		Quality:       quality,
		Subsampling:   subsampling,
		PaddedShape:   PaddedShape{Y: yShape, Cb: cbShape, Cr: crShape},
	}, nil
}

// forwardPlane pads a plane to a multiple of 8, splits it into blocks, and
// runs the forward DCT and quantization stages over every block.
func forwardPlane(plane []float32, h, w int, table transform.QuantTable) ([]transform.IntBlock, PlaneShape, error) {
	padded, h2, w2, err := transform.PadToMul8(plane, h, w)
	if err != nil {
		return nil, PlaneShape{}, err
	}
	blocks, _, _, err := transform.SplitIntoBlocks(padded, h2, w2)
	if err != nil {
		return nil, PlaneShape{}, err
	}
	dctBlocks := transform.DCTAll(blocks)
	ib := make([]transform.IntBlock, len(dctBlocks))
	for i, b := range dctBlocks {
		ib[i] = transform.Quantize(b, table)
	}
	return ib, PlaneShape{PreH: h, PreW: w, PaddedH: h2, PaddedW: w2}, nil
}

// blocksToEncoded zig-zags a plane's quantized blocks, differentially
// codes their DC coefficients in raster order, and run-length codes each
// block's AC coefficients.
func blocksToEncoded(ib []transform.IntBlock) []huffman.EncodedBlock {
	n := len(ib)
	zz := make([][64]int32, n)
	dc := make([]int32, n)
	for i, b := range ib {
		zz[i] = transform.Zigzag(b)
		dc[i] = zz[i][0]
	}
	predictor.EncodeDC(dc)

	out := make([]huffman.EncodedBlock, n)
	for i := range ib {
		out[i] = huffman.EncodedBlock{DCDiff: dc[i], AC: transform.EncodeAC(zz[i])}
	}
	return out
}
