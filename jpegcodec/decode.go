package jpegcodec

import (
	"fmt"
	"math"

	"github.com/mrjoshuak/go-jpegcodec/huffman"
	"github.com/mrjoshuak/go-jpegcodec/internal/codecerr"
	"github.com/mrjoshuak/go-jpegcodec/internal/predictor"
	"github.com/mrjoshuak/go-jpegcodec/transform"
)

// Decode reverses Encode, reconstructing an image of Artifact's recorded
// OriginalShape.
func Decode(a *Artifact) (*Image, error) {
	switch a.OriginalShape.Channels {
	case 1:
		return decodeGray(a)
	case 3:
		return decodeColor(a)
	default:
		return nil, fmt.Errorf("jpegcodec: Decode: unsupported channel count %d: %w", a.OriginalShape.Channels, codecerr.InvalidShape)
	}
}

func decodeGray(a *Artifact) (*Image, error) {
	lumaTable, err := transform.ScaledTable(a.Quality, false)
	if err != nil {
		return nil, err
	}
	n := a.PaddedShape.Y.BlockCount()
	blocks, err := huffman.DecodeStream(a.Bytes, a.TotalBits, a.DCTable, a.ACTable, n)
	if err != nil {
		return nil, err
	}
	plane, err := inversePlane(a.PaddedShape.Y, blocks, lumaTable)
	if err != nil {
		return nil, err
	}

	pix := make([]uint8, len(plane))
	for i, v := range plane {
		pix[i] = clampSample(v)
	}
	return &Image{Shape: a.OriginalShape, Pix: pix}, nil
}

func decodeColor(a *Artifact) (*Image, error) {
	lumaTable, err := transform.ScaledTable(a.Quality, false)
	if err != nil {
		return nil, err
	}
	chromaTable, err := transform.ScaledTable(a.Quality, true)
	if err != nil {
		return nil, err
	}

	nY := a.PaddedShape.Y.BlockCount()
	nCb := a.PaddedShape.Cb.BlockCount()
	nCr := a.PaddedShape.Cr.BlockCount()
	blocks, err := huffman.DecodeStream(a.Bytes, a.TotalBits, a.DCTable, a.ACTable, nY+nCb+nCr)
	if err != nil {
		return nil, err
	}
	yBlocks, blocks := blocks[:nY], blocks[nY:]
	cbBlocks, blocks := blocks[:nCb], blocks[nCb:]
	crBlocks := blocks[:nCr]

	yPlane, err := inversePlane(a.PaddedShape.Y, yBlocks, lumaTable)
	if err != nil {
		return nil, err
	}
	cbPlane, err := inversePlane(a.PaddedShape.Cb, cbBlocks, chromaTable)
	if err != nil {
		return nil, err
	}
	crPlane, err := inversePlane(a.PaddedShape.Cr, crBlocks, chromaTable)
	if err != nil {
		return nil, err
	}

	sp := &transform.SubsampledPlanes{
		Mode:    a.Subsampling,
		Y:       yPlane,
		YH:      a.PaddedShape.Y.PreH,
		YW:      a.PaddedShape.Y.PreW,
		Cb:      cbPlane,
		Cr:      crPlane,
		ChromaH: a.PaddedShape.Cb.PreH,
		ChromaW: a.PaddedShape.Cb.PreW,
	}
	ycbcr, err := transform.Upsample(sp, a.OriginalShape.Height, a.OriginalShape.Width)
	if err != nil {
		return nil, err
	}
	pix, err := transform.YCbCrToRGB(ycbcr)
	if err != nil {
		return nil, err
	}
	return &Image{Shape: a.OriginalShape, Pix: pix}, nil
}

// inversePlane reverses forwardPlane: dequantize, inverse DCT, merge the
// block grid and crop back to the plane's pre-padding size.
func inversePlane(shape PlaneShape, blocks []huffman.EncodedBlock, table transform.QuantTable) ([]float32, error) {
	n := shape.BlockCount()
	if len(blocks) != n {
		return nil, fmt.Errorf("jpegcodec: block count %d does not match padded shape %dx%d: %w", len(blocks), shape.PaddedH, shape.PaddedW, codecerr.InconsistentArtifact)
	}

	dc := make([]int32, n)
	acs := make([][63]int32, n)
	for i, b := range blocks {
		dc[i] = b.DCDiff
		ac, err := transform.DecodeAC(b.AC)
		if err != nil {
			return nil, err
		}
		acs[i] = ac
	}
	predictor.DecodeDC(dc)

	dctBlocks := make([]transform.Block, n)
	for i := range blocks {
		v := transform.JoinDCAC(dc[i], acs[i])
		dctBlocks[i] = transform.Dequantize(transform.InverseZigzag(v), table)
	}
	spatial := transform.IDCTAll(dctBlocks)
	return transform.MergeBlocks(spatial, shape.BlocksH(), shape.BlocksW(), shape.PreH, shape.PreW)
}

func clampSample(v float32) uint8 {
	if v < 0 {
		v = 0
	} else if v > 255 {
		v = 255
	}
	return uint8(math.Round(float64(v)))
}
