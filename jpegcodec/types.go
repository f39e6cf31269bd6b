// Package jpegcodec implements a baseline JPEG-style lossy image codec:
// BT.601 color transform, optional chroma subsampling, 8x8 block DCT,
// quantization, zig-zag run-length coding, and per-image Huffman entropy
// coding, together with their exact inverses.
package jpegcodec

import "github.com/mrjoshuak/go-jpegcodec/huffman"

// Shape describes an image's dimensions: Channels is 1 for grayscale or 3
// for color.
type Shape struct {
	Height, Width, Channels int
}

// Image is a rectangular pixel buffer, channel-last (H,W,C), with sample
// values in [0,255]. The core reads Image but never mutates one the
// caller owns.
type Image struct {
	Shape Shape
	Pix   []uint8
}

// NewImage allocates a zeroed image of the given shape.
func NewImage(shape Shape) *Image {
	return &Image{Shape: shape, Pix: make([]uint8, shape.Height*shape.Width*shape.Channels)}
}

// PlaneShape records one channel plane's block-grid geometry: its
// pre-padding size (after any chroma subsampling) and the multiple-of-8
// padded size actually split into blocks.
type PlaneShape struct {
	PreH, PreW       int
	PaddedH, PaddedW int
}

// BlocksH and BlocksW report the plane's block-grid dimensions.
func (s PlaneShape) BlocksH() int { return s.PaddedH / 8 }
func (s PlaneShape) BlocksW() int { return s.PaddedW / 8 }

// BlockCount reports the number of 8x8 blocks the plane was split into.
func (s PlaneShape) BlockCount() int { return s.BlocksH() * s.BlocksW() }

// PaddedShape records the block-grid geometry of every plane in an
// artifact. Cb/Cr are the zero value for grayscale images.
type PaddedShape struct {
	Y      PlaneShape
	Cb, Cr PlaneShape
}

// Artifact is the compressed output of Encode: the entropy-coded byte
// buffer, the per-image Huffman tables that decode it, and the shape
// metadata Decode needs to reconstruct the original image.
type Artifact struct {
	Bytes         []byte
	DCTable       *huffman.Table[huffman.DCSymbol]
	ACTable       *huffman.Table[huffman.ACSymbol]
	PaddedShape   PaddedShape
	TotalBits     int
	OriginalShape Shape
	Quality       int
	Subsampling   string
}
