// Package codecerr holds the shared error-category sentinels from the
// codec's error taxonomy. Each package that can fail wraps one of these
// with fmt.Errorf("%w: ...") so callers can classify a failure with
// errors.Is regardless of which stage produced it.
package codecerr

import "errors"

var (
	// InvalidShape: tensor rank or dimensions do not match the contract.
	InvalidShape = errors.New("invalid shape")
	// OutOfRange: sample values outside [0,255], NaN/Inf, or quality outside [1,100].
	OutOfRange = errors.New("out of range")
	// InvalidMode: unknown subsampling mode.
	InvalidMode = errors.New("invalid mode")
	// UnknownCode: Huffman decoder cannot match a prefix within the max code length.
	UnknownCode = errors.New("unknown huffman code")
	// Truncated: bitstream ends mid-symbol or mid-block.
	Truncated = errors.New("truncated bitstream")
	// Overflow: AC decoder produced more than 63 coefficients for a block.
	Overflow = errors.New("coefficient overflow")
	// InconsistentArtifact: padded_shape, total_bits, and tables disagree.
	InconsistentArtifact = errors.New("inconsistent artifact")
)
