package huffman

import "github.com/mrjoshuak/go-jpegcodec/internal/codecerr"

// Errors returned by Table.Decode and the stream codec, re-exported from
// the shared taxonomy so callers of this package don't need a second
// import just to check errors.Is against them.
var (
	ErrUnknownCode          = codecerr.UnknownCode
	ErrTruncated            = codecerr.Truncated
	ErrOverflow             = codecerr.Overflow
	ErrInconsistentArtifact = codecerr.InconsistentArtifact
)
