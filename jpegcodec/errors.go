package jpegcodec

import (
	"fmt"

	"github.com/mrjoshuak/go-jpegcodec/internal/codecerr"
)

// Errors surfaced by the pipeline, re-exported from the shared taxonomy.
var (
	ErrInvalidShape         = codecerr.InvalidShape
	ErrOutOfRange           = codecerr.OutOfRange
	ErrInvalidMode          = codecerr.InvalidMode
	ErrInconsistentArtifact = codecerr.InconsistentArtifact
)

// ErrIllegalTransition is returned by Pipeline methods called out of their
// documented Ready->Encoding->Encoded / Encoded->Decoding->Decoded order.
var ErrIllegalTransition = fmt.Errorf("jpegcodec: illegal pipeline state transition")
