package transform

import (
	"fmt"

	"github.com/mrjoshuak/go-jpegcodec/internal/codecerr"
)

func errShape(format string, args ...any) error {
	return fmt.Errorf("transform: "+format+": %w", append(args, codecerr.InvalidShape)...)
}

func errRange(format string, args ...any) error {
	return fmt.Errorf("transform: "+format+": %w", append(args, codecerr.OutOfRange)...)
}

func errMode(format string, args ...any) error {
	return fmt.Errorf("transform: "+format+": %w", append(args, codecerr.InvalidMode)...)
}
