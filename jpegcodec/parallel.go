package jpegcodec

import "github.com/mrjoshuak/go-jpegcodec/internal/parallel"

// ParallelConfig configures the worker pool used by the forward and
// inverse DCT stages of Encode/Decode; quantization and RLE run on the
// calling goroutine. DefaultParallelConfig gives one worker per
// GOMAXPROCS with batches under 64 blocks run on the calling goroutine;
// the zero value also uses GOMAXPROCS workers but splits every batch.
type ParallelConfig = parallel.Config

// DefaultParallelConfig returns the library's default parallel
// configuration.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// SetParallelConfig sets the process-wide configuration that every
// Encode/Decode call uses; there is no per-call override.
func SetParallelConfig(c ParallelConfig) {
	parallel.SetConfig(c)
}

// WorkerPool applies fn to every block index in [0,n), splitting the work
// across goroutines per cfg once n reaches cfg.GrainSize.
func WorkerPool(cfg ParallelConfig, n int, fn func(i int)) {
	parallel.Map(cfg, n, fn)
}
