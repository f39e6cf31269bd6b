// Package parallel provides the worker-pool plumbing that lets the codec
// process independent 8x8 blocks across goroutines (the forward and
// inverse DCT stages use it) while leaving differential-DC and Huffman
// bit emission serialized, per the codec's concurrency contract.
package parallel

import (
	"runtime"
	"sync"
)

// Config configures parallel block processing.
type Config struct {
	// NumWorkers is the number of worker goroutines. 0 means runtime.GOMAXPROCS(0).
	NumWorkers int

	// GrainSize is the minimum number of items before work is split across
	// workers; batches smaller than this run on the calling goroutine.
	GrainSize int
}

// DefaultConfig returns the default parallel configuration.
func DefaultConfig() Config {
	return Config{
		NumWorkers: 0,
		GrainSize:  64,
	}
}

var (
	current   = DefaultConfig()
	currentMu sync.RWMutex
)

// SetConfig sets the process-wide parallel configuration used by Map when
// callers don't supply one explicitly.
func SetConfig(c Config) {
	currentMu.Lock()
	defer currentMu.Unlock()
	current = c
}

// GetConfig returns the current process-wide parallel configuration.
func GetConfig() Config {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

func effectiveWorkers(c Config) int {
	if c.NumWorkers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.NumWorkers
}

// Map applies fn to every index in [0,n) and returns once all calls have
// completed. Work is split across a worker pool when n meets the
// configured grain size; otherwise it runs sequentially on the calling
// goroutine so small images don't pay goroutine-spawn overhead.
func Map(c Config, n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if n < c.GrainSize {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	workers := effectiveWorkers(c)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if start >= n {
			break
		}
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}
