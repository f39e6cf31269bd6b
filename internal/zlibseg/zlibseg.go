// Package zlibseg compresses the container header segment (shape,
// quality, subsampling mode, and the per-image Huffman tables) with
// zlib. The entropy-coded pixel payload that follows it in a container
// blob is left uncompressed, since Huffman output is already
// near-maximum-entropy and a second general-purpose pass buys nothing.
package zlibseg

import (
	"bytes"
	"errors"
	"io"
	"sync"

	"github.com/klauspost/compress/zlib"
)

var (
	// ErrCorrupted is returned when compressed header data fails to
	// decompress to a valid zlib stream.
	ErrCorrupted = errors.New("zlibseg: corrupted segment")

	// ErrSizeMismatch is returned when decompressed data does not match
	// the expected size recorded in the container header.
	ErrSizeMismatch = errors.New("zlibseg: decompressed size mismatch")
)

// Level selects a zlib compression level. Valid values are -2 to 9,
// matching klauspost/compress/zlib's extended range (-2 is
// Huffman-only).
type Level int

// Standard compression levels.
const (
	LevelHuffmanOnly Level = -2
	LevelDefault     Level = -1
	LevelNone        Level = 0
	LevelBestSpeed   Level = 1
	LevelBestSize    Level = 9
)

// Pool of zlib writers, since a container is marshaled header-segment by
// header-segment and a fresh writer per call would otherwise allocate.
var zlibWriterPool = sync.Pool{
	New: func() any {
		buf := new(bytes.Buffer)
		w, _ := zlib.NewWriterLevel(buf, zlib.DefaultCompression)
		return &pooledWriter{writer: w, buf: buf}
	},
}

type pooledWriter struct {
	writer *zlib.Writer
	buf    *bytes.Buffer
}

// Compress zlib-compresses src at the default compression level.
func Compress(src []byte) ([]byte, error) {
	return CompressLevel(src, LevelDefault)
}

// CompressLevel zlib-compresses src at the given level. Callers that want
// smaller containers at the cost of marshal time can pass LevelBestSize;
// callers marshaling many small headers can pass LevelBestSpeed.
func CompressLevel(src []byte, level Level) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}

	if level == LevelDefault {
		item := zlibWriterPool.Get().(*pooledWriter)
		item.buf.Reset()
		item.writer.Reset(item.buf)

		if _, err := item.writer.Write(src); err != nil {
			item.writer.Close()
			zlibWriterPool.Put(item)
			return nil, err
		}
		if err := item.writer.Close(); err != nil {
			zlibWriterPool.Put(item)
			return nil, err
		}

		result := make([]byte, item.buf.Len())
		copy(result, item.buf.Bytes())
		zlibWriterPool.Put(item)
		return result, nil
	}

	buf := new(bytes.Buffer)
	w, err := zlib.NewWriterLevel(buf, int(level))
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(src); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress reverses Compress/CompressLevel. expectedSize is the
// uncompressed header length recorded in the container's fixed-size
// preamble; a mismatch after inflating indicates a corrupted blob.
func Decompress(src []byte, expectedSize int) ([]byte, error) {
	if len(src) == 0 {
		if expectedSize != 0 {
			return nil, ErrCorrupted
		}
		return nil, nil
	}

	r, err := zlib.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, ErrCorrupted
	}
	defer r.Close()

	dst := make([]byte, expectedSize)
	n, err := io.ReadFull(r, dst)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, ErrCorrupted
	}
	if n != expectedSize {
		return nil, ErrSizeMismatch
	}
	var extra [1]byte
	if _, err := io.ReadFull(r, extra[:]); err == nil {
		return nil, ErrSizeMismatch
	}
	return dst, nil
}
