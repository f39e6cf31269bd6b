// Package container serializes a jpegcodec.Artifact to and from a single
// byte blob: a zlib-compressed header carrying shape/quality metadata and
// the per-image Huffman tables, followed by the raw entropy-coded
// payload stored uncompressed (it is already entropy-coded, so a second
// general-purpose compression pass buys nothing).
package container

import (
	"fmt"

	"github.com/mrjoshuak/go-jpegcodec/huffman"
	"github.com/mrjoshuak/go-jpegcodec/internal/codecerr"
	"github.com/mrjoshuak/go-jpegcodec/internal/xdr"
	"github.com/mrjoshuak/go-jpegcodec/internal/zlibseg"
	"github.com/mrjoshuak/go-jpegcodec/jpegcodec"
)

var magic = [4]byte{'J', 'C', 'C', '1'}

// Marshal serializes an artifact at the default header compression
// level: magic, uncompressed/compressed header lengths, the
// zlib-compressed header+tables segment, then the raw entropy-coded
// payload.
func Marshal(a *jpegcodec.Artifact) ([]byte, error) {
	return MarshalLevel(a, zlibseg.LevelDefault)
}

// MarshalLevel serializes an artifact like Marshal, compressing the
// header+tables segment at the given zlib level. A caller packaging many
// small artifacts can pass zlibseg.LevelBestSpeed; one optimizing for the
// smallest possible container can pass zlibseg.LevelBestSize.
func MarshalLevel(a *jpegcodec.Artifact, level zlibseg.Level) ([]byte, error) {
	header := writeHeader(a)

	compressed, err := zlibseg.CompressLevel(header, level)
	if err != nil {
		return nil, fmt.Errorf("container: compressing header: %w", err)
	}

	out := xdr.NewBufferWriter(len(magic) + 8 + len(compressed) + len(a.Bytes))
	out.WriteBytes(magic[:])
	out.WriteUint32(uint32(len(header)))
	out.WriteUint32(uint32(len(compressed)))
	out.WriteBytes(compressed)
	out.WriteBytes(a.Bytes)
	return out.Bytes(), nil
}

// Unmarshal reverses Marshal.
func Unmarshal(data []byte) (*jpegcodec.Artifact, error) {
	r := xdr.NewReader(data)

	got, err := r.ReadBytes(len(magic))
	if err != nil {
		return nil, fmt.Errorf("container: reading magic: %w", codecerr.Truncated)
	}
	for i := range magic {
		if got[i] != magic[i] {
			return nil, fmt.Errorf("container: bad magic %x: %w", got, codecerr.InconsistentArtifact)
		}
	}

	headerLen, err := r.ReadUint32()
	if err != nil {
		return nil, fmt.Errorf("container: reading header length: %w", codecerr.Truncated)
	}
	compLen, err := r.ReadUint32()
	if err != nil {
		return nil, fmt.Errorf("container: reading compressed length: %w", codecerr.Truncated)
	}
	compressed, err := r.ReadBytes(int(compLen))
	if err != nil {
		return nil, fmt.Errorf("container: reading compressed header: %w", codecerr.Truncated)
	}

	header, err := zlibseg.Decompress(compressed, int(headerLen))
	if err != nil {
		return nil, fmt.Errorf("container: decompressing header: %w", err)
	}

	a, err := readHeader(header)
	if err != nil {
		return nil, err
	}
	payload, err := r.ReadBytes(r.Len())
	if err != nil {
		return nil, fmt.Errorf("container: reading payload: %w", codecerr.Truncated)
	}
	if len(payload)*8 < a.TotalBits {
		return nil, fmt.Errorf("container: payload of %d bytes is shorter than %d bits: %w", len(payload), a.TotalBits, codecerr.Truncated)
	}
	a.Bytes = payload
	return a, nil
}

func writeHeader(a *jpegcodec.Artifact) []byte {
	w := xdr.NewBufferWriter(256)

	w.WriteInt32(int32(a.OriginalShape.Height))
	w.WriteInt32(int32(a.OriginalShape.Width))
	w.WriteInt32(int32(a.OriginalShape.Channels))
	w.WriteInt32(int32(a.Quality))
	w.WriteString(a.Subsampling)
	w.WriteInt32(int32(a.TotalBits))

	writePlaneShape(w, a.PaddedShape.Y)
	writePlaneShape(w, a.PaddedShape.Cb)
	writePlaneShape(w, a.PaddedShape.Cr)

	writeDCTable(w, a.DCTable)
	writeACTable(w, a.ACTable)

	return w.Bytes()
}

func writePlaneShape(w *xdr.BufferWriter, s jpegcodec.PlaneShape) {
	w.WriteInt32(int32(s.PreH))
	w.WriteInt32(int32(s.PreW))
	w.WriteInt32(int32(s.PaddedH))
	w.WriteInt32(int32(s.PaddedW))
}

func writeDCTable(w *xdr.BufferWriter, t *huffman.Table[huffman.DCSymbol]) {
	syms := t.Symbols()
	w.WriteUint32(uint32(len(syms)))
	for _, sym := range syms {
		code, _ := t.Encode(sym)
		w.WriteUint8(sym)
		w.WriteUint8(code.Length)
		w.WriteUint32(code.Bits)
	}
}

func writeACTable(w *xdr.BufferWriter, t *huffman.Table[huffman.ACSymbol]) {
	syms := t.Symbols()
	w.WriteUint32(uint32(len(syms)))
	for _, sym := range syms {
		code, _ := t.Encode(sym)
		w.WriteUint8(sym.Run)
		w.WriteUint8(sym.Size)
		w.WriteUint8(code.Length)
		w.WriteUint32(code.Bits)
	}
}

func readHeader(data []byte) (*jpegcodec.Artifact, error) {
	r := xdr.NewReader(data)
	a := &jpegcodec.Artifact{}

	h, err := r.ReadInt32()
	if err != nil {
		return nil, headerErr(err)
	}
	w, err := r.ReadInt32()
	if err != nil {
		return nil, headerErr(err)
	}
	c, err := r.ReadInt32()
	if err != nil {
		return nil, headerErr(err)
	}
	a.OriginalShape = jpegcodec.Shape{Height: int(h), Width: int(w), Channels: int(c)}

	quality, err := r.ReadInt32()
	if err != nil {
		return nil, headerErr(err)
	}
	a.Quality = int(quality)

	subsampling, err := r.ReadString()
	if err != nil {
		return nil, headerErr(err)
	}
	a.Subsampling = subsampling

	totalBits, err := r.ReadInt32()
	if err != nil {
		return nil, headerErr(err)
	}
	a.TotalBits = int(totalBits)

	if a.PaddedShape.Y, err = readPlaneShape(r); err != nil {
		return nil, err
	}
	if a.PaddedShape.Cb, err = readPlaneShape(r); err != nil {
		return nil, err
	}
	if a.PaddedShape.Cr, err = readPlaneShape(r); err != nil {
		return nil, err
	}

	dcTable, err := readDCTable(r)
	if err != nil {
		return nil, err
	}
	a.DCTable = dcTable

	acTable, err := readACTable(r)
	if err != nil {
		return nil, err
	}
	a.ACTable = acTable

	return a, nil
}

func readPlaneShape(r *xdr.Reader) (jpegcodec.PlaneShape, error) {
	preH, err := r.ReadInt32()
	if err != nil {
		return jpegcodec.PlaneShape{}, headerErr(err)
	}
	preW, err := r.ReadInt32()
	if err != nil {
		return jpegcodec.PlaneShape{}, headerErr(err)
	}
	paddedH, err := r.ReadInt32()
	if err != nil {
		return jpegcodec.PlaneShape{}, headerErr(err)
	}
	paddedW, err := r.ReadInt32()
	if err != nil {
		return jpegcodec.PlaneShape{}, headerErr(err)
	}
	return jpegcodec.PlaneShape{
		PreH: int(preH), PreW: int(preW),
		PaddedH: int(paddedH), PaddedW: int(paddedW),
	}, nil
}

func readDCTable(r *xdr.Reader) (*huffman.Table[huffman.DCSymbol], error) {
	n, err := r.ReadUint32()
	if err != nil {
		return nil, headerErr(err)
	}
	codes := make(map[huffman.DCSymbol]huffman.Code, n)
	for i := uint32(0); i < n; i++ {
		sym, err := r.ReadUint8()
		if err != nil {
			return nil, headerErr(err)
		}
		length, err := r.ReadUint8()
		if err != nil {
			return nil, headerErr(err)
		}
		bits, err := r.ReadUint32()
		if err != nil {
			return nil, headerErr(err)
		}
		codes[sym] = huffman.Code{Length: length, Bits: bits}
	}
	return huffman.NewTable(codes)
}

func readACTable(r *xdr.Reader) (*huffman.Table[huffman.ACSymbol], error) {
	n, err := r.ReadUint32()
	if err != nil {
		return nil, headerErr(err)
	}
	codes := make(map[huffman.ACSymbol]huffman.Code, n)
	for i := uint32(0); i < n; i++ {
		run, err := r.ReadUint8()
		if err != nil {
			return nil, headerErr(err)
		}
		size, err := r.ReadUint8()
		if err != nil {
			return nil, headerErr(err)
		}
		length, err := r.ReadUint8()
		if err != nil {
			return nil, headerErr(err)
		}
		bits, err := r.ReadUint32()
		if err != nil {
			return nil, headerErr(err)
		}
		codes[huffman.ACSymbol{Run: run, Size: size}] = huffman.Code{Length: length, Bits: bits}
	}
	return huffman.NewTable(codes)
}

func headerErr(err error) error {
	return fmt.Errorf("container: parsing header: %w: %w", codecerr.Truncated, err)
}
