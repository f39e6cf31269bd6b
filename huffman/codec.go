package huffman

import (
	"github.com/mrjoshuak/go-jpegcodec/internal/bitio"
	"github.com/mrjoshuak/go-jpegcodec/internal/codecerr"
	"github.com/mrjoshuak/go-jpegcodec/transform"
)

// EncodedBlock is one 8x8 block's differential-DC value and run-length
// coded AC coefficients, ready for Huffman entropy coding.
type EncodedBlock struct {
	DCDiff int32
	AC     []transform.ACPair
}

// BuildFrequencies tallies DC size-category and AC (run,size) symbol
// frequencies across every block (all channels, concatenated in the
// stream's Y/Cb/Cr order), seeding EOB (0,0) and ZRL (15,0) with at least
// one occurrence so their codes always exist.
func BuildFrequencies(blocks []EncodedBlock) (map[DCSymbol]int, map[ACSymbol]int) {
	dcFreq := make(map[DCSymbol]int)
	acFreq := make(map[ACSymbol]int)
	acFreq[ACSymbol{Run: 0, Size: 0}] = 1
	acFreq[ACSymbol{Run: 15, Size: 0}] = 1

	for _, b := range blocks {
		dcFreq[SizeCategory(b.DCDiff)]++
		for _, p := range b.AC {
			acFreq[ACSymbol{Run: p.Run, Size: SizeCategory(p.Value)}]++
		}
	}
	return dcFreq, acFreq
}

// BuildTables constructs the per-image DC and AC canonical Huffman tables
// from a block set.
func BuildTables(blocks []EncodedBlock) (dcTable *Table[DCSymbol], acTable *Table[ACSymbol], err error) {
	dcFreq, acFreq := BuildFrequencies(blocks)
	dcTable, err = BuildCanonical(dcFreq, dcSymbolOrder)
	if err != nil {
		return nil, nil, err
	}
	acTable, err = BuildCanonical(acFreq, acSymbolOrder)
	if err != nil {
		return nil, nil, err
	}
	return dcTable, acTable, nil
}

// EncodeStream packs every block's DC and AC symbols into a single
// MSB-first bitstream, Luma blocks first in raster order, then Cb, then
// Cr (the caller is responsible for ordering blocks that way).
func EncodeStream(blocks []EncodedBlock, dcTable *Table[DCSymbol], acTable *Table[ACSymbol]) ([]byte, int, error) {
	w := bitio.NewWriter()
	for _, b := range blocks {
		size := SizeCategory(b.DCDiff)
		code, ok := dcTable.Encode(size)
		if !ok {
			return nil, 0, codecerr.InconsistentArtifact
		}
		w.WriteBits(code.Bits, uint(code.Length))
		if size > 0 {
			w.WriteBits(EncodeAmplitude(b.DCDiff, size), uint(size))
		}

		for _, p := range b.AC {
			sym := ACSymbol{Run: p.Run, Size: SizeCategory(p.Value)}
			code, ok := acTable.Encode(sym)
			if !ok {
				return nil, 0, codecerr.InconsistentArtifact
			}
			w.WriteBits(code.Bits, uint(code.Length))
			if sym.Size > 0 {
				w.WriteBits(EncodeAmplitude(p.Value, sym.Size), uint(sym.Size))
			}
		}
	}
	return w.Bytes(), w.Bits(), nil
}

// DecodeStream parses blockCount blocks back out of an MSB-first
// bitstream of exactly totalBits valid bits.
func DecodeStream(data []byte, totalBits int, dcTable *Table[DCSymbol], acTable *Table[ACSymbol], blockCount int) ([]EncodedBlock, error) {
	r := bitio.NewReader(data, totalBits)
	blocks := make([]EncodedBlock, blockCount)

	for i := 0; i < blockCount; i++ {
		dcSize, err := dcTable.Decode(r)
		if err != nil {
			return nil, err
		}
		var dcDiff int32
		if dcSize > 0 {
			raw, err := r.ReadBits(uint(dcSize))
			if err != nil {
				return nil, codecerr.Truncated
			}
			dcDiff = DecodeAmplitude(raw, dcSize)
		}

		var ac []transform.ACPair
		pos := 0
		for pos < 63 {
			sym, err := acTable.Decode(r)
			if err != nil {
				return nil, err
			}
			if sym.Run == 0 && sym.Size == 0 {
				ac = append(ac, transform.ACPair{Run: 0, Value: 0})
				break
			}
			if sym.Run == 15 && sym.Size == 0 {
				ac = append(ac, transform.ACPair{Run: 15, Value: 0})
				pos += 16
				if pos > 63 {
					return nil, codecerr.Overflow
				}
				continue
			}
			raw, err := r.ReadBits(uint(sym.Size))
			if err != nil {
				return nil, codecerr.Truncated
			}
			value := DecodeAmplitude(raw, sym.Size)
			ac = append(ac, transform.ACPair{Run: sym.Run, Value: value})
			pos += int(sym.Run) + 1
			if pos > 63 {
				return nil, codecerr.Overflow
			}
		}

		blocks[i] = EncodedBlock{DCDiff: dcDiff, AC: ac}
	}
	return blocks, nil
}
