package huffman

import (
	"fmt"
	"sort"

	"github.com/mrjoshuak/go-jpegcodec/internal/codecerr"
)

// Table is a canonical Huffman code table over symbol type S, with both
// the encode direction (symbol -> code) and a decode trie keyed by
// (length, bits).
type Table[S comparable] struct {
	codes  map[S]Code
	byLen  map[uint8]map[uint32]S
	maxLen uint8
}

// NewTable builds a Table directly from a symbol->Code assignment, e.g.
// one just deserialized from a stored artifact, skipping the frequency
// analysis BuildCanonical performs. Returns an error if two symbols share
// the same (length,bits) code; a code that is a proper prefix of another
// is not detected.
func NewTable[S comparable](codes map[S]Code) (*Table[S], error) {
	t := &Table[S]{codes: make(map[S]Code, len(codes))}
	for sym, c := range codes {
		t.codes[sym] = c
	}
	if err := buildDecodeTable(t); err != nil {
		return nil, err
	}
	return t, nil
}

func buildDecodeTable[S comparable](t *Table[S]) error {
	t.byLen = make(map[uint8]map[uint32]S)
	for sym, code := range t.codes {
		if code.Length > t.maxLen {
			t.maxLen = code.Length
		}
		m, ok := t.byLen[code.Length]
		if !ok {
			m = make(map[uint32]S)
			t.byLen[code.Length] = m
		}
		if existing, dup := m[code.Bits]; dup {
			return fmt.Errorf("huffman: duplicate code for symbols %v and %v", existing, sym)
		}
		m[code.Bits] = sym
	}
	return nil
}

// Encode returns the code assigned to sym, or ok=false if sym was never
// seeded into the frequency table.
func (t *Table[S]) Encode(sym S) (Code, bool) {
	c, ok := t.codes[sym]
	return c, ok
}

// MaxLength returns the longest codeword length in the table.
func (t *Table[S]) MaxLength() uint8 {
	return t.maxLen
}

// Len returns the number of distinct symbols in the table.
func (t *Table[S]) Len() int {
	return len(t.codes)
}

// Symbols returns the table's symbols in an arbitrary but stable order
// (sorted by code length then bit pattern), for serialization.
func (t *Table[S]) Symbols() []S {
	syms := make([]S, 0, len(t.codes))
	for s := range t.codes {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool {
		ci, cj := t.codes[syms[i]], t.codes[syms[j]]
		if ci.Length != cj.Length {
			return ci.Length < cj.Length
		}
		return ci.Bits < cj.Bits
	})
	return syms
}

// bitReader is the minimal surface codec.go's decoder needs; defined here
// so Table.Decode doesn't import bitio directly (kept symbol-generic).
type bitReader interface {
	PeekBits(n uint) (value uint32, avail uint)
	SkipBits(n uint) error
}

// Decode matches the shortest code in the table that is a prefix of the
// bits at the reader's current position (for a prefix-free table, the only
// one) and consumes it, returning the decoded symbol. UnknownCode is returned if no prefix within the table's max
// code length matches; Truncated if the stream runs out first.
func (t *Table[S]) Decode(r bitReader) (S, error) {
	var zero S
	for length := uint8(1); length <= t.maxLen; length++ {
		bits, avail := r.PeekBits(uint(length))
		if avail < uint(length) {
			return zero, codecerr.Truncated
		}
		if m, ok := t.byLen[length]; ok {
			if sym, ok := m[bits]; ok {
				_ = r.SkipBits(uint(length))
				return sym, nil
			}
		}
	}
	return zero, codecerr.UnknownCode
}
