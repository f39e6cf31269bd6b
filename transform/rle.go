package transform

import "github.com/mrjoshuak/go-jpegcodec/internal/codecerr"

// ACPair is a (run, value) symbol from the run-length coding of AC
// coefficients: run is the count of zeros preceding value, in [0,15].
// (15,0) is ZRL (a bare run of sixteen zeros); (0,0) is EOB.
type ACPair struct {
	Run   uint8
	Value int32
}

const (
	zrlRun = 15
	// eobRun is paired with value 0 to form the (0,0) end-of-block symbol.
	eobRun = 0
)

// IsEOB reports whether p is the (0,0) end-of-block symbol.
func (p ACPair) IsEOB() bool { return p.Run == eobRun && p.Value == 0 }

// IsZRL reports whether p is the (15,0) zero-run-length symbol.
func (p ACPair) IsZRL() bool { return p.Run == zrlRun && p.Value == 0 }

// EncodeAC run-length encodes the 63 AC coefficients of a zig-zag vector
// (v[1:64]) per the codec's RLE dialect: runs of 16 zeros become ZRL,
// a trailing zero run ends the sequence with EOB, and a block whose last
// coefficient is nonzero is emitted dense with no EOB.
func EncodeAC(v [64]int32) []ACPair {
	var pairs []ACPair
	zeroRun := 0
	for i := 1; i < 64; i++ {
		x := v[i]
		if x == 0 {
			zeroRun++
			continue
		}
		for zeroRun >= 16 {
			pairs = append(pairs, ACPair{Run: zrlRun, Value: 0})
			zeroRun -= 16
		}
		pairs = append(pairs, ACPair{Run: uint8(zeroRun), Value: x})
		zeroRun = 0
	}
	if zeroRun > 0 {
		pairs = append(pairs, ACPair{Run: eobRun, Value: 0})
	}
	return pairs
}

// DecodeAC expands a (run, value) pair sequence back into the 63 AC
// coefficients (zig-zag positions 1..63). Returns Overflow if the pairs
// describe more than 63 coefficients.
func DecodeAC(pairs []ACPair) ([63]int32, error) {
	var ac [63]int32
	pos := 0
	for _, p := range pairs {
		if p.IsEOB() {
			break
		}
		if p.IsZRL() {
			pos += 16
			if pos > 63 {
				return ac, codecerr.Overflow
			}
			continue
		}
		pos += int(p.Run)
		if pos > 62 {
			return ac, codecerr.Overflow
		}
		ac[pos] = p.Value
		pos++
	}
	return ac, nil
}
