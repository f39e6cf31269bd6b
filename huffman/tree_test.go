package huffman

import "testing"

func TestBuildCanonicalSingleSymbolGetsOneBitCode(t *testing.T) {
	freqs := map[DCSymbol]int{3: 10}
	table, err := BuildCanonical(freqs, dcSymbolOrder)
	if err != nil {
		t.Fatal(err)
	}
	code, ok := table.Encode(DCSymbol(3))
	if !ok {
		t.Fatal("symbol 3 not found")
	}
	if code.Length != 1 || code.Bits != 0 {
		t.Errorf("code = %+v, want {Length:1 Bits:0}", code)
	}
}

func TestBuildCanonicalIsPrefixFree(t *testing.T) {
	freqs := map[DCSymbol]int{0: 50, 1: 30, 2: 10, 3: 5, 4: 2, 5: 1}
	table, err := BuildCanonical(freqs, dcSymbolOrder)
	if err != nil {
		t.Fatal(err)
	}

	type cw struct {
		length uint8
		bits   uint32
	}
	var codes []cw
	for sym := range freqs {
		c, ok := table.Encode(sym)
		if !ok {
			t.Fatalf("symbol %v missing", sym)
		}
		codes = append(codes, cw{c.Length, c.Bits})
	}
	for i := range codes {
		for j := range codes {
			if i == j {
				continue
			}
			a, b := codes[i], codes[j]
			if a.length > b.length {
				continue
			}
			// a is not longer than b; a must not be a prefix of b.
			shift := b.length - a.length
			if (b.bits >> shift) == a.bits {
				t.Errorf("code %v is a prefix of %v", a, b)
			}
		}
	}
}

func TestBuildCanonicalDeterministic(t *testing.T) {
	freqs := map[DCSymbol]int{0: 7, 1: 7, 2: 3, 3: 3, 4: 1}
	t1, err := BuildCanonical(freqs, dcSymbolOrder)
	if err != nil {
		t.Fatal(err)
	}
	t2, err := BuildCanonical(freqs, dcSymbolOrder)
	if err != nil {
		t.Fatal(err)
	}
	for sym := range freqs {
		c1, _ := t1.Encode(sym)
		c2, _ := t2.Encode(sym)
		if c1 != c2 {
			t.Errorf("symbol %v: %+v != %+v across identical builds", sym, c1, c2)
		}
	}
}

func TestBuildCanonicalFrequentSymbolNotLonger(t *testing.T) {
	freqs := map[DCSymbol]int{0: 1, 1: 1, 2: 2, 3: 3, 4: 5, 5: 8}
	table, err := BuildCanonical(freqs, dcSymbolOrder)
	if err != nil {
		t.Fatal(err)
	}
	// Higher frequency symbols should not get strictly longer codes than
	// lower frequency ones (a basic Huffman sanity property).
	c4, _ := table.Encode(DCSymbol(4))
	c0, _ := table.Encode(DCSymbol(0))
	if c4.Length > c0.Length {
		t.Errorf("higher-frequency symbol 4 (len %d) longer than rarer symbol 0 (len %d)", c4.Length, c0.Length)
	}
}
