package transform

import "testing"

func TestZigzagInverseRoundTrip(t *testing.T) {
	var b IntBlock
	for i := range b {
		b[i] = int32(i*13 - 400)
	}
	v := Zigzag(b)
	back := InverseZigzag(v)
	if back != b {
		t.Errorf("InverseZigzag(Zigzag(b)) != b")
	}
}

func TestZigzagOrderStartsCorrectly(t *testing.T) {
	want := []int{0, 1, 8, 16, 9, 2, 3, 10}
	for i, w := range want {
		if zigzagOrder[i] != w {
			t.Errorf("zigzagOrder[%d] = %d, want %d", i, zigzagOrder[i], w)
		}
	}
}

func TestZigzagIsPermutation(t *testing.T) {
	seen := make(map[int]bool)
	for _, idx := range zigzagOrder {
		if idx < 0 || idx > 63 || seen[idx] {
			t.Fatalf("zigzagOrder is not a valid permutation at value %d", idx)
		}
		seen[idx] = true
	}
}
