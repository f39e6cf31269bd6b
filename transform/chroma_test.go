package transform

import "testing"

func flatPlane(h, w int, f func(r, c int) float32) []float32 {
	p := make([]float32, h*w)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			p[r*w+c] = f(r, c)
		}
	}
	return p
}

func TestSubsample444Identity(t *testing.T) {
	h, w := 4, 4
	planes := &ColorPlanes{
		Y:  flatPlane(h, w, func(r, c int) float32 { return float32(r*w + c) }),
		Cb: flatPlane(h, w, func(r, c int) float32 { return 100 }),
		Cr: flatPlane(h, w, func(r, c int) float32 { return 150 }),
		H:  h, W: w,
	}
	sub, err := Subsample(planes, Sampling444)
	if err != nil {
		t.Fatal(err)
	}
	if sub.ChromaH != h || sub.ChromaW != w {
		t.Fatalf("chroma dims = %dx%d, want %dx%d", sub.ChromaH, sub.ChromaW, h, w)
	}
	for i := range planes.Cb {
		if sub.Cb[i] != planes.Cb[i] {
			t.Errorf("Cb[%d] = %v, want %v", i, sub.Cb[i], planes.Cb[i])
		}
	}
}

func TestSubsample420RequiresEven(t *testing.T) {
	planes := &ColorPlanes{
		Y:  make([]float32, 9),
		Cb: make([]float32, 9),
		Cr: make([]float32, 9),
		H:  3, W: 3,
	}
	if _, err := Subsample(planes, Sampling420); err == nil {
		t.Fatal("expected InvalidShape error for odd dimensions")
	}
}

func TestSubsample420Decimation(t *testing.T) {
	h, w := 4, 4
	planes := &ColorPlanes{
		Y:  flatPlane(h, w, func(r, c int) float32 { return 0 }),
		Cb: flatPlane(h, w, func(r, c int) float32 { return float32(r*w + c) }),
		Cr: flatPlane(h, w, func(r, c int) float32 { return float32(r*w + c) }),
		H:  h, W: w,
	}
	sub, err := Subsample(planes, Sampling420)
	if err != nil {
		t.Fatal(err)
	}
	if sub.ChromaH != 2 || sub.ChromaW != 2 {
		t.Fatalf("chroma dims = %dx%d, want 2x2", sub.ChromaH, sub.ChromaW)
	}
	want := float32(0+1+4+5) / 4
	if sub.Cb[0] != want {
		t.Errorf("Cb[0] = %v, want %v", sub.Cb[0], want)
	}
}

func TestSubsampleUpsampleRoundTripShape(t *testing.T) {
	h, w := 6, 6
	planes := &ColorPlanes{
		Y:  flatPlane(h, w, func(r, c int) float32 { return float32(r + c) }),
		Cb: flatPlane(h, w, func(r, c int) float32 { return float32(r - c) }),
		Cr: flatPlane(h, w, func(r, c int) float32 { return float32(r * c) }),
		H:  h, W: w,
	}
	for _, mode := range []string{Sampling444, Sampling422, Sampling420} {
		sub, err := Subsample(planes, mode)
		if err != nil {
			t.Fatalf("%s: %v", mode, err)
		}
		back, err := Upsample(sub, h, w)
		if err != nil {
			t.Fatalf("%s: %v", mode, err)
		}
		if len(back.Y) != h*w || len(back.Cb) != h*w || len(back.Cr) != h*w {
			t.Errorf("%s: upsampled plane length mismatch", mode)
		}
	}
}

func TestInvalidSubsampleMode(t *testing.T) {
	planes := &ColorPlanes{Y: make([]float32, 4), Cb: make([]float32, 4), Cr: make([]float32, 4), H: 2, W: 2}
	if _, err := Subsample(planes, "4:1:1"); err == nil {
		t.Fatal("expected InvalidMode error")
	}
}
