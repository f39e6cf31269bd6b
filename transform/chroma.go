package transform

// Subsampling modes accepted by Subsample/Upsample.
const (
	Sampling444 = "4:4:4"
	Sampling422 = "4:2:2"
	Sampling420 = "4:2:0"
)

// SubsampledPlanes holds a luma plane at full resolution and chroma planes
// possibly decimated per the subsampling mode.
type SubsampledPlanes struct {
	Mode             string
	Y                []float32
	YH, YW           int
	Cb, Cr           []float32
	ChromaH, ChromaW int
}

func validMode(mode string) bool {
	switch mode {
	case Sampling444, Sampling422, Sampling420:
		return true
	}
	return false
}

// Subsample decimates the Cb/Cr planes of ycbcr according to mode. 4:4:4 is
// the identity. 4:2:2 averages horizontally-adjacent pairs. 4:2:0 averages
// 2x2 blocks and requires even H and W.
func Subsample(ycbcr *ColorPlanes, mode string) (*SubsampledPlanes, error) {
	if !validMode(mode) {
		return nil, errMode("Subsample: unknown mode %q", mode)
	}
	h, w := ycbcr.H, ycbcr.W

	out := &SubsampledPlanes{Mode: mode, Y: ycbcr.Y, YH: h, YW: w}

	switch mode {
	case Sampling444:
		out.Cb = append([]float32(nil), ycbcr.Cb...)
		out.Cr = append([]float32(nil), ycbcr.Cr...)
		out.ChromaH, out.ChromaW = h, w

	case Sampling422:
		cw := (w + 1) / 2
		out.Cb = decimateHorizontal(ycbcr.Cb, h, w, cw)
		out.Cr = decimateHorizontal(ycbcr.Cr, h, w, cw)
		out.ChromaH, out.ChromaW = h, cw

	case Sampling420:
		if h%2 != 0 || w%2 != 0 {
			return nil, errShape("Subsample: 4:2:0 requires even dimensions, got %dx%d", h, w)
		}
		ch, cw := h/2, w/2
		out.Cb = decimate2x2(ycbcr.Cb, h, w)
		out.Cr = decimate2x2(ycbcr.Cr, h, w)
		out.ChromaH, out.ChromaW = ch, cw
	}
	return out, nil
}

func decimateHorizontal(plane []float32, h, w, cw int) []float32 {
	out := make([]float32, h*cw)
	for row := 0; row < h; row++ {
		in := plane[row*w : row*w+w]
		dst := out[row*cw : row*cw+cw]
		for c := 0; c < cw; c++ {
			x0 := c * 2
			if x0+1 < w {
				dst[c] = (in[x0] + in[x0+1]) / 2
			} else {
				dst[c] = in[x0]
			}
		}
	}
	return out
}

func decimate2x2(plane []float32, h, w int) []float32 {
	ch, cw := h/2, w/2
	out := make([]float32, ch*cw)
	for r := 0; r < ch; r++ {
		row0 := plane[(2*r)*w : (2*r)*w+w]
		row1 := plane[(2*r+1)*w : (2*r+1)*w+w]
		dst := out[r*cw : r*cw+cw]
		for c := 0; c < cw; c++ {
			x0 := c * 2
			dst[c] = (row0[x0] + row0[x0+1] + row1[x0] + row1[x0+1]) / 4
		}
	}
	return out
}

// Upsample reconstructs full-resolution YCbCr planes from a SubsampledPlanes
// via nearest-neighbor replication, cropped to (targetH, targetW).
func Upsample(p *SubsampledPlanes, targetH, targetW int) (*ColorPlanes, error) {
	if !validMode(p.Mode) {
		return nil, errMode("Upsample: unknown mode %q", p.Mode)
	}

	out := newColorPlanes(targetH, targetW)
	copyCropped(out.Y, p.Y, p.YH, p.YW, targetH, targetW)

	var xScale, yScale int
	switch p.Mode {
	case Sampling444:
		xScale, yScale = 1, 1
	case Sampling422:
		xScale, yScale = 2, 1
	case Sampling420:
		xScale, yScale = 2, 2
	}
	replicate(out.Cb, p.Cb, p.ChromaH, p.ChromaW, targetH, targetW, yScale, xScale)
	replicate(out.Cr, p.Cr, p.ChromaH, p.ChromaW, targetH, targetW, yScale, xScale)
	return out, nil
}

func copyCropped(dst, src []float32, srcH, srcW, targetH, targetW int) {
	for r := 0; r < targetH; r++ {
		sr := r
		if sr >= srcH {
			sr = srcH - 1
		}
		for c := 0; c < targetW; c++ {
			sc := c
			if sc >= srcW {
				sc = srcW - 1
			}
			dst[r*targetW+c] = src[sr*srcW+sc]
		}
	}
}

func replicate(dst, src []float32, srcH, srcW, targetH, targetW, yScale, xScale int) {
	for r := 0; r < targetH; r++ {
		sr := r / yScale
		if sr >= srcH {
			sr = srcH - 1
		}
		for c := 0; c < targetW; c++ {
			sc := c / xScale
			if sc >= srcW {
				sc = srcW - 1
			}
			dst[r*targetW+c] = src[sr*srcW+sc]
		}
	}
}
