// jpegcodecinfo encodes a PNG image through the codec and reports the
// resulting compression statistics, optionally writing the serialized
// artifact to disk.
//
// Usage:
//
//	jpegcodecinfo [options] input.png [output.jcc]
//
// Options:
//
//	-q <n>        quality factor, 1-100 (default 85)
//	-s <mode>     chroma subsampling: 4:4:4, 4:2:2, 4:2:0 (default 4:2:0)
//	-v            verbose output
//	-version      show version information
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/mrjoshuak/go-jpegcodec/container"
	"github.com/mrjoshuak/go-jpegcodec/jpegcodec"
	"github.com/mrjoshuak/go-jpegcodec/transform"
)

const version = "1.0.0"

func main() {
	quality := flag.Int("q", 85, "quality factor, 1-100")
	mode := flag.String("s", transform.Sampling420, "chroma subsampling: 4:4:4, 4:2:2, 4:2:0")
	verbose := flag.Bool("v", false, "verbose output")
	showVersion := flag.Bool("version", false, "show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: jpegcodecinfo [options] input.png [output.jcc]\n\n")
		fmt.Fprintf(os.Stderr, "Encode a PNG through the codec and report compression statistics.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("jpegcodecinfo version %s\n", version)
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(args, *quality, *mode, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "jpegcodecinfo: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, quality int, mode string, verbose bool) error {
	img, err := loadImage(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	if verbose {
		fmt.Printf("input:       %s (%dx%d, %d channels)\n", args[0], img.Shape.Height, img.Shape.Width, img.Shape.Channels)
		fmt.Printf("quality:     %d\n", quality)
		if img.Shape.Channels == 3 {
			fmt.Printf("subsampling: %s\n", mode)
		}
	}

	artifact, err := jpegcodec.Encode(img, quality, mode)
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	blob, err := container.Marshal(artifact)
	if err != nil {
		return fmt.Errorf("serializing artifact: %w", err)
	}

	rawSize := len(img.Pix)
	ratio := float64(rawSize) / float64(len(blob))
	fmt.Printf("raw bytes:        %d\n", rawSize)
	fmt.Printf("compressed bytes: %d\n", len(blob))
	fmt.Printf("ratio:            %.2fx\n", ratio)
	fmt.Printf("entropy bits:     %d (%d bytes payload)\n", artifact.TotalBits, len(artifact.Bytes))

	if len(args) < 2 {
		return nil
	}
	if err := os.WriteFile(args[1], blob, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", args[1], err)
	}
	if verbose {
		fmt.Printf("wrote:            %s\n", args[1])
	}
	return nil
}

func loadImage(path string) (*jpegcodec.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	h, w := bounds.Dy(), bounds.Dx()

	if isGray(src) {
		pix := make([]uint8, h*w)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				r, _, _, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				pix[y*w+x] = uint8(r >> 8)
			}
		}
		return &jpegcodec.Image{Shape: jpegcodec.Shape{Height: h, Width: w, Channels: 1}, Pix: pix}, nil
	}

	pix := make([]uint8, h*w*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := (y*w + x) * 3
			pix[i+0] = uint8(r >> 8)
			pix[i+1] = uint8(g >> 8)
			pix[i+2] = uint8(b >> 8)
		}
	}
	return &jpegcodec.Image{Shape: jpegcodec.Shape{Height: h, Width: w, Channels: 3}, Pix: pix}, nil
}

func isGray(img image.Image) bool {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return true
	default:
		return false
	}
}
