package exposure

import (
	"bufio"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// AddImage counts every pixel of an already decoded image.
//
// Colors are normalized to 8-bit, non-premultiplied channels before the
// luminance is computed, so any color model (RGBA, NRGBA, YCbCr, Gray, ...)
// can be used. Fully transparent pixels carry no color and are skipped.
//
// Returns the number of pixels counted.
func (h *Histogram) AddImage(img image.Image) int {
	bounds := img.Bounds()
	added := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				continue
			}
			r, g, b := c.RGB255()
			// 8-bit channels always land in [0, 255]
			h.counts[Luminance(Pixel{B: int(b), G: int(g), R: int(r)})]++
			added++
		}
	}

	return added
}

// WritePixels encodes img in the text form read by Histogram.IngestReader: one
// line per image row, each pixel written as a "B,G,R" token separated by single
// spaces. Fully transparent pixels are omitted, matching AddImage.
func WritePixels(w io.Writer, img image.Image) error {
	src := imaging.Clone(img)
	bounds := src.Bounds()
	bw := bufio.NewWriter(w)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		first := true
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			i := src.PixOffset(x, y)
			if src.Pix[i+3] == 0 {
				continue
			}
			if !first {
				if err := bw.WriteByte(' '); err != nil {
					return fmt.Errorf("failed to write pixels: %w", err)
				}
			}
			first = false

			p := Pixel{R: int(src.Pix[i]), G: int(src.Pix[i+1]), B: int(src.Pix[i+2])}
			if _, err := bw.WriteString(p.String()); err != nil {
				return fmt.Errorf("failed to write pixels: %w", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write pixels: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write pixels: %w", err)
	}
	return nil
}
