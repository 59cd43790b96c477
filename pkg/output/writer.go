// Package output encodes a linear-color pixel buffer to PPM (P3 ASCII) or
// PNG, both gamma-2 corrected and written top-to-bottom.
package output

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
)

// gammaCorrect maps a linear channel value to an 8-bit sRGB-ish value via
// gamma-2 encoding: int(sqrt(c).clamp(0,1) * 256).
func gammaCorrect(c float64) uint8 {
	if math.IsNaN(c) {
		c = 0
	}
	g := math.Sqrt(c)
	if g < 0 {
		g = 0
	}
	if g > 1 {
		g = 1
	}
	v := int(g * 256)
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// WritePPM writes pixels (row-major, row 0 = top) as P3 ASCII.
func WritePPM(w io.Writer, pixels []core.Vec3, width, height int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return err
	}
	for _, p := range pixels {
		r := gammaCorrect(p.X)
		g := gammaCorrect(p.Y)
		b := gammaCorrect(p.Z)
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WritePNG encodes pixels as an RGB8 PNG with the same gamma correction and
// row order as WritePPM.
func WritePNG(w io.Writer, pixels []core.Vec3, width, height int) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := pixels[y*width+x]
			img.Set(x, y, color.RGBA{
				R: gammaCorrect(p.X),
				G: gammaCorrect(p.Y),
				B: gammaCorrect(p.Z),
				A: 255,
			})
		}
	}
	return png.Encode(w, img)
}
