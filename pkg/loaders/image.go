// Package loaders decodes external scene assets: Wavefront OBJ meshes and
// raster images for image textures.
package loaders

import (
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder, for texture files exported from older DCC tools
	_ "golang.org/x/image/tiff" // TIFF decoder, for HDR-adjacent texture sources

	"github.com/halvorsen-dev/pathtracer/pkg/core"
)

// ImageData is a decoded raster image as a row-major array of linear-scale
// RGB colors, row 0 at the top, ready for ImageTexture lookup.
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// LoadImage decodes any image format registered with image.Decode (PNG,
// JPEG, GIF, BMP, TIFF) into an ImageData. A missing or undecodable file is
// a fatal scene-load error surfaced to the caller.
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}

	bounds := img.Bounds()
	data := &ImageData{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}
	data.Pixels = make([]core.Vec3, data.Width*data.Height)

	for y := 0; y < data.Height; y++ {
		for x := 0; x < data.Width; x++ {
			// RGBA returns alpha-premultiplied uint32 channels in [0, 65535].
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			data.Pixels[y*data.Width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return data, nil
}
