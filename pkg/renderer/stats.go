package renderer

import "github.com/halvorsen-dev/pathtracer/pkg/core"

// RenderStats summarizes a completed render for diagnostic logging.
type RenderStats struct {
	Width, Height   int
	SamplesPerPixel int
	JobsPerTile     int
	TileCount       int
	Strategy        Strategy
}

// Framebuffer is the coordinator-owned pixel accumulator. Workers never
// touch it directly; they publish row contributions over a channel and the
// coordinator sums them in. Index 0 is the top-left pixel, row-major,
// matching PPM/PNG's top-to-bottom row order.
type Framebuffer struct {
	Width, Height int
	sums          []core.Vec3
}

func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{Width: width, Height: height, sums: make([]core.Vec3, width*height)}
}

func (f *Framebuffer) index(x, y int) int { return y*f.Width + x }

// Add accumulates a color contribution at (x,y). Contributions are
// commutative and associative, so callers may add them in any order.
func (f *Framebuffer) Add(x, y int, c core.Vec3) {
	i := f.index(x, y)
	f.sums[i] = f.sums[i].Add(c)
}

// Finalize divides every accumulated sum by jobsPerTile, the fan-out factor
// used to produce it, and returns the resulting linear-color pixel buffer.
func (f *Framebuffer) Finalize(jobsPerTile int) []core.Vec3 {
	out := make([]core.Vec3, len(f.sums))
	inv := 1.0 / float64(jobsPerTile)
	for i, s := range f.sums {
		out[i] = s.Multiply(inv)
	}
	return out
}
