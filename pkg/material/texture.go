package material

import (
	"math"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
	"github.com/halvorsen-dev/pathtracer/pkg/loaders"
)

// Texture maps a surface parameterization to a color. Unlike Material this
// capability is deliberately open-world: callers may add new procedural
// textures, and several surfaces commonly share the same texture instance.
type Texture interface {
	Value(u, v float64, p core.Vec3) core.Vec3
}

// SolidColor is a constant-valued texture.
type SolidColor struct {
	Color core.Vec3
}

func NewSolidColor(c core.Vec3) *SolidColor { return &SolidColor{Color: c} }

func (s *SolidColor) Value(u, v float64, p core.Vec3) core.Vec3 { return s.Color }

// CheckerTexture alternates between two sub-textures based on the sign of
// sin(10x)*sin(10y)*sin(10z).
type CheckerTexture struct {
	Odd, Even Texture
}

func NewCheckerTexture(odd, even core.Vec3) *CheckerTexture {
	return &CheckerTexture{Odd: NewSolidColor(odd), Even: NewSolidColor(even)}
}

func (c *CheckerTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	sines := math.Sin(10*p.X) * math.Sin(10*p.Y) * math.Sin(10*p.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}

// NoiseTexture is a turbulent Perlin field rendered as a marbled pattern:
// 0.5*(1+sin(scale*p.z + 10*turbulence(p,7))).
type NoiseTexture struct {
	noise *Perlin
	scale float64
}

func NewNoiseTexture(noise *Perlin, scale float64) *NoiseTexture {
	return &NoiseTexture{noise: noise, scale: scale}
}

func (n *NoiseTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	c := 0.5 * (1 + math.Sin(n.scale*p.Z+10*n.noise.Turbulence(p, 7)))
	return core.NewVec3(c, c, c)
}

// ImageTexture samples a decoded raster image. (u,v) are clamped to [0,1]
// and v is flipped, since the image's origin is top-left but (u,v)=(0,0)
// conventionally maps to the bottom-left of a texture.
type ImageTexture struct {
	image *loaders.ImageData
}

func NewImageTexture(img *loaders.ImageData) *ImageTexture {
	return &ImageTexture{image: img}
}

func (t *ImageTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	if t.image == nil || t.image.Width <= 0 || t.image.Height <= 0 {
		return core.NewVec3(0, 1, 1) // cyan debug color for a missing texture
	}

	u = clamp01(u)
	v = 1.0 - clamp01(v)

	i := int(u * float64(t.image.Width))
	j := int(v * float64(t.image.Height))
	if i >= t.image.Width {
		i = t.image.Width - 1
	}
	if j >= t.image.Height {
		j = t.image.Height - 1
	}

	return t.image.Pixels[j*t.image.Width+i]
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
