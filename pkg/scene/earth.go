package scene

import (
	"fmt"
	"math/rand"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
	"github.com/halvorsen-dev/pathtracer/pkg/geometry"
	"github.com/halvorsen-dev/pathtracer/pkg/loaders"
	"github.com/halvorsen-dev/pathtracer/pkg/material"
	"github.com/halvorsen-dev/pathtracer/pkg/renderer"
)

// earthTexturePath is the expected location of the world map texture used
// by the "earth" preset. A missing file is a fatal scene-load error, per
// this system's error-handling policy.
const earthTexturePath = "textures/earthmap.jpg"

// earthTextureOrNil loads the earth texture for optional use by presets
// that decorate a sphere with it but do not require it (unlike the "earth"
// preset itself, for which a missing texture is fatal).
func earthTextureOrNil() (*loaders.ImageData, error) {
	return loaders.LoadImage(earthTexturePath)
}

func earth(width, height int, rnd *rand.Rand) (*renderer.Scene, error) {
	img, err := loaders.LoadImage(earthTexturePath)
	if err != nil {
		return nil, fmt.Errorf("earth scene: %w", err)
	}

	globe := material.NewLambertianTexture(material.NewImageTexture(img))
	world := geometry.NewSphere(core.NewVec3(0, 0, 0), 2, globe)
	cam := defaultCamera(width, height, core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), 20, 0, 10.0)

	return &renderer.Scene{
		Camera:     cam,
		World:      world,
		Background: renderer.NewVerticalGradient(core.NewVec3(1, 1, 1), core.NewVec3(0.5, 0.7, 1.0)),
		Width:      width,
		Height:     height,
	}, nil
}
