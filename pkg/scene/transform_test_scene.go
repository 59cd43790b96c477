package scene

import (
	"math/rand"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
	"github.com/halvorsen-dev/pathtracer/pkg/geometry"
	"github.com/halvorsen-dev/pathtracer/pkg/material"
	"github.com/halvorsen-dev/pathtracer/pkg/renderer"
)

// transformTest exercises Instance/Transform directly: a row of identical
// boxes, each composed of a translate and an increasing rotation, so any
// regression in transform composition or normal transformation is visible
// as a misaligned or incorrectly shaded box.
func transformTest(width, height int, rnd *rand.Rand) *renderer.Scene {
	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	boxMat := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))

	objects := []core.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground),
	}

	for i := 0; i < 5; i++ {
		angle := float64(i) * 18.0
		box := geometry.NewBox(core.NewVec3(-0.5, 0, -0.5), core.NewVec3(0.5, 1.5, 0.5), boxMat)
		t := geometry.RotateAngleAxis(angle, core.NewVec3(0, 1, 0)).
			Compose(geometry.Translate(core.NewVec3(float64(i)*3-6, 0, 0)))
		objects = append(objects, geometry.NewInstance(box, t))
	}

	world := bvhOf(objects, rnd)
	cam := defaultCamera(width, height, core.NewVec3(0, 3, 14), core.NewVec3(0, 1, 0), 35, 0, 10.0)

	return &renderer.Scene{
		Camera:     cam,
		World:      world,
		Background: renderer.NewVerticalGradient(core.NewVec3(1, 1, 1), core.NewVec3(0.5, 0.7, 1.0)),
		Width:      width,
		Height:     height,
	}
}
