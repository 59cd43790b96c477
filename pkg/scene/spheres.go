package scene

import (
	"math/rand"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
	"github.com/halvorsen-dev/pathtracer/pkg/geometry"
	"github.com/halvorsen-dev/pathtracer/pkg/material"
	"github.com/halvorsen-dev/pathtracer/pkg/renderer"
)

// jumpingBalls is the classic "random scene": a ground plane and a field of
// small random spheres (some given vertical motion, hence the name) around
// three large showcase spheres (glass, lambertian, metal).
func jumpingBalls(width, height int, rnd *rand.Rand) *renderer.Scene {
	var objects []core.Hittable

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	objects = append(objects, geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := rnd.Float64()
			center := core.NewVec3(float64(a)+0.9*rnd.Float64(), 0.2, float64(b)+0.9*rnd.Float64())
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(rnd, 0, 1).MultiplyVec(core.RandomVec3(rnd, 0, 1))
				mat := material.NewLambertian(albedo)
				center2 := center.Add(core.NewVec3(0, rnd.Float64()*0.5, 0))
				objects = append(objects, geometry.NewMovingSphere(center, center2, 0, 1, 0.2, mat))
			case chooseMat < 0.95:
				albedo := core.RandomVec3(rnd, 0.5, 1)
				fuzz := 0.5 * rnd.Float64()
				mat := material.NewMetal(albedo, fuzz)
				objects = append(objects, geometry.NewSphere(center, 0.2, mat))
			default:
				mat := material.NewDielectric(1.5)
				objects = append(objects, geometry.NewSphere(center, 0.2, mat))
			}
		}
	}

	objects = append(objects, geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	objects = append(objects, geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	objects = append(objects, geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	world := bvhOf(objects, rnd)
	cam := defaultCamera(width, height, core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), 20, 0.1, 10.0)

	return &renderer.Scene{
		Camera:     cam,
		World:      world,
		Background: renderer.NewVerticalGradient(core.NewVec3(1, 1, 1), core.NewVec3(0.5, 0.7, 1.0)),
		Width:      width,
		Height:     height,
	}
}

// twoSpheres stacks two large checker-textured spheres to exercise the
// Checker texture without any small-sphere clutter.
func twoSpheres(width, height int, rnd *rand.Rand) *renderer.Scene {
	checker := material.NewLambertianTexture(material.NewCheckerTexture(
		core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))

	objects := []core.Hittable{
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	}

	world := bvhOf(objects, rnd)
	cam := defaultCamera(width, height, core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), 20, 0, 10.0)

	return &renderer.Scene{
		Camera:     cam,
		World:      world,
		Background: renderer.NewVerticalGradient(core.NewVec3(1, 1, 1), core.NewVec3(0.5, 0.7, 1.0)),
		Width:      width,
		Height:     height,
	}
}

// twoPerlinSpheres exercises the turbulent Perlin NoiseTexture on a ground
// plane and a showcase sphere.
func twoPerlinSpheres(width, height int, rnd *rand.Rand) *renderer.Scene {
	noise := material.NewLambertianTexture(material.NewNoiseTexture(material.NewPerlin(rnd), 4))

	objects := []core.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, noise),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, noise),
	}

	world := bvhOf(objects, rnd)
	cam := defaultCamera(width, height, core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), 20, 0, 10.0)

	return &renderer.Scene{
		Camera:     cam,
		World:      world,
		Background: renderer.NewVerticalGradient(core.NewVec3(1, 1, 1), core.NewVec3(0.5, 0.7, 1.0)),
		Width:      width,
		Height:     height,
	}
}
