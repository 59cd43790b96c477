package scene

import (
	"math/rand"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
	"github.com/halvorsen-dev/pathtracer/pkg/geometry"
	"github.com/halvorsen-dev/pathtracer/pkg/material"
	"github.com/halvorsen-dev/pathtracer/pkg/renderer"
)

// finalRender is the showcase scene combining most of the feature set: a
// floor grid of random-height boxes, a diffuse light, a moving sphere, a
// glass sphere, a metal sphere, a constant-density fog volume, a Perlin
// sphere, and a BVH-packed cluster of small lambertian spheres wrapped in a
// translated Instance.
func finalRender(width, height int, rnd *rand.Rand) *renderer.Scene {
	var objects []core.Hittable

	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	const boxesPerSide = 14
	var boxes []core.Hittable
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			w := 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y0 := 0.0
			x1 := x0 + w
			y1 := 1.0 + rnd.Float64()*100
			z1 := z0 + w
			boxes = append(boxes, geometry.NewBox(core.NewVec3(x0, y0, z0), core.NewVec3(x1, y1, z1), ground))
		}
	}
	objects = append(objects, bvhOf(boxes, rnd))

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	objects = append(objects, geometry.NewXZRect(light, 123, 423, 147, 412, 554))

	center1 := core.NewVec3(400, 400, 200)
	center2 := center1.Add(core.NewVec3(30, 0, 0))
	movingMat := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))
	objects = append(objects, geometry.NewMovingSphere(center1, center2, 0, 1, 50, movingMat))

	objects = append(objects, geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)))
	objects = append(objects, geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)))

	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	objects = append(objects, boundary)
	objects = append(objects, geometry.NewConstantMedium(boundary, 0.2, core.NewVec3(0.2, 0.4, 0.9)))
	fogBoundary := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	objects = append(objects, geometry.NewConstantMedium(fogBoundary, 0.0001, core.NewVec3(1, 1, 1)))

	earthImg, err := earthTextureOrNil()
	if err == nil {
		objects = append(objects, geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewLambertianTexture(material.NewImageTexture(earthImg))))
	} else {
		objects = append(objects, geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewLambertian(core.NewVec3(0.6, 0.6, 0.7))))
	}

	perlinMat := material.NewLambertianTexture(material.NewNoiseTexture(material.NewPerlin(rnd), 0.1))
	objects = append(objects, geometry.NewSphere(core.NewVec3(220, 280, 300), 80, perlinMat))

	var cluster []core.Hittable
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	for i := 0; i < 1000; i++ {
		cluster = append(cluster, geometry.NewSphere(core.RandomVec3(rnd, 0, 165), 10, white))
	}
	clusterInstance := geometry.NewInstance(bvhOf(cluster, rnd),
		geometry.RotateAngleAxis(15, core.NewVec3(0, 1, 0)).Compose(geometry.Translate(core.NewVec3(-100, 270, 395))))
	objects = append(objects, clusterInstance)

	world := bvhOf(objects, rnd)
	cam := defaultCamera(width, height, core.NewVec3(478, 278, -600), core.NewVec3(278, 278, 0), 40, 0, 10.0)

	return &renderer.Scene{
		Camera:     cam,
		World:      world,
		Background: renderer.NewSolidColorBackground(core.Vec3{}),
		Width:      width,
		Height:     height,
	}
}
