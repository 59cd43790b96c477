package scene

import (
	"math/rand"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
	"github.com/halvorsen-dev/pathtracer/pkg/geometry"
	"github.com/halvorsen-dev/pathtracer/pkg/material"
	"github.com/halvorsen-dev/pathtracer/pkg/renderer"
)

// simpleLight places a DiffuseLight rectangle above a noise-textured ground
// and sphere, against a black background — the only light in the scene is
// the emissive rectangle.
func simpleLight(width, height int, rnd *rand.Rand) *renderer.Scene {
	noise := material.NewLambertianTexture(material.NewNoiseTexture(material.NewPerlin(rnd), 4))
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	objects := []core.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, noise),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, noise),
		geometry.NewXYRect(light, 3, 5, 1, 3, -2),
	}

	world := bvhOf(objects, rnd)
	cam := defaultCamera(width, height, core.NewVec3(26, 3, 6), core.NewVec3(0, 2, 0), 20, 0, 10.0)

	return &renderer.Scene{
		Camera:     cam,
		World:      world,
		Background: renderer.NewSolidColorBackground(core.Vec3{}),
		Width:      width,
		Height:     height,
	}
}

// cornellBox is the canonical test scene: a box of colored walls (red/green
// side walls, white floor/ceiling/back wall), an overhead rectangular light,
// and two blocks, each rotated about Y and translated, exercising
// Instance/Transform.
func cornellBox(width, height int, rnd *rand.Rand) *renderer.Scene {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	objects := cornellShell(red, white, green, light)

	box1 := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	inst1 := geometry.NewInstance(box1,
		geometry.RotateAngleAxis(15, core.NewVec3(0, 1, 0)).Compose(geometry.Translate(core.NewVec3(265, 0, 295))))
	objects = append(objects, inst1)

	box2 := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	inst2 := geometry.NewInstance(box2,
		geometry.RotateAngleAxis(-18, core.NewVec3(0, 1, 0)).Compose(geometry.Translate(core.NewVec3(130, 0, 65))))
	objects = append(objects, inst2)

	world := bvhOf(objects, rnd)
	cam := defaultCamera(width, height, core.NewVec3(278, 278, -800), core.NewVec3(278, 278, 0), 40, 0, 10.0)

	return &renderer.Scene{
		Camera:     cam,
		World:      world,
		Background: renderer.NewSolidColorBackground(core.Vec3{}),
		Width:      width,
		Height:     height,
	}
}

// cornellShell builds the five walls and the overhead light common to the
// cornell-box and cornell-smoke presets.
func cornellShell(red, white, green, light core.Material) []core.Hittable {
	return []core.Hittable{
		geometry.NewYZRect(green, 0, 555, 0, 555, 555),
		geometry.NewYZRect(red, 0, 555, 0, 555, 0),
		geometry.NewXZRect(light, 213, 343, 227, 332, 554),
		geometry.NewXZRect(white, 0, 555, 0, 555, 0),
		geometry.NewXZRect(white, 0, 555, 0, 555, 555),
		geometry.NewXYRect(white, 0, 555, 0, 555, 555),
	}
}

// cornellSmoke replaces the cornell box's two solid blocks with constant-
// density media (a dark and a light fog box), exercising ConstantMedium.
func cornellSmoke(width, height int, rnd *rand.Rand) *renderer.Scene {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))

	objects := cornellShell(red, white, green, light)

	box1 := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	inst1 := geometry.NewInstance(box1,
		geometry.RotateAngleAxis(15, core.NewVec3(0, 1, 0)).Compose(geometry.Translate(core.NewVec3(265, 0, 295))))
	objects = append(objects, geometry.NewConstantMedium(inst1, 0.01, core.NewVec3(0, 0, 0)))

	box2 := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	inst2 := geometry.NewInstance(box2,
		geometry.RotateAngleAxis(-18, core.NewVec3(0, 1, 0)).Compose(geometry.Translate(core.NewVec3(130, 0, 65))))
	objects = append(objects, geometry.NewConstantMedium(inst2, 0.01, core.NewVec3(1, 1, 1)))

	world := bvhOf(objects, rnd)
	cam := defaultCamera(width, height, core.NewVec3(278, 278, -800), core.NewVec3(278, 278, 0), 40, 0, 10.0)

	return &renderer.Scene{
		Camera:     cam,
		World:      world,
		Background: renderer.NewSolidColorBackground(core.Vec3{}),
		Width:      width,
		Height:     height,
	}
}
