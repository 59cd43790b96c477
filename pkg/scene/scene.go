// Package scene builds the eleven preset scenes the CLI can select by name.
// Each preset wires together geometry, materials, and a camera into a
// renderer.Scene; this package is the "external collaborator" the core
// rendering engine never reaches into directly.
package scene

import (
	"fmt"
	"math/rand"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
	"github.com/halvorsen-dev/pathtracer/pkg/geometry"
	"github.com/halvorsen-dev/pathtracer/pkg/renderer"
)

// Names lists the scene presets the CLI accepts, in the order documented.
var Names = []string{
	"jumping-balls", "two-spheres", "two-perlin-spheres", "earth",
	"simple-light", "cornell-box", "transform-test", "cornell-smoke",
	"final-render", "triangle-test", "mesh-test",
}

// Build constructs the named preset scene at the given raster resolution.
// rnd seeds both scene-construction randomness (sphere placement, BVH split
// axis) and is independent of the per-worker RNGs used during rendering.
func Build(name string, width, height int, rnd *rand.Rand) (*renderer.Scene, error) {
	switch name {
	case "jumping-balls":
		return jumpingBalls(width, height, rnd), nil
	case "two-spheres":
		return twoSpheres(width, height, rnd), nil
	case "two-perlin-spheres":
		return twoPerlinSpheres(width, height, rnd), nil
	case "earth":
		return earth(width, height, rnd)
	case "simple-light":
		return simpleLight(width, height, rnd), nil
	case "cornell-box":
		return cornellBox(width, height, rnd), nil
	case "transform-test":
		return transformTest(width, height, rnd), nil
	case "cornell-smoke":
		return cornellSmoke(width, height, rnd), nil
	case "final-render":
		return finalRender(width, height, rnd), nil
	case "triangle-test":
		return triangleTest(width, height, rnd), nil
	case "mesh-test":
		return meshTest(width, height, rnd)
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}
}

// bvhOf wraps a flat object list in a BVH, panicking (a fatal startup error
// per this system's error-handling policy) if any object lacks a bounding box.
func bvhOf(objects []core.Hittable, rnd *rand.Rand) core.Hittable {
	if len(objects) == 0 {
		return core.NewHittableList()
	}
	if len(objects) == 1 {
		return objects[0]
	}
	return geometry.NewBVH(objects, rnd)
}

func defaultCamera(width, height int, lookFrom, lookAt core.Vec3, vfov, aperture, focusDist float64) *renderer.Camera {
	cfg := renderer.CameraConfig{
		LookFrom:      lookFrom,
		LookAt:        lookAt,
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   float64(width) / float64(height),
		VFov:          vfov,
		Aperture:      aperture,
		FocusDistance: focusDist,
		Time0:         0,
		Time1:         1,
	}
	return renderer.NewCamera(cfg)
}
