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

// straightView is a perspective camera (vfov 40) on the +Z axis looking
// straight down -Z at the origin, used by the triangle and mesh test presets.
func straightView(width, height int, distance float64) *renderer.Camera {
	return defaultCamera(width, height, core.NewVec3(0, 0, distance), core.NewVec3(0, 0, 0), 40, 0, distance)
}

// triangleTest renders a handful of hand-specified triangles: a colored
// quad (two triangles sharing an edge) and two faces of a small tetrahedron, enough to
// exercise Möller–Trumbore intersection and front/back normal orientation
// without a mesh loader in the loop.
func triangleTest(width, height int, rnd *rand.Rand) *renderer.Scene {
	red := material.NewLambertian(core.NewVec3(0.8, 0.2, 0.2))
	blue := material.NewLambertian(core.NewVec3(0.2, 0.3, 0.8))

	objects := []core.Hittable{
		geometry.NewTriangle(core.NewVec3(-2, -1, 0), core.NewVec3(2, -1, 0), core.NewVec3(2, 1, 0), red),
		geometry.NewTriangle(core.NewVec3(-2, -1, 0), core.NewVec3(2, 1, 0), core.NewVec3(-2, 1, 0), red),
		geometry.NewTriangle(core.NewVec3(0, 1.5, 1), core.NewVec3(-1, 0, 1), core.NewVec3(1, 0, 1), blue),
		geometry.NewTriangle(core.NewVec3(0, 1.5, 1), core.NewVec3(1, 0, 1), core.NewVec3(0, 0.5, 2), blue),
	}

	world := bvhOf(objects, rnd)
	return &renderer.Scene{
		Camera:     straightView(width, height, 6),
		World:      world,
		Background: renderer.NewVerticalGradient(core.NewVec3(1, 1, 1), core.NewVec3(0.5, 0.7, 1.0)),
		Width:      width,
		Height:     height,
	}
}

// defaultMeshMaterial is applied to a loaded mesh when no material is
// otherwise specified — this system has no MTL-loading path, so every mesh
// uses this fallback.
func defaultMeshMaterial() core.Material {
	return material.NewLambertian(core.NewVec3(1.0, 0.0, 0.75))
}

// meshPath is the expected location of the Wavefront OBJ file rendered by
// the "mesh-test" preset. A missing or non-triangulated file is a fatal
// scene-load error.
const meshPath = "meshes/mesh-test.obj"

func meshTest(width, height int, rnd *rand.Rand) (*renderer.Scene, error) {
	raw, err := loaders.LoadOBJ(meshPath)
	if err != nil {
		return nil, fmt.Errorf("mesh-test scene: %w", err)
	}

	mesh := buildMesh(raw, defaultMeshMaterial())

	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))
	objects := []core.Hittable{
		mesh,
		geometry.NewSphere(core.NewVec3(0, 100, 0), 30, light),
	}

	world := bvhOf(objects, rnd)
	box, _ := mesh.BoundingBox()
	center := box.Center()
	radius := box.Size().Length()

	return &renderer.Scene{
		Camera:     straightView(width, height, radius*2+center.Z),
		World:      world,
		Background: renderer.NewVerticalGradient(core.NewVec3(1, 1, 1), core.NewVec3(0.5, 0.7, 1.0)),
		Width:      width,
		Height:     height,
	}, nil
}

// buildMesh converts a loaders.ObjMesh into a geometry.Mesh, assigning mat
// to every face and preferring smooth (interpolated) normals when the OBJ
// file provided per-vertex normals.
func buildMesh(raw *loaders.ObjMesh, mat core.Material) *geometry.Mesh {
	smooth := len(raw.Normals) > 0
	faces := make([]geometry.MeshFace, len(raw.Faces))
	for i, f := range raw.Faces {
		mf := geometry.MeshFace{
			V0: f.VIdx[0], V1: f.VIdx[1], V2: f.VIdx[2],
			MaterialIndex: 0,
			Smooth:        smooth,
		}
		if smooth {
			mf.N0, mf.N1, mf.N2 = f.NIdx[0], f.NIdx[1], f.NIdx[2]
		}
		if len(raw.UVs) > 0 {
			mf.UV0, mf.UV1, mf.UV2 = f.UVIdx[0], f.UVIdx[1], f.UVIdx[2]
		}
		faces[i] = mf
	}
	return geometry.NewMesh(raw.Positions, raw.Normals, raw.UVs, faces, []core.Material{mat})
}
