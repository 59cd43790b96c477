package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
)

func TestCameraGetRayDefault(t *testing.T) {
	cfg := CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   16.0 / 9.0,
		VFov:          90,
		FocusDistance: 1.0,
	}
	cam := NewCamera(cfg)
	rnd := rand.New(rand.NewSource(1))

	ray := cam.GetRay(rnd, 0.5, 0.5)
	if !ray.Origin.Equals(core.NewVec3(0, 0, 0)) {
		t.Errorf("center ray should originate at look_from, got %v", ray.Origin)
	}
	dir := ray.Direction.Normalize()
	if math.Abs(dir.X) > 1e-9 || math.Abs(dir.Y) > 1e-9 {
		t.Errorf("center ray should point straight down -Z, got %v", dir)
	}
}

func TestCameraGetRayShutterTime(t *testing.T) {
	cfg := CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   1.0,
		VFov:          90,
		FocusDistance: 1.0,
		Time0:         1.0,
		Time1:         2.0,
	}
	cam := NewCamera(cfg)
	rnd := rand.New(rand.NewSource(7))

	for i := 0; i < 20; i++ {
		ray := cam.GetRay(rnd, 0.5, 0.5)
		if ray.Time < 1.0 || ray.Time > 2.0 {
			t.Fatalf("ray time %f outside shutter interval [1,2]", ray.Time)
		}
	}
}

func TestCameraApertureJitter(t *testing.T) {
	cfg := CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   1.0,
		VFov:          90,
		Aperture:      2.0,
		FocusDistance: 1.0,
	}
	cam := NewCamera(cfg)
	rnd := rand.New(rand.NewSource(3))

	sameOrigin := true
	first := cam.GetRay(rnd, 0.5, 0.5).Origin
	for i := 0; i < 10; i++ {
		r := cam.GetRay(rnd, 0.5, 0.5)
		if !r.Origin.Equals(first) {
			sameOrigin = false
		}
	}
	if sameOrigin {
		t.Error("expected lens jitter to vary ray origin across samples with nonzero aperture")
	}
}
