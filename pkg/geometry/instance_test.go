package geometry

import (
	"math"
	"testing"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
	"github.com/halvorsen-dev/pathtracer/pkg/material"
)

func TestInstanceTranslatedSphereHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, material.NewLambertian(core.NewVec3(1, 1, 1)))
	inst := NewInstance(sphere, Translate(core.NewVec3(10, 0, 0)))

	r := core.NewRay(core.NewVec3(10, 0, -5), core.NewVec3(0, 0, 1))
	rec, ok := inst.Hit(r, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected ray through translated sphere to hit")
	}
	if math.Abs(rec.P.X-10) > 1e-6 {
		t.Errorf("expected hit point near x=10, got %v", rec.P)
	}
}

func TestInstanceMissesOutsideTranslatedBounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, material.NewLambertian(core.NewVec3(1, 1, 1)))
	inst := NewInstance(sphere, Translate(core.NewVec3(10, 0, 0)))

	r := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	if _, ok := inst.Hit(r, 0.001, math.Inf(1)); ok {
		t.Error("expected ray at the untranslated origin to miss the instance")
	}
}

func TestInstanceBoundingBoxEnclosesTransformedCorners(t *testing.T) {
	box := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), material.NewLambertian(core.NewVec3(1, 1, 1)))
	inst := NewInstance(box, RotateAngleAxis(45, core.NewVec3(0, 1, 0)))

	b, ok := inst.BoundingBox()
	if !ok {
		t.Fatal("expected bounding box")
	}
	diag := math.Sqrt2
	if b.Max.X < diag-0.01 {
		t.Errorf("expected rotated box's bounding box to widen along X, got max.X=%f", b.Max.X)
	}
}
