package geometry

import (
	"math"
	"testing"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
	"github.com/halvorsen-dev/pathtracer/pkg/material"
)

func TestSphereHitFromOutside(t *testing.T) {
	s := NewSphere(core.NewVec3(0, 0, -5), 1, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	r := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	rec, ok := s.Hit(r, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected ray through sphere center to hit")
	}
	if math.Abs(rec.T-4) > 1e-9 {
		t.Errorf("expected t=4, got %f", rec.T)
	}
	if !rec.FrontFace {
		t.Error("expected front-face hit from outside the sphere")
	}
	if !rec.Normal.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("expected outward normal (0,0,1), got %v", rec.Normal)
	}
}

func TestSphereMiss(t *testing.T) {
	s := NewSphere(core.NewVec3(0, 0, -5), 1, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	r := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, 0, -1))
	if _, ok := s.Hit(r, 0.001, math.Inf(1)); ok {
		t.Error("expected ray far from sphere to miss")
	}
}

func TestSphereBoundingBox(t *testing.T) {
	s := NewSphere(core.NewVec3(1, 2, 3), 2, nil)
	box, ok := s.BoundingBox()
	if !ok {
		t.Fatal("expected sphere to report a bounding box")
	}
	if !box.Min.Equals(core.NewVec3(-1, 0, 1)) || !box.Max.Equals(core.NewVec3(3, 4, 5)) {
		t.Errorf("unexpected bounding box %v", box)
	}
}

func TestSphereUVPoles(t *testing.T) {
	u, v := sphereUV(core.NewVec3(0, 1, 0))
	if math.Abs(v-1) > 1e-9 {
		t.Errorf("expected v=1 at north pole (theta=acos(-y)=pi), got %f", v)
	}
	_, v = sphereUV(core.NewVec3(0, -1, 0))
	if math.Abs(v) > 1e-9 {
		t.Errorf("expected v=0 at south pole, got %f", v)
	}
	_ = u
}
