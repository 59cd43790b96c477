package geometry

import (
	"testing"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
	"github.com/halvorsen-dev/pathtracer/pkg/material"
)

func TestMovingSphereCenterAtInterpolates(t *testing.T) {
	s := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(10, 0, 0), 0, 1, 1, material.NewLambertian(core.NewVec3(1, 1, 1)))

	if c := s.centerAt(0); !c.Equals(core.NewVec3(0, 0, 0)) {
		t.Errorf("expected center at t=0 to be (0,0,0), got %v", c)
	}
	if c := s.centerAt(1); !c.Equals(core.NewVec3(10, 0, 0)) {
		t.Errorf("expected center at t=1 to be (10,0,0), got %v", c)
	}
	if c := s.centerAt(0.5); !c.Equals(core.NewVec3(5, 0, 0)) {
		t.Errorf("expected center at t=0.5 to be (5,0,0), got %v", c)
	}
}

func TestMovingSphereHitUsesRayTime(t *testing.T) {
	s := NewMovingSphere(core.NewVec3(0, 0, -5), core.NewVec3(10, 0, -5), 0, 1, 1, material.NewLambertian(core.NewVec3(1, 1, 1)))

	r := core.NewRayAtTime(core.NewVec3(10, 0, 0), core.NewVec3(0, 0, -1), 1)
	if _, ok := s.Hit(r, 0.001, 1000); !ok {
		t.Error("expected ray at shutter time 1 to hit sphere at its t=1 position")
	}

	rEarly := core.NewRayAtTime(core.NewVec3(10, 0, 0), core.NewVec3(0, 0, -1), 0)
	if _, ok := s.Hit(rEarly, 0.001, 1000); ok {
		t.Error("expected ray at shutter time 0 to miss sphere at its t=1 position")
	}
}

func TestMovingSphereBoundingBoxCoversBothEndpoints(t *testing.T) {
	s := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(10, 0, 0), 0, 1, 1, nil)
	box, ok := s.BoundingBox()
	if !ok {
		t.Fatal("expected bounding box")
	}
	if box.Max.X != 11 || box.Min.X != -1 {
		t.Errorf("expected X range [-1,11], got [%f,%f]", box.Min.X, box.Max.X)
	}
}
