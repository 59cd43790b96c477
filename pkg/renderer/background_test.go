package renderer

import (
	"testing"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
)

func TestSolidColorBackgroundIgnoresRay(t *testing.T) {
	bg := NewSolidColorBackground(core.NewVec3(0.1, 0.2, 0.3))
	a := bg.Color(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)))
	b := bg.Color(core.NewRay(core.NewVec3(5, 5, 5), core.NewVec3(0, -1, 0)))
	if !a.Equals(b) {
		t.Errorf("expected solid background color to be ray-independent, got %v and %v", a, b)
	}
}

func TestVerticalGradientEndpoints(t *testing.T) {
	bg := NewVerticalGradient(core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1))

	up := bg.Color(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)))
	if !up.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("expected straight-up ray to sample top color, got %v", up)
	}

	down := bg.Color(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0)))
	if !down.Equals(core.NewVec3(1, 0, 0)) {
		t.Errorf("expected straight-down ray to sample bottom color, got %v", down)
	}
}
