package core

import "testing"

func TestAABBHitStraightOn(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	r := NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1))
	if !box.Hit(r, 0, 1000) {
		t.Error("expected ray through box center to hit")
	}
}

func TestAABBMissParallel(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	r := NewRay(NewVec3(5, 5, -5), NewVec3(0, 0, 1))
	if box.Hit(r, 0, 1000) {
		t.Error("expected ray outside box's XY extent to miss")
	}
}

func TestAABBUnionContainsBoth(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(-1, -1, -1), NewVec3(0.5, 0.5, 0.5))
	u := a.Union(b)
	if u.Min.X != -1 || u.Max.X != 1 {
		t.Errorf("expected union X range [-1,1], got [%f,%f]", u.Min.X, u.Max.X)
	}
	if u.Min.Y != -1 || u.Max.Y != 1 || u.Min.Z != -1 || u.Max.Z != 1 {
		t.Errorf("expected union to enclose both boxes on every axis, got %v", u)
	}
}

func TestAABBInsideOriginAlwaysHits(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	dirs := []Vec3{
		NewVec3(1, 0, 0), NewVec3(0, -1, 0), NewVec3(0.3, 0.5, -0.8),
	}
	for _, d := range dirs {
		if !box.Hit(NewRay(NewVec3(0, 0, 0), d), 0, 1000) {
			t.Errorf("ray from inside the box should hit for direction %v", d)
		}
	}
}

func TestAABBFromPointsEnclosesAll(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(1, -2, 3), NewVec3(-4, 5, 0), NewVec3(2, 2, 2))
	if !box.Min.Equals(NewVec3(-4, -2, 0)) || !box.Max.Equals(NewVec3(2, 5, 3)) {
		t.Errorf("unexpected bounds %v", box)
	}
}

func TestAABBCenterAndSize(t *testing.T) {
	box := NewAABB(NewVec3(-2, -2, -2), NewVec3(2, 2, 2))
	if !box.Center().Equals(NewVec3(0, 0, 0)) {
		t.Errorf("expected center at origin, got %v", box.Center())
	}
	if !box.Size().Equals(NewVec3(4, 4, 4)) {
		t.Errorf("expected size (4,4,4), got %v", box.Size())
	}
}
