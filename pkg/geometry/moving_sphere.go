package geometry

import "github.com/halvorsen-dev/pathtracer/pkg/core"

// MovingSphere linearly interpolates its center between two positions over
// [Time0, Time1]; the center used for a given ray is evaluated at ray.Time.
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         core.Material
}

func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, mat core.Material) *MovingSphere {
	return &MovingSphere{Center0: center0, Center1: center1, Time0: time0, Time1: time1, Radius: radius, Material: mat}
}

func (s *MovingSphere) centerAt(time float64) core.Vec3 {
	frac := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(frac))
}

func (s *MovingSphere) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	return hitSphere(s.centerAt(r.Time), s.Radius, s.Material, r, tMin, tMax)
}

func (s *MovingSphere) BoundingBox() (core.AABB, bool) {
	radiusVec := core.NewVec3(s.Radius, s.Radius, s.Radius)
	box0 := core.NewAABB(s.Center0.Subtract(radiusVec), s.Center0.Add(radiusVec))
	box1 := core.NewAABB(s.Center1.Subtract(radiusVec), s.Center1.Add(radiusVec))
	return box0.Union(box1), true
}
