package geometry

import "github.com/halvorsen-dev/pathtracer/pkg/core"

// Instance wraps a primitive with an affine Transform: the incoming ray is
// inverse-transformed into the primitive's local space, the inner hit is
// computed there, and the result is transformed back to world space.
type Instance struct {
	Transform Transform
	Inner     core.Hittable
}

func NewInstance(inner core.Hittable, t Transform) *Instance {
	return &Instance{Transform: t, Inner: inner}
}

func (inst *Instance) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	localRay := inst.Transform.inverseTransformRay(r)

	rec, ok := inst.Inner.Hit(localRay, tMin, tMax)
	if !ok {
		return core.HitRecord{}, false
	}

	worldP := inst.Transform.transformPoint(rec.P)
	worldNormal := inst.Transform.transformNormal(rec.P, rec.Normal)

	rec.P = worldP
	rec.SetFaceNormal(r, worldNormal)
	return rec, true
}

func (inst *Instance) BoundingBox() (core.AABB, bool) {
	innerBox, ok := inst.Inner.BoundingBox()
	if !ok {
		return core.AABB{}, false
	}

	corners := [8]core.Vec3{
		{X: innerBox.Min.X, Y: innerBox.Min.Y, Z: innerBox.Min.Z},
		{X: innerBox.Min.X, Y: innerBox.Min.Y, Z: innerBox.Max.Z},
		{X: innerBox.Min.X, Y: innerBox.Max.Y, Z: innerBox.Min.Z},
		{X: innerBox.Min.X, Y: innerBox.Max.Y, Z: innerBox.Max.Z},
		{X: innerBox.Max.X, Y: innerBox.Min.Y, Z: innerBox.Min.Z},
		{X: innerBox.Max.X, Y: innerBox.Min.Y, Z: innerBox.Max.Z},
		{X: innerBox.Max.X, Y: innerBox.Max.Y, Z: innerBox.Min.Z},
		{X: innerBox.Max.X, Y: innerBox.Max.Y, Z: innerBox.Max.Z},
	}

	transformed := make([]core.Vec3, 8)
	for i, c := range corners {
		transformed[i] = inst.Transform.transformPoint(c)
	}
	return core.NewAABBFromPoints(transformed...), true
}
