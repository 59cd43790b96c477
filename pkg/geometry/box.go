package geometry

import "github.com/halvorsen-dev/pathtracer/pkg/core"

// Box is an axis-aligned box composed of six AARect faces; hit delegates to
// the inner aggregate.
type Box struct {
	Min, Max core.Vec3
	sides    *core.HittableList
}

func NewBox(min, max core.Vec3, mat core.Material) *Box {
	sides := core.NewHittableList()
	sides.Add(NewXYRect(mat, min.X, max.X, min.Y, max.Y, max.Z))
	sides.Add(NewXYRect(mat, min.X, max.X, min.Y, max.Y, min.Z))
	sides.Add(NewXZRect(mat, min.X, max.X, min.Z, max.Z, max.Y))
	sides.Add(NewXZRect(mat, min.X, max.X, min.Z, max.Z, min.Y))
	sides.Add(NewYZRect(mat, min.Y, max.Y, min.Z, max.Z, max.X))
	sides.Add(NewYZRect(mat, min.Y, max.Y, min.Z, max.Z, min.X))
	return &Box{Min: min, Max: max, sides: sides}
}

func (b *Box) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	return b.sides.Hit(r, tMin, tMax)
}

func (b *Box) BoundingBox() (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
