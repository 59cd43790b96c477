package geometry

import "github.com/halvorsen-dev/pathtracer/pkg/core"

// AARect is an axis-aligned rectangle lying at K along a perpendicular axis,
// spanning [A0,A1]x[B0,B1] on the other two. The three public constructors
// fix which axis plays each role, mirroring the XY/XZ/YZ orientations used
// throughout the scene presets.
type AARect struct {
	Material                         core.Material
	A0, A1, B0, B1, K                float64
	firstAxis, secondAxis, thirdAxis int
}

func newAARect(mat core.Material, a0, a1, b0, b1, k float64, first, second, third int) *AARect {
	return &AARect{Material: mat, A0: a0, A1: a1, B0: b0, B1: b1, K: k, firstAxis: first, secondAxis: second, thirdAxis: third}
}

// NewXYRect builds a rectangle in the XY plane at z=k.
func NewXYRect(mat core.Material, x0, x1, y0, y1, k float64) *AARect {
	return newAARect(mat, x0, x1, y0, y1, k, 0, 1, 2)
}

// NewXZRect builds a rectangle in the XZ plane at y=k.
func NewXZRect(mat core.Material, x0, x1, z0, z1, k float64) *AARect {
	return newAARect(mat, x0, x1, z0, z1, k, 0, 2, 1)
}

// NewYZRect builds a rectangle in the YZ plane at x=k.
func NewYZRect(mat core.Material, y0, y1, z0, z1, k float64) *AARect {
	return newAARect(mat, y0, y1, z0, z1, k, 1, 2, 0)
}

func axisComponent(v core.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func withAxis(v core.Vec3, axis int, value float64) core.Vec3 {
	switch axis {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		v.Z = value
	}
	return v
}

func (rect *AARect) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	originThird := axisComponent(r.Origin, rect.thirdAxis)
	dirThird := axisComponent(r.Direction, rect.thirdAxis)
	if dirThird == 0 {
		return core.HitRecord{}, false
	}

	t := (rect.K - originThird) / dirThird
	if t < tMin || t > tMax {
		return core.HitRecord{}, false
	}

	p := r.At(t)
	a := axisComponent(p, rect.firstAxis)
	b := axisComponent(p, rect.secondAxis)
	if a < rect.A0 || a > rect.A1 || b < rect.B0 || b > rect.B1 {
		return core.HitRecord{}, false
	}

	var rec core.HitRecord
	rec.T = t
	rec.P = p
	rec.U = (a - rect.A0) / (rect.A1 - rect.A0)
	rec.V = (b - rect.B0) / (rect.B1 - rect.B0)
	rec.Material = rect.Material

	outwardNormal := withAxis(core.Vec3{}, rect.thirdAxis, 1)
	rec.SetFaceNormal(r, outwardNormal)
	return rec, true
}

// BoundingBox inflates the perpendicular axis by ±1e-4 so the slab test
// in the BVH never produces a zero-volume box.
func (rect *AARect) BoundingBox() (core.AABB, bool) {
	const epsilon = 1e-4
	min := withAxis(withAxis(core.Vec3{}, rect.firstAxis, rect.A0), rect.secondAxis, rect.B0)
	max := withAxis(withAxis(core.Vec3{}, rect.firstAxis, rect.A1), rect.secondAxis, rect.B1)
	min = withAxis(min, rect.thirdAxis, rect.K-epsilon)
	max = withAxis(max, rect.thirdAxis, rect.K+epsilon)
	return core.NewAABB(min, max), true
}
