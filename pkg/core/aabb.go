package core

import "math"

// AABB is an axis-aligned bounding box, Min <= Max componentwise. Rectangles
// and other flat primitives are responsible for inflating their degenerate
// axis before handing a box to the BVH.
type AABB struct {
	Min Vec3
	Max Vec3
}

func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints returns the tightest box enclosing all given points.
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	box := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box.Min.X = math.Min(box.Min.X, p.X)
		box.Min.Y = math.Min(box.Min.Y, p.Y)
		box.Min.Z = math.Min(box.Min.Z, p.Z)
		box.Max.X = math.Max(box.Max.X, p.X)
		box.Max.Y = math.Max(box.Max.Y, p.Y)
		box.Max.Z = math.Max(box.Max.Z, p.Z)
	}
	return box
}

// Hit reports whether ray intersects the box within [tMin, tMax], using the
// slab test per axis. A ray parallel to an axis hits only if its origin lies
// inside that axis's slab.
func (b AABB) Hit(ray Ray, tMin, tMax float64) bool {
	slabs := [3][4]float64{
		{b.Min.X, b.Max.X, ray.Origin.X, ray.Direction.X},
		{b.Min.Y, b.Max.Y, ray.Origin.Y, ray.Direction.Y},
		{b.Min.Z, b.Max.Z, ray.Origin.Z, ray.Direction.Z},
	}

	for _, s := range slabs {
		lo, hi, origin, dir := s[0], s[1], s[2], s[3]

		if math.Abs(dir) < 1e-8 {
			if origin < lo || origin > hi {
				return false
			}
			continue
		}

		invDir := 1.0 / dir
		t0 := (lo - origin) * invDir
		t1 := (hi - origin) * invDir
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)
		if tMin > tMax {
			return false
		}
	}
	return true
}

// Union returns a box enclosing both b and other.
func (b AABB) Union(other AABB) AABB {
	return AABB{
		Min: Vec3{
			X: math.Min(b.Min.X, other.Min.X),
			Y: math.Min(b.Min.Y, other.Min.Y),
			Z: math.Min(b.Min.Z, other.Min.Z),
		},
		Max: Vec3{
			X: math.Max(b.Max.X, other.Max.X),
			Y: math.Max(b.Max.Y, other.Max.Y),
			Z: math.Max(b.Max.Z, other.Max.Z),
		},
	}
}

// Center returns the box's midpoint.
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// Size returns the box's extent along each axis.
func (b AABB) Size() Vec3 {
	return b.Max.Subtract(b.Min)
}
