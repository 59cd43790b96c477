// Package geometry implements the ray-primitive intersection stack: spheres,
// axis-aligned rectangles and boxes, triangles and meshes, constant-density
// media, affine instancing, and the bounding-volume hierarchy that
// accelerates queries over all of them.
package geometry

import (
	"math"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
)

// Sphere is a stationary sphere with a fixed center and radius.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

func NewSphere(center core.Vec3, radius float64, mat core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

func (s *Sphere) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	return hitSphere(s.Center, s.Radius, s.Material, r, tMin, tMax)
}

func (s *Sphere) BoundingBox() (core.AABB, bool) {
	radiusVec := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(radiusVec), s.Center.Add(radiusVec)), true
}

// hitSphere is the shared quadratic-root solver used by both Sphere and
// MovingSphere (the latter substitutes a time-dependent center).
func hitSphere(center core.Vec3, radius float64, mat core.Material, r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	oc := r.Origin.Subtract(center)
	a := r.Direction.LengthSquared()
	halfB := oc.Dot(r.Direction)
	c := oc.LengthSquared() - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return core.HitRecord{}, false
		}
	}

	var rec core.HitRecord
	rec.T = root
	rec.P = r.At(root)
	outwardNormal := rec.P.Subtract(center).Multiply(1 / radius)
	rec.SetFaceNormal(r, outwardNormal)
	rec.U, rec.V = sphereUV(outwardNormal)
	rec.Material = mat
	return rec, true
}

// sphereUV maps a point on the unit sphere to (u,v) via
// theta = acos(-y), phi = atan2(-z, x) + pi.
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}
