package geometry

import (
	"math"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
)

// Triangle is a single Möller–Trumbore triangle with flat shading.
type Triangle struct {
	V0, V1, V2 core.Vec3
	Material   core.Material
}

func NewTriangle(v0, v1, v2 core.Vec3, mat core.Material) *Triangle {
	return &Triangle{V0: v0, V1: v1, V2: v2, Material: mat}
}

func (tri *Triangle) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	rec, ok := hitTriangle(tri.V0, tri.V1, tri.V2, r, tMin, tMax)
	if ok {
		rec.Material = tri.Material
	}
	return rec, ok
}

func (tri *Triangle) BoundingBox() (core.AABB, bool) {
	return core.NewAABBFromPoints(tri.V0, tri.V1, tri.V2), true
}

// hitTriangle implements Möller–Trumbore intersection shared by Triangle and
// Mesh. The returned record's U,V are the barycentric (u,v) weights of V1
// and V2 respectively; Mesh reinterprets them for normal/UV interpolation,
// while a bare Triangle leaves them as-is (texture coordinates are not
// otherwise defined for an untextured triangle).
func hitTriangle(v0, v1, v2 core.Vec3, r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	e1 := v1.Subtract(v0)
	e2 := v2.Subtract(v0)
	pVec := r.Direction.Cross(e2)
	denom := pVec.Dot(e1)

	if math.Abs(denom) < 2.220446049250313e-16 { // f64::EPSILON
		return core.HitRecord{}, false
	}
	invDenom := 1.0 / denom

	tVec := r.Origin.Subtract(v0)
	u := pVec.Dot(tVec) * invDenom
	if u < 0 || u > 1 {
		return core.HitRecord{}, false
	}

	qVec := tVec.Cross(e1)
	v := qVec.Dot(r.Direction) * invDenom
	if v < 0 || u+v > 1 {
		return core.HitRecord{}, false
	}

	t := qVec.Dot(e2) * invDenom
	if t < tMin || t > tMax {
		return core.HitRecord{}, false
	}

	var rec core.HitRecord
	rec.T = t
	rec.P = r.At(t)
	rec.U = u
	rec.V = v
	outwardNormal := e1.Cross(e2).Normalize()
	rec.SetFaceNormal(r, outwardNormal)
	return rec, true
}
