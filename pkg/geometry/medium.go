package geometry

import (
	"math"
	"math/rand"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
	"github.com/halvorsen-dev/pathtracer/pkg/material"
)

// ConstantMedium wraps a convex boundary as a participating medium of
// constant density: a ray passing through scatters at a point drawn from a
// Poisson process, regardless of the boundary's own material.
//
// The scatter-distance draw uses the package-level rand source, which is
// safe for concurrent use; Hit is called from every worker goroutine.
type ConstantMedium struct {
	Boundary      core.Hittable
	NegInvDensity float64
	PhaseFunction core.Material
}

// NewConstantMedium builds a medium of the given density; higher density
// means shorter expected free paths (denser fog).
func NewConstantMedium(boundary core.Hittable, density float64, albedo core.Vec3) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		NegInvDensity: -1.0 / density,
		PhaseFunction: material.NewIsotropic(albedo),
	}
}

func (c *ConstantMedium) BoundingBox() (core.AABB, bool) {
	return c.Boundary.BoundingBox()
}

func (c *ConstantMedium) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	rec1, ok1 := c.Boundary.Hit(r, math.Inf(-1), math.Inf(1))
	if !ok1 {
		return core.HitRecord{}, false
	}
	rec2, ok2 := c.Boundary.Hit(r, rec1.T+0.0001, math.Inf(1))
	if !ok2 {
		return core.HitRecord{}, false
	}

	if rec1.T < tMin {
		rec1.T = tMin
	}
	if rec2.T > tMax {
		rec2.T = tMax
	}
	if rec1.T >= rec2.T {
		return core.HitRecord{}, false
	}
	if rec1.T < 0 {
		rec1.T = 0
	}

	rayLength := r.Direction.Length()
	distanceInsideBoundary := (rec2.T - rec1.T) * rayLength
	hitDistance := c.NegInvDensity * math.Log(rand.Float64())

	if hitDistance > distanceInsideBoundary {
		return core.HitRecord{}, false
	}

	var rec core.HitRecord
	rec.T = rec1.T + hitDistance/rayLength
	rec.P = r.At(rec.T)
	rec.Normal = core.NewVec3(1, 0, 0) // arbitrary; isotropic scattering ignores it
	rec.FrontFace = true
	rec.Material = c.PhaseFunction
	return rec, true
}
