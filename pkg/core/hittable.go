package core

import "math/rand"

// HitRecord describes a single ray-primitive intersection. It is built on
// the stack by a Hit call and consumed immediately by the estimator; nothing
// retains a HitRecord past the call that produced it.
type HitRecord struct {
	P         Vec3
	Normal    Vec3 // always oriented against the incident ray
	Material  Material
	T         float64
	U, V      float64
	FrontFace bool
}

// SetFaceNormal orients Normal against the incident ray direction and
// records whether the outward (geometric) normal faced the ray.
func (h *HitRecord) SetFaceNormal(r Ray, outwardNormal Vec3) {
	h.FrontFace = r.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable is the intersection capability shared by every primitive and
// every recursive aggregate (list, BVH, instance, mesh, volume).
type Hittable interface {
	Hit(r Ray, tMin, tMax float64) (HitRecord, bool)
	BoundingBox() (AABB, bool)
}

// Material is the scattering contract every material variant implements.
// Scatter returns the attenuation and outgoing ray for a scattered sample,
// or ok=false if the material absorbs (or only emits). Emitted returns the
// material's own radiance; non-emissive materials return black.
type Material interface {
	Scatter(rIn Ray, hit HitRecord, rnd *rand.Rand) (attenuation Vec3, scattered Ray, ok bool)
	Emitted(u, v float64, p Vec3) Vec3
}

// HittableList is a linear aggregate that returns the nearest hit among its
// members and the union of their bounding boxes.
type HittableList struct {
	Objects []Hittable
}

func NewHittableList() *HittableList {
	return &HittableList{}
}

func (l *HittableList) Add(h Hittable) {
	l.Objects = append(l.Objects, h)
}

func (l *HittableList) Hit(r Ray, tMin, tMax float64) (HitRecord, bool) {
	var best HitRecord
	hitAnything := false
	closest := tMax

	for _, obj := range l.Objects {
		if rec, ok := obj.Hit(r, tMin, closest); ok {
			hitAnything = true
			closest = rec.T
			best = rec
		}
	}

	return best, hitAnything
}

func (l *HittableList) BoundingBox() (AABB, bool) {
	if len(l.Objects) == 0 {
		return AABB{}, false
	}

	var box AABB
	first := true
	for _, obj := range l.Objects {
		b, ok := obj.BoundingBox()
		if !ok {
			return AABB{}, false
		}
		if first {
			box = b
			first = false
		} else {
			box = box.Union(b)
		}
	}
	return box, true
}
