package geometry

import (
	"math/rand"
	"sort"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
)

// BVH is a binary bounding-volume hierarchy built by repeatedly picking a
// random split axis and partitioning at the median. This is deliberately
// not a surface-area-heuristic BVH; its statistical behavior under a fixed
// seed is part of the observable output and must not be "improved" into a
// smarter split policy.
type BVH struct {
	left, right core.Hittable
	box         core.AABB
	leaf        core.Hittable // non-nil for a leaf node
}

// NewBVH builds a BVH over objects. All objects must report a bounding box;
// a primitive that does not is a fatal scene-construction error.
func NewBVH(objects []core.Hittable, rnd *rand.Rand) *BVH {
	objs := make([]core.Hittable, len(objects))
	copy(objs, objects)
	return buildBVH(objs, rnd)
}

func buildBVH(objects []core.Hittable, rnd *rand.Rand) *BVH {
	axis := rnd.Intn(3)

	switch len(objects) {
	case 1:
		box, ok := objects[0].BoundingBox()
		if !ok {
			panic("geometry: object in BVH has no bounding box")
		}
		return &BVH{leaf: objects[0], box: box}

	case 2:
		boxA, okA := objects[0].BoundingBox()
		boxB, okB := objects[1].BoundingBox()
		if !okA || !okB {
			panic("geometry: object in BVH has no bounding box")
		}
		if axisMin(boxA, axis) > axisMin(boxB, axis) {
			objects[0], objects[1] = objects[1], objects[0]
			boxA, boxB = boxB, boxA
		}
		return &BVH{
			left:  &BVH{leaf: objects[0], box: boxA},
			right: &BVH{leaf: objects[1], box: boxB},
			box:   boxA.Union(boxB),
		}

	default:
		sort.Slice(objects, func(i, j int) bool {
			bi, _ := objects[i].BoundingBox()
			bj, _ := objects[j].BoundingBox()
			return axisMin(bi, axis) < axisMin(bj, axis)
		})
		mid := len(objects) / 2
		left := buildBVH(objects[:mid], rnd)
		right := buildBVH(objects[mid:], rnd)
		return &BVH{left: left, right: right, box: left.box.Union(right.box)}
	}
}

func axisMin(b core.AABB, axis int) float64 {
	switch axis {
	case 0:
		return b.Min.X
	case 1:
		return b.Min.Y
	default:
		return b.Min.Z
	}
}

func (b *BVH) BoundingBox() (core.AABB, bool) { return b.box, true }

func (b *BVH) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	if !b.box.Hit(r, tMin, tMax) {
		return core.HitRecord{}, false
	}

	if b.leaf != nil {
		return b.leaf.Hit(r, tMin, tMax)
	}

	leftRec, leftHit := b.left.Hit(r, tMin, tMax)
	shrunkMax := tMax
	if leftHit {
		shrunkMax = leftRec.T
	}
	rightRec, rightHit := b.right.Hit(r, tMin, shrunkMax)

	if rightHit {
		return rightRec, true
	}
	if leftHit {
		return leftRec, true
	}
	return core.HitRecord{}, false
}
