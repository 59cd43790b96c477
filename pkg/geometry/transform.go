package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
)

// Transform is a cached affine 4x4 matrix plus its inverse, built by
// composing primitive transforms (identity, translate, rotate). Composition
// follows compose(a,b).data = b.data*a.data, compose(a,b).inverse =
// a.inverse*b.inverse, so that applying compose(a,b) to a point matches
// applying a first, then b.
type Transform struct {
	data    mgl64.Mat4
	inverse mgl64.Mat4
}

// IdentityTransform returns the identity affine transform.
func IdentityTransform() Transform {
	return Transform{data: mgl64.Ident4(), inverse: mgl64.Ident4()}
}

// Translate returns a transform that translates by v.
func Translate(v core.Vec3) Transform {
	return Transform{
		data:    mgl64.Translate3D(v.X, v.Y, v.Z),
		inverse: mgl64.Translate3D(-v.X, -v.Y, -v.Z),
	}
}

// RotateAngleAxis returns a transform that rotates by angleDeg degrees about axis.
func RotateAngleAxis(angleDeg float64, axis core.Vec3) Transform {
	rad := angleDeg * math.Pi / 180
	q := mgl64.QuatRotate(rad, mgl64.Vec3{axis.X, axis.Y, axis.Z})
	rot := q.Mat4()
	return Transform{data: rot, inverse: q.Inverse().Mat4()}
}

// Compose returns the transform equivalent to applying a, then b.
func (a Transform) Compose(b Transform) Transform {
	return Transform{
		data:    b.data.Mul4(a.data),
		inverse: a.inverse.Mul4(b.inverse),
	}
}

func (t Transform) transformPoint(p core.Vec3) core.Vec3 {
	v := t.data.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return core.NewVec3(v[0], v[1], v[2])
}

func (t Transform) inverseTransformPoint(p core.Vec3) core.Vec3 {
	v := t.inverse.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return core.NewVec3(v[0], v[1], v[2])
}

// transformNormal uses the "transform p+n and subtract transformed p" trick,
// exactly correct for rigid transforms (rotation+translation, no non-uniform
// scale) — the only transforms this system composes.
func (t Transform) transformNormal(p, n core.Vec3) core.Vec3 {
	return t.transformPoint(p.Add(n)).Subtract(t.transformPoint(p)).Normalize()
}

func (t Transform) inverseTransformNormal(p, n core.Vec3) core.Vec3 {
	return t.inverseTransformPoint(p.Add(n)).Subtract(t.inverseTransformPoint(p)).Normalize()
}

func (t Transform) transformRay(r core.Ray) core.Ray {
	origin := t.transformPoint(r.Origin)
	dir := t.transformPoint(r.Origin.Add(r.Direction)).Subtract(origin)
	return core.NewRayAtTime(origin, dir, r.Time)
}

func (t Transform) inverseTransformRay(r core.Ray) core.Ray {
	origin := t.inverseTransformPoint(r.Origin)
	dir := t.inverseTransformPoint(r.Origin.Add(r.Direction)).Subtract(origin)
	return core.NewRayAtTime(origin, dir, r.Time)
}
