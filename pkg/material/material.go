// Package material implements the scattering model: textures mapping
// (u,v,p) to color, and the closed set of material variants that consume
// them (Lambertian, Metal, Dielectric, DiffuseLight, Isotropic).
package material

import (
	"math"
	"math/rand"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
)

// Lambertian is an ideal diffuse surface: scattered direction is the
// surface normal plus a random unit vector.
type Lambertian struct {
	Albedo Texture
}

func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

func NewLambertianTexture(albedo Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

func (l *Lambertian) Scatter(rIn core.Ray, hit core.HitRecord, rnd *rand.Rand) (core.Vec3, core.Ray, bool) {
	direction := hit.Normal.Add(core.RandomUnitVector(rnd))
	if direction.NearZero() {
		direction = hit.Normal
	}
	scattered := core.NewRayAtTime(hit.P, direction, rIn.Time)
	return l.Albedo.Value(hit.U, hit.V, hit.P), scattered, true
}

func (l *Lambertian) Emitted(u, v float64, p core.Vec3) core.Vec3 { return core.Vec3{} }

// Metal is a reflective surface perturbed by a fuzz radius.
type Metal struct {
	Albedo core.Vec3
	Fuzz   float64
}

func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

func (m *Metal) Scatter(rIn core.Ray, hit core.HitRecord, rnd *rand.Rand) (core.Vec3, core.Ray, bool) {
	reflected := rIn.Direction.Normalize().Reflect(hit.Normal)
	reflected = reflected.Add(core.RandomInUnitSphere(rnd).Multiply(m.Fuzz))
	if reflected.Dot(hit.Normal) <= 0 {
		return core.Vec3{}, core.Ray{}, false
	}
	scattered := core.NewRayAtTime(hit.P, reflected, rIn.Time)
	return m.Albedo, scattered, true
}

func (m *Metal) Emitted(u, v float64, p core.Vec3) core.Vec3 { return core.Vec3{} }

// Dielectric is a refractive surface (glass, water) with Schlick-approximated
// reflectance.
type Dielectric struct {
	IOR float64
}

func NewDielectric(ior float64) *Dielectric { return &Dielectric{IOR: ior} }

func (d *Dielectric) Scatter(rIn core.Ray, hit core.HitRecord, rnd *rand.Rand) (core.Vec3, core.Ray, bool) {
	etaRatio := d.IOR
	if hit.FrontFace {
		etaRatio = 1.0 / d.IOR
	}

	unitDirection := rIn.Direction.Normalize()
	cosTheta := math.Min(hit.Normal.Dot(unitDirection.Negate()), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	var direction core.Vec3
	if etaRatio*sinTheta > 1.0 || schlick(cosTheta, etaRatio) > rnd.Float64() {
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		direction = unitDirection.Refract(hit.Normal, etaRatio)
	}

	scattered := core.NewRayAtTime(hit.P, direction, rIn.Time)
	return core.NewVec3(1, 1, 1), scattered, true
}

func (d *Dielectric) Emitted(u, v float64, p core.Vec3) core.Vec3 { return core.Vec3{} }

func schlick(cosine, refIdx float64) float64 {
	r0 := (1 - refIdx) / (1 + refIdx)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

// DiffuseLight only emits; it never scatters.
type DiffuseLight struct {
	Emit Texture
}

func NewDiffuseLight(emit core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emit)}
}

func (d *DiffuseLight) Scatter(rIn core.Ray, hit core.HitRecord, rnd *rand.Rand) (core.Vec3, core.Ray, bool) {
	return core.Vec3{}, core.Ray{}, false
}

func (d *DiffuseLight) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return d.Emit.Value(u, v, p)
}

// Isotropic is the phase function used by ConstantMedium: it scatters in a
// uniformly random direction regardless of the incident ray.
type Isotropic struct {
	Albedo Texture
}

func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

func (i *Isotropic) Scatter(rIn core.Ray, hit core.HitRecord, rnd *rand.Rand) (core.Vec3, core.Ray, bool) {
	scattered := core.NewRayAtTime(hit.P, core.RandomUnitVector(rnd), rIn.Time)
	return i.Albedo.Value(hit.U, hit.V, hit.P), scattered, true
}

func (i *Isotropic) Emitted(u, v float64, p core.Vec3) core.Vec3 { return core.Vec3{} }
