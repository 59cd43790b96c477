package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestVec3TripleProduct(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(-1, 4, 2)
	c := NewVec3(2, 0, -1)

	abc := a.Dot(b.Cross(c))
	bac := a.Cross(b).Dot(c)

	if math.Abs(abc-bac) > 1e-9 {
		t.Errorf("a.(b x c) = %f, (a x b).c = %f, expected equal", abc, bac)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	v := NewVec3(3, -4, 12).Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("expected unit length, got %f", v.Length())
	}
}

func TestReflectInvolution(t *testing.T) {
	d := NewVec3(1, -1, 0).Normalize()
	n := NewVec3(0, 1, 0)

	reflected := d.Reflect(n)
	back := reflected.Reflect(n)

	if !back.Equals(d) {
		t.Errorf("reflect(reflect(d,n),n) = %v, expected %v", back, d)
	}

	expected := d.Subtract(n.Multiply(2 * d.Dot(n)))
	if !reflected.Equals(expected) {
		t.Errorf("reflect formula mismatch: got %v, expected %v", reflected, expected)
	}
}

func TestRefractIdentityEta(t *testing.T) {
	d := NewVec3(0.6, -0.8, 0).Normalize()
	n := NewVec3(0, 1, 0)

	refracted := d.Refract(n, 1.0)
	if !refracted.Equals(d) {
		t.Errorf("refract with eta=1 should be identity: got %v, expected %v", refracted, d)
	}
}

func TestNearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("expected near-zero vector to be reported as near zero")
	}
	if NewVec3(0.1, 0, 0).NearZero() {
		t.Error("expected non-trivial vector not to be reported as near zero")
	}
}

func TestRandomInUnitSphereBounded(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		v := RandomInUnitSphere(rnd)
		if v.LengthSquared() >= 1 {
			t.Fatalf("point %v outside unit sphere", v)
		}
	}
}

func TestRandomUnitVectorIsUnit(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		v := RandomUnitVector(rnd)
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("expected unit vector, got length %f", v.Length())
		}
	}
}

func TestRayAt(t *testing.T) {
	r := NewRayAtTime(NewVec3(1, 1, 1), NewVec3(2, 0, 0), 0.5)
	p := r.At(2)
	expected := NewVec3(5, 1, 1)
	if !p.Equals(expected) {
		t.Errorf("ray.At(2) = %v, expected %v", p, expected)
	}
	if r.Time != 0.5 {
		t.Errorf("expected ray time 0.5, got %f", r.Time)
	}
}
