package material

import (
	"math"
	"math/rand"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
)

const perlinPointCount = 256

// Perlin implements value-noise with trilinear interpolation of random unit
// vectors at lattice points, smoothed with the Hermite curve u^2(3-2u).
type Perlin struct {
	randVec [perlinPointCount]core.Vec3
	permX   [perlinPointCount]int
	permY   [perlinPointCount]int
	permZ   [perlinPointCount]int
}

// NewPerlin builds a Perlin noise generator with a fresh random table.
func NewPerlin(rnd *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := 0; i < perlinPointCount; i++ {
		p.randVec[i] = core.RandomVec3(rnd, -1, 1).Normalize()
	}
	p.permX = perlinGeneratePerm(rnd)
	p.permY = perlinGeneratePerm(rnd)
	p.permZ = perlinGeneratePerm(rnd)
	return p
}

func perlinGeneratePerm(rnd *rand.Rand) [perlinPointCount]int {
	var perm [perlinPointCount]int
	for i := range perm {
		perm[i] = i
	}
	for i := perlinPointCount - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// Noise evaluates the noise field at a point, trilinearly interpolating the
// eight surrounding lattice corners.
func (p *Perlin) Noise(pt core.Vec3) float64 {
	u := pt.X - math.Floor(pt.X)
	v := pt.Y - math.Floor(pt.Y)
	w := pt.Z - math.Floor(pt.Z)

	i := int(math.Floor(pt.X))
	j := int(math.Floor(pt.Y))
	k := int(math.Floor(pt.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				idx := p.permX[(i+di)&255] ^ p.permY[(j+dj)&255] ^ p.permZ[(k+dk)&255]
				c[di][dj][dk] = p.randVec[idx]
			}
		}
	}

	return perlinInterpolate(c, u, v, w)
}

func perlinInterpolate(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	var accum float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				weight := core.NewVec3(u-float64(i), v-float64(j), w-float64(k))
				fi, fj, fk := float64(i), float64(j), float64(k)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// Turbulence sums |noise(2^i p)| * 2^-i over depth octaves.
func (p *Perlin) Turbulence(pt core.Vec3, depth int) float64 {
	var accum float64
	temp := pt
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * math.Abs(p.Noise(temp))
		weight *= 0.5
		temp = temp.Multiply(2)
	}
	return accum
}
