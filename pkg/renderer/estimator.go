package renderer

import (
	"math"
	"math/rand"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
)

// shadowAcneEpsilon is the lower bound on a valid hit's t, strictly positive
// to avoid a ray re-intersecting the surface it just scattered from.
const shadowAcneEpsilon = 0.001

// MaxDepth is the fixed recursion cutoff for the estimator. This renderer is
// a pure forward path tracer: there is no Russian roulette and no
// importance-sampled light selection, only a hard depth limit.
const MaxDepth = 50

// RayColor is the recursive Monte-Carlo radiance estimator: it intersects
// the world, adds the hit material's own emission, and recurses on the
// scattered ray weighted by the attenuation, until depth reaches zero or the
// ray escapes to the background.
func RayColor(r core.Ray, world core.Hittable, background Background, depth int, rnd *rand.Rand) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, ok := world.Hit(r, shadowAcneEpsilon, math.Inf(1))
	if !ok {
		return background.Color(r)
	}

	emitted := hit.Material.Emitted(hit.U, hit.V, hit.P)

	attenuation, scattered, scatterOK := hit.Material.Scatter(r, hit, rnd)
	if !scatterOK {
		return emitted
	}

	return emitted.Add(attenuation.MultiplyVec(RayColor(scattered, world, background, depth-1, rnd)))
}
