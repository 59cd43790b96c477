package renderer

import (
	"math"
	"math/rand"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
)

// CameraConfig bundles the parameters needed to build a thin-lens Camera.
type CameraConfig struct {
	LookFrom      core.Vec3
	LookAt        core.Vec3
	Up            core.Vec3
	AspectRatio   float64
	VFov          float64 // vertical field of view, degrees
	Aperture      float64
	FocusDistance float64
	Time0, Time1  float64 // shutter open/close, for motion-bearing primitives
}

// Camera is a thin-lens projective camera: variable aperture, focus distance,
// field of view, and a shutter interval for sampling ray time.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
	time0, time1    float64
}

// NewCamera builds a Camera from a CameraConfig, deriving an orthonormal
// basis from LookFrom/LookAt/Up and scaling the viewport by FocusDistance.
func NewCamera(cfg CameraConfig) *Camera {
	theta := cfg.VFov * math.Pi / 180.0
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := cfg.AspectRatio * viewportHeight

	w := cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	u := cfg.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := cfg.LookFrom
	horizontal := u.Multiply(cfg.FocusDistance * viewportWidth)
	vertical := v.Multiply(cfg.FocusDistance * viewportHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(cfg.FocusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      cfg.Aperture / 2,
		time0:           cfg.Time0,
		time1:           cfg.Time1,
	}
}

// GetRay generates a ray through screen coordinates (s, t) in [0,1], jittered
// across the lens aperture and stamped with a shutter time uniform in [time0, time1].
func (c *Camera) GetRay(rnd *rand.Rand, s, t float64) core.Ray {
	rd := core.RandomInUnitDisk(rnd).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)
	time := c.time0 + rnd.Float64()*(c.time1-c.time0)

	return core.NewRayAtTime(origin, direction, time)
}
