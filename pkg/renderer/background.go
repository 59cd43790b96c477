package renderer

import "github.com/halvorsen-dev/pathtracer/pkg/core"

// Background is the sky model consulted when a ray escapes the scene.
type Background interface {
	Color(r core.Ray) core.Vec3
}

// SolidColor is a constant sky color.
type SolidColor struct {
	Value core.Vec3
}

func NewSolidColorBackground(c core.Vec3) *SolidColor { return &SolidColor{Value: c} }

func (s *SolidColor) Color(r core.Ray) core.Vec3 { return s.Value }

// VerticalGradient interpolates between a bottom and top color based on the
// ray direction's Y component.
type VerticalGradient struct {
	Bottom, Top core.Vec3
}

func NewVerticalGradient(bottom, top core.Vec3) *VerticalGradient {
	return &VerticalGradient{Bottom: bottom, Top: top}
}

func (g *VerticalGradient) Color(r core.Ray) core.Vec3 {
	unitDir := r.Direction.Normalize()
	t := 0.5 * (unitDir.Y + 1.0)
	return g.Bottom.Multiply(1 - t).Add(g.Top.Multiply(t))
}
