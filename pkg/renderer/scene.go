package renderer

import "github.com/halvorsen-dev/pathtracer/pkg/core"

// Scene bundles everything needed to render a frame: the camera, the world
// (already wrapped in an acceleration structure), the background, and the
// target image dimensions. It is built once and then read concurrently by
// every worker; nothing about it is mutated after construction.
type Scene struct {
	Camera     *Camera
	World      core.Hittable
	Background Background
	Width      int
	Height     int
}
