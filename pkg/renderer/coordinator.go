package renderer

import (
	"fmt"
	"runtime"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
)

// Strategy selects how the coordinator subdivides a render across workers.
type Strategy int

const (
	// ProgressiveAverage renders the whole image N times, once per worker,
	// at ceil(samples/N) samples each, and averages the N results.
	ProgressiveAverage Strategy = iota
	// TileFull splits the image into tiles and renders each tile
	// end-to-end, at the full sample count, on a single worker.
	TileFull
	// TileAverage splits the image into tiles, and further splits each
	// tile into N sample-parallel jobs whose contributions are averaged.
	TileAverage
)

func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "progressive-average":
		return ProgressiveAverage, nil
	case "tile-full":
		return TileFull, nil
	case "tile-average":
		return TileAverage, nil
	default:
		return 0, fmt.Errorf("unknown render strategy %q", s)
	}
}

func (s Strategy) String() string {
	switch s {
	case ProgressiveAverage:
		return "progressive-average"
	case TileFull:
		return "tile-full"
	case TileAverage:
		return "tile-average"
	default:
		return "unknown"
	}
}

// RenderConfig parameterizes a render: how many samples, whether to use
// multiple worker goroutines, which subdivision strategy, and the tile edge
// length for the two tiled strategies.
type RenderConfig struct {
	Samples       int
	Multithreaded bool
	Strategy      Strategy
	TileSize      int
	Logger        Logger
	Seed          int64
}

// Logger is the minimal printf-style logging capability threaded through
// the renderer; the CLI binds a structured logger to it so this package
// never imports one directly.
type Logger interface {
	Printf(format string, args ...interface{})
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }

// Render runs cfg's strategy to completion and returns the coordinator's
// finalized linear-color pixel buffer plus summary stats.
func Render(scene *Scene, cfg RenderConfig) ([]core.Vec3, RenderStats) {
	numWorkers := 1
	if cfg.Multithreaded {
		numWorkers = runtime.NumCPU()
	}

	switch cfg.Strategy {
	case ProgressiveAverage:
		return renderProgressiveAverage(scene, cfg, numWorkers)
	case TileFull:
		return renderTiled(scene, cfg, numWorkers, false)
	default:
		return renderTiled(scene, cfg, numWorkers, true)
	}
}
