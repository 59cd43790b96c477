package renderer

import "github.com/halvorsen-dev/pathtracer/pkg/core"

// renderProgressiveAverage treats the whole image as a single tile and fans
// it out across numWorkers full-image jobs at ceil(samples/N) samples each;
// the N results are averaged on reduction.
func renderProgressiveAverage(scene *Scene, cfg RenderConfig, numWorkers int) ([]core.Vec3, RenderStats) {
	samplesPerJob := ceilDiv(cfg.Samples, numWorkers)
	fb := NewFramebuffer(scene.Width, scene.Height)

	pool := NewWorkerPool(scene, numWorkers, cfg.Seed)
	whole := Tile{X0: 0, Y0: 0, X1: scene.Width, Y1: scene.Height}
	for i := 0; i < numWorkers; i++ {
		pool.Submit(Job{Tile: whole, SamplesPerPixel: samplesPerJob})
	}
	go pool.Close()

	rowsDone := 0
	totalRows := scene.Height * numWorkers
	for result := range pool.Results() {
		accumulateTile(fb, result)
		rowsDone++
		if cfg.Logger != nil && rowsDone%max(1, totalRows/10) == 0 {
			cfg.Logger.Printf("progressive-average: %d/%d scanlines accumulated", rowsDone, totalRows)
		}
	}

	stats := RenderStats{
		Width: scene.Width, Height: scene.Height,
		SamplesPerPixel: samplesPerJob * numWorkers,
		JobsPerTile:     numWorkers,
		TileCount:       1,
		Strategy:        ProgressiveAverage,
	}
	return fb.Finalize(numWorkers), stats
}

// renderTiled splits the image into tileSize x tileSize tiles. When average
// is false (tile-full), each tile is one job at the full sample count. When
// average is true (tile-average), each tile is further split into
// numWorkers sample-parallel jobs whose contributions are averaged.
func renderTiled(scene *Scene, cfg RenderConfig, numWorkers int, average bool) ([]core.Vec3, RenderStats) {
	tileSize := cfg.TileSize
	if tileSize <= 0 {
		tileSize = 64
	}

	tiles := buildTiles(scene.Width, scene.Height, tileSize)
	fb := NewFramebuffer(scene.Width, scene.Height)

	jobsPerTile := 1
	if average {
		jobsPerTile = numWorkers
	}

	pool := NewWorkerPool(scene, numWorkers, cfg.Seed)
	go func() {
		for _, t := range tiles {
			if average {
				samplesPerJob := ceilDiv(cfg.Samples, numWorkers)
				for i := 0; i < numWorkers; i++ {
					pool.Submit(Job{Tile: t, SamplesPerPixel: samplesPerJob})
				}
			} else {
				pool.Submit(Job{Tile: t, SamplesPerPixel: cfg.Samples})
			}
		}
		pool.Close()
	}()

	totalRows := 0
	for _, t := range tiles {
		totalRows += (t.Y1 - t.Y0) * jobsPerTile
	}

	rowsDone := 0
	for result := range pool.Results() {
		accumulateTile(fb, result)
		rowsDone++
		if cfg.Logger != nil && rowsDone%max(1, totalRows/10) == 0 {
			cfg.Logger.Printf("tiled render: %d/%d scanlines accumulated", rowsDone, totalRows)
		}
	}

	strategy := TileFull
	samples := cfg.Samples
	if average {
		strategy = TileAverage
		samples = ceilDiv(cfg.Samples, numWorkers) * numWorkers
	}

	stats := RenderStats{
		Width: scene.Width, Height: scene.Height,
		SamplesPerPixel: samples,
		JobsPerTile:     jobsPerTile,
		TileCount:       len(tiles),
		Strategy:        strategy,
	}
	return fb.Finalize(jobsPerTile), stats
}

func buildTiles(width, height, tileSize int) []Tile {
	var tiles []Tile
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			x1 := min(x+tileSize, width)
			y1 := min(y+tileSize, height)
			tiles = append(tiles, Tile{X0: x, Y0: y, X1: x1, Y1: y1})
		}
	}
	return tiles
}

func accumulateTile(fb *Framebuffer, result JobResult) {
	t := result.Tile
	w := t.X1 - t.X0
	for y := t.Y0; y < t.Y1; y++ {
		for x := t.X0; x < t.X1; x++ {
			fb.Add(x, y, result.Pixels[(y-t.Y0)*w+(x-t.X0)])
		}
	}
}
