package renderer

import (
	"math/rand"
	"sync"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
)

// Tile is a rectangular pixel region, [X0,X1)x[Y0,Y1), assigned as a
// rendering work unit.
type Tile struct {
	X0, Y0, X1, Y1 int
}

// Job is one unit of work handed to a worker: render Tile at SamplesPerPixel
// using the scene's camera, world, and background.
type Job struct {
	Tile            Tile
	SamplesPerPixel int
}

// JobResult carries one published scanline of color contributions back to
// the coordinator: a one-row Tile and its pixel colors. Contributions are
// unreduced averages per job; the coordinator divides by jobsPerTile once
// every job has reported.
type JobResult struct {
	Tile   Tile
	Pixels []core.Vec3 // row-major within the tile, length (X1-X0)*(Y1-Y0)
}

// WorkerPool runs N long-lived goroutines, each pulling jobs from a shared
// channel, rendering them against its own private *rand.Rand source (no
// global RNG lock on the hot path), and publishing results to a shared
// result channel.
type WorkerPool struct {
	jobs    chan Job
	results chan JobResult
	wg      sync.WaitGroup
}

// NewWorkerPool starts numWorkers goroutines rendering against scene.
func NewWorkerPool(scene *Scene, numWorkers int, seed int64) *WorkerPool {
	wp := &WorkerPool{
		jobs:    make(chan Job, 4096),
		results: make(chan JobResult, 4096),
	}

	for i := 0; i < numWorkers; i++ {
		rnd := rand.New(rand.NewSource(seed + int64(i)))
		wp.wg.Add(1)
		go wp.runWorker(scene, rnd)
	}

	return wp
}

func (wp *WorkerPool) runWorker(scene *Scene, rnd *rand.Rand) {
	defer wp.wg.Done()
	for job := range wp.jobs {
		renderJob(scene, job, rnd, wp.results)
	}
}

// Submit enqueues a job. Submit must not be called after Close.
func (wp *WorkerPool) Submit(job Job) { wp.jobs <- job }

// Close signals workers that no more jobs will arrive, waits for them to
// drain, and closes the result channel.
func (wp *WorkerPool) Close() {
	close(wp.jobs)
	wp.wg.Wait()
	close(wp.results)
}

// Results returns the channel of completed job results.
func (wp *WorkerPool) Results() <-chan JobResult { return wp.results }

// renderJob samples every pixel in job.Tile at job.SamplesPerPixel, rows
// top-to-bottom, columns left-to-right, publishing each completed scanline
// to the result channel as soon as it finishes.
func renderJob(scene *Scene, job Job, rnd *rand.Rand, results chan<- JobResult) {
	t := job.Tile
	w := t.X1 - t.X0

	for y := t.Y0; y < t.Y1; y++ {
		row := make([]core.Vec3, w)
		for x := t.X0; x < t.X1; x++ {
			var sum core.Vec3
			for s := 0; s < job.SamplesPerPixel; s++ {
				u := (float64(x) + rnd.Float64()) / float64(scene.Width)
				v := 1.0 - (float64(y)+rnd.Float64())/float64(scene.Height)
				ray := scene.Camera.GetRay(rnd, u, v)
				sum = sum.Add(RayColor(ray, scene.World, scene.Background, MaxDepth, rnd))
			}
			row[x-t.X0] = sum.Multiply(1.0 / float64(job.SamplesPerPixel))
		}
		results <- JobResult{Tile: Tile{X0: t.X0, Y0: y, X1: t.X1, Y1: y + 1}, Pixels: row}
	}
}
