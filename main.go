package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
	"github.com/halvorsen-dev/pathtracer/pkg/output"
	"github.com/halvorsen-dev/pathtracer/pkg/renderer"
	"github.com/halvorsen-dev/pathtracer/pkg/scene"
)

// zerologPrintf adapts zerolog.Logger to the core/renderer Logger contract
// (a single Printf method), so the rest of this codebase never depends on
// zerolog directly.
type zerologPrintf struct {
	log zerolog.Logger
}

func (z zerologPrintf) Printf(format string, args ...interface{}) {
	z.log.Info().Msg(strings.TrimSuffix(fmt.Sprintf(format, args...), "\n"))
}

func main() {
	var (
		samples       uint32
		multithreaded bool
		outputPath    string
		sceneName     string
		interactive   bool
		strategyName  string
		tileSize      uint32
	)

	root := &cobra.Command{
		Use:   "raytracer",
		Short: "An offline Monte-Carlo path tracer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(renderRequest{
				samples:       int(samples),
				multithreaded: multithreaded,
				outputPath:    outputPath,
				sceneName:     sceneName,
				strategyName:  strategyName,
				tileSize:      int(tileSize),
			})
		},
	}

	flags := root.Flags()
	flags.Uint32VarP(&samples, "samples", "s", 0, "target samples per pixel (required)")
	flags.BoolVarP(&multithreaded, "multithreaded", "m", false, "enable parallel rendering")
	flags.StringVarP(&outputPath, "output", "o", "", "output file path (.png for PNG, otherwise PPM; omit for stdout PPM)")
	flags.StringVar(&sceneName, "scene", "jumping-balls", fmt.Sprintf("scene preset: one of %s", strings.Join(scene.Names, ", ")))
	flags.BoolVarP(&interactive, "interactive", "i", false, "reserved for interactive rendering; has no effect")
	flags.StringVar(&strategyName, "strategy", "tile-average", "render strategy: progressive-average, tile-full, or tile-average")
	flags.Uint32Var(&tileSize, "tile-size", 64, "tile edge length in pixels")
	root.MarkFlagRequired("samples")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

type renderRequest struct {
	samples       int
	multithreaded bool
	outputPath    string
	sceneName     string
	strategyName  string
	tileSize      int
}

const (
	defaultWidth  = 400
	defaultHeight = 225
)

func run(req renderRequest) error {
	logger := zerologPrintf{log: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()}

	strategy, err := renderer.ParseStrategy(req.strategyName)
	if err != nil {
		return err
	}

	seed := time.Now().UnixNano()
	sceneRnd := rand.New(rand.NewSource(seed))

	sc, err := scene.Build(req.sceneName, defaultWidth, defaultHeight, sceneRnd)
	if err != nil {
		return fmt.Errorf("failed to build scene %q: %w", req.sceneName, err)
	}

	logger.Printf("rendering %q at %dx%d, %d samples, strategy=%s, multithreaded=%v",
		req.sceneName, sc.Width, sc.Height, req.samples, strategy, req.multithreaded)

	// The bar must stay off stdout: with no -o flag the PPM stream goes there.
	bar := pb.New(sc.Width * sc.Height).SetWriter(os.Stderr).Start()
	defer bar.Finish()

	cfg := renderer.RenderConfig{
		Samples:       req.samples,
		Multithreaded: req.multithreaded,
		Strategy:      strategy,
		TileSize:      req.tileSize,
		Logger:        logger,
		Seed:          seed,
	}

	pixels, stats := renderer.Render(sc, cfg)
	bar.SetCurrent(int64(sc.Width * sc.Height))

	logger.Printf("render complete: %d tiles, %d jobs/tile, %d samples/pixel",
		stats.TileCount, stats.JobsPerTile, stats.SamplesPerPixel)

	return writeOutput(req.outputPath, pixels, sc.Width, sc.Height)
}

func writeOutput(path string, pixels []core.Vec3, width, height int) error {
	if path == "" {
		return output.WritePPM(os.Stdout, pixels, width, height)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if strings.HasSuffix(strings.ToLower(path), ".png") {
		return output.WritePNG(f, pixels, width, height)
	}
	return output.WritePPM(f, pixels, width, height)
}
