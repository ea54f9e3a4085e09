package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/df07/go-cornell-pathtracer/pkg/renderer"
	"github.com/df07/go-cornell-pathtracer/pkg/scene"
	"github.com/fogleman/gg"
	"github.com/urfave/cli"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	r, err := setupRenderer(ctx)
	if err != nil {
		return err
	}

	// Ctrl-C stops the workers; the partial frame is still reported and saved
	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go reportProgress(r, ctx.Duration("report-interval"), done)

	stats, err := r.Render(renderCtx)
	close(done)
	if err != nil && !errors.Is(err, renderer.ErrInterrupted) {
		return err
	}

	// Display stats
	displayFrameStats(stats)

	return saveFrame(r, ctx.String("out"))
}

// Create the scene named by the scene flag and a renderer for it. Frame
// settings left at zero fall back to the scene's recommendations.
func setupRenderer(ctx *cli.Context) (*renderer.Renderer, error) {
	sc, err := scene.Create(ctx.String("scene"))
	if err != nil {
		return nil, err
	}

	opts := renderer.Config{
		Width:           ctx.Int("width"),
		Height:          ctx.Int("height"),
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("depth"),
		NumWorkers:      ctx.Int("workers"),
		Seed:            ctx.Int64("seed"),
	}
	if opts.Width == 0 {
		opts.Width = sc.SamplingConfig.Width
	}
	if opts.Height == 0 {
		opts.Height = sc.SamplingConfig.Height
	}
	if opts.SamplesPerPixel == 0 {
		opts.SamplesPerPixel = sc.SamplingConfig.SamplesPerPixel
	}
	if opts.MaxDepth == 0 {
		opts.MaxDepth = sc.SamplingConfig.MaxDepth
	}

	// Camera overrides
	if ctx.IsSet("vfov") {
		sc.CameraConfig.VFov = ctx.Float64("vfov")
	}
	if ctx.IsSet("aperture") {
		sc.CameraConfig.Aperture = ctx.Float64("aperture")
	}
	if ctx.IsSet("focus-dist") {
		sc.CameraConfig.FocusDistance = ctx.Float64("focus-dist")
	}
	if ctx.IsSet("shutter-open") {
		sc.CameraConfig.Time0 = ctx.Float64("shutter-open")
	}
	if ctx.IsSet("shutter-close") {
		sc.CameraConfig.Time1 = ctx.Float64("shutter-close")
	}

	if err := sc.Preprocess(); err != nil {
		return nil, err
	}
	stats := sc.BVH.Stats()
	logger.Infof("scene %q: %d primitives, BVH with %d nodes (max depth %d)", sc.Name, sc.GetPrimitiveCount(), stats.TotalNodes, stats.MaxDepth)

	return renderer.NewRenderer(sc, opts)
}

// Log render progress every interval until done is closed.
func reportProgress(r *renderer.Renderer, interval time.Duration, done <-chan struct{}) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			p := r.Progress()
			logger.Noticef("%5.1f%% (%d/%d samples, %s)", 100*p.Fraction, p.SamplesDone, p.SamplesTotal, p.Elapsed.Truncate(time.Millisecond))
		}
	}
}

// Write the current frame to path as a PNG. An empty path is a no-op.
func saveFrame(r *renderer.Renderer, path string) error {
	if path == "" {
		return nil
	}
	if err := gg.SavePNG(path, r.FrameBuffer().Image()); err != nil {
		return err
	}
	logger.Noticef("frame saved to %s", path)
	return nil
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	stats.WriteTable(&buf)
	logger.Noticef("frame statistics (%.0f samples/sec)\n%s", stats.SamplesPerSecond(), buf.String())
}
