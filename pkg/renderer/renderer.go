package renderer

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/df07/go-cornell-pathtracer/pkg/core"
	"github.com/df07/go-cornell-pathtracer/pkg/geometry"
	"github.com/df07/go-cornell-pathtracer/pkg/integrator"
	"github.com/df07/go-cornell-pathtracer/pkg/log"
	"github.com/df07/go-cornell-pathtracer/pkg/scene"
)

// Renderer drives a multi-threaded progressive render of a scene into a
// shared frame buffer. Render must not be called concurrently with itself.
type Renderer struct {
	config     Config
	scene      *scene.Scene
	camera     *geometry.Camera
	integrator integrator.Integrator
	logger     log.Logger

	// One running radiance sum per pixel. Rows are owned by exactly one
	// worker, so the slots need no locking.
	accum []core.Vec3
	frame *FrameBuffer

	samplesDone atomic.Int64
	startedAt   atomic.Int64 // unix nanoseconds, zero before the first render
	finishedAt  atomic.Int64 // unix nanoseconds, zero while rendering
}

// Progress reports how far a render has come
type Progress struct {
	SamplesDone  int64         `json:"samplesDone"`
	SamplesTotal int64         `json:"samplesTotal"`
	Fraction     float64       `json:"fraction"`
	Elapsed      time.Duration `json:"elapsed"`
}

// NewRenderer validates config and prepares sc for rendering. The scene's
// BVH is built if it has not been already; the camera's aspect ratio
// follows the frame dims.
func NewRenderer(sc *scene.Scene, config Config) (*Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.NumWorkers <= 0 {
		config.NumWorkers = DefaultNumWorkers()
	}
	if sc.BVH == nil {
		if err := sc.Preprocess(); err != nil {
			return nil, fmt.Errorf("renderer: preprocessing scene: %w", err)
		}
	}

	cameraConfig := sc.CameraConfig
	cameraConfig.AspectRatio = float64(config.Width) / float64(config.Height)

	return &Renderer{
		config:     config,
		scene:      sc,
		camera:     geometry.NewCamera(cameraConfig),
		integrator: integrator.NewPathTracingIntegrator(scene.SamplingConfig{MaxDepth: config.MaxDepth}),
		logger:     log.New("renderer"),
		accum:      make([]core.Vec3, config.Width*config.Height),
		frame:      NewFrameBuffer(config.Width, config.Height),
	}, nil
}

// Config returns the renderer's configuration with defaults applied
func (r *Renderer) Config() Config {
	return r.config
}

// FrameBuffer returns the shared display buffer
func (r *Renderer) FrameBuffer() *FrameBuffer {
	return r.frame
}

// Progress returns a snapshot of the current render's progress. It is safe
// to call from any goroutine.
func (r *Renderer) Progress() Progress {
	total := int64(r.config.Width) * int64(r.config.Height) * int64(r.config.SamplesPerPixel)
	done := r.samplesDone.Load()

	progress := Progress{
		SamplesDone:  done,
		SamplesTotal: total,
		Fraction:     float64(done) / float64(total),
	}
	if started := r.startedAt.Load(); started != 0 {
		if finished := r.finishedAt.Load(); finished != 0 {
			progress.Elapsed = time.Duration(finished - started)
		} else {
			progress.Elapsed = time.Since(time.Unix(0, started))
		}
	}
	return progress
}

// Render clears the frame and renders every sample of every pixel, or
// until ctx is cancelled. Cancellation is observed before each pixel
// sample; on cancellation the statistics gathered so far are returned with
// an error wrapping both ErrInterrupted and the context's error.
func (r *Renderer) Render(ctx context.Context) (FrameStats, error) {
	for i := range r.accum {
		r.accum[i] = core.Vec3{}
	}
	r.frame.Clear()
	r.samplesDone.Store(0)

	ranges := PartitionRows(r.config.Height, r.config.NumWorkers)
	pool := NewWorkerPool(r, ranges, r.config.Seed)

	r.logger.Noticef(
		"rendering %q at %dx%d with %d spp, max depth %d, %d workers",
		r.scene.Name, r.config.Width, r.config.Height, r.config.SamplesPerPixel, r.config.MaxDepth, pool.GetNumWorkers(),
	)
	for i, rows := range ranges {
		r.logger.Debugf("worker %d: rows %d-%d", i, rows.Start, rows.End-1)
	}

	start := time.Now()
	r.finishedAt.Store(0)
	r.startedAt.Store(start.UnixNano())
	pool.Start(ctx)
	pool.Wait()
	r.finishedAt.Store(time.Now().UnixNano())

	stats := newFrameStats(pool.Stats(), r.config.Height, time.Since(start))
	if stats.Discarded > 0 {
		r.logger.Debugf("discarded %d non-finite samples", stats.Discarded)
	}

	if stats.Interrupted {
		r.logger.Noticef("render interrupted after %s (%.1f%% complete)", stats.RenderTime, 100*r.Progress().Fraction)
		return stats, fmt.Errorf("%w: %w", ErrInterrupted, context.Cause(ctx))
	}

	r.logger.Noticef("rendered frame in %s", stats.RenderTime)
	return stats, nil
}
