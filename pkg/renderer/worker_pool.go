package renderer

import (
	"context"
	"sync"
	"time"

	"github.com/df07/go-cornell-pathtracer/pkg/core"
)

// WorkerPool runs one worker per row range for the length of a render
type WorkerPool struct {
	workers []*Worker
	wg      sync.WaitGroup
}

// Worker renders every sample of every pixel in its own rows. It owns its
// sampler and the accumulation slots of its rows, so it shares nothing
// mutable with other workers except the frame buffer.
type Worker struct {
	ID       int
	Rows     RowRange
	renderer *Renderer
	sampler  core.Sampler
	stats    WorkerStats
}

// NewWorkerPool creates a worker for each row range, seeding worker i with seed+i
func NewWorkerPool(r *Renderer, ranges []RowRange, seed int64) *WorkerPool {
	wp := &WorkerPool{}
	for i, rows := range ranges {
		wp.workers = append(wp.workers, &Worker{
			ID:       i,
			Rows:     rows,
			renderer: r,
			sampler:  core.NewSeededSampler(seed + int64(i)),
			stats:    WorkerStats{ID: i, Rows: rows},
		})
	}
	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, &wp.wg)
	}
}

// Wait blocks until every worker has returned
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return len(wp.workers)
}

// Stats returns the per-worker statistics. Only valid after Wait.
func (wp *WorkerPool) Stats() []WorkerStats {
	stats := make([]WorkerStats, len(wp.workers))
	for i, worker := range wp.workers {
		stats[i] = worker.stats
	}
	return stats
}

// run is the main worker loop. Samples are taken pass by pass: every pixel
// of the worker's rows gets sample s before any gets sample s+1. The
// cancellation signal is polled before each pixel.
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	start := time.Now()
	defer func() { w.stats.RenderTime = time.Since(start) }()

	done := ctx.Done()
	r := w.renderer
	for pass := 0; pass < r.config.SamplesPerPixel; pass++ {
		for y := w.Rows.Start; y < w.Rows.End; y++ {
			for x := 0; x < r.config.Width; x++ {
				select {
				case <-done:
					w.stats.Interrupted = true
					return
				default:
				}
				w.renderSample(x, y, pass)
			}
		}
		w.stats.Passes++

		if w.ID == 0 {
			r.logger.Infof("worker 0 finished pass %d/%d", pass+1, r.config.SamplesPerPixel)
		}
	}
}

// renderSample traces one jittered sample through pixel (x, y), folds it
// into the pixel's running sum and publishes the tone-mapped mean
func (w *Worker) renderSample(x, y, pass int) {
	r := w.renderer
	width, height := r.config.Width, r.config.Height

	// Camera v grows upward while rows grow downward
	j := height - 1 - y
	u := (float64(x) + w.sampler.Get1D()) / float64(width)
	v := (float64(j) + w.sampler.Get1D()) / float64(height)

	ray := r.camera.GetRay(u, v, w.sampler)
	color, ok := sanitize(r.integrator.RayColor(ray, r.scene, w.sampler))
	if !ok {
		w.stats.Discarded++
	}

	idx := y*width + x
	r.accum[idx] = r.accum[idx].Add(color)
	mean := r.accum[idx].Divide(float64(pass + 1))
	r.frame.Set(x, y, ToneMap(mean))

	w.stats.Samples++
	r.samplesDone.Add(1)
}
