package renderer

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
)

// WorkerStats describes the work one worker did during a render
type WorkerStats struct {
	// The worker id.
	ID int

	// The rows assigned to the worker and the percentage of total frame area they represent.
	Rows         RowRange
	FramePercent float64

	// Completed passes, samples taken and samples dropped as non-finite.
	Passes    int
	Samples   int64
	Discarded int64

	// True if the worker stopped early because the render was cancelled.
	Interrupted bool

	// Render time for assigned rows
	RenderTime time.Duration
}

// FrameStats summarizes a render
type FrameStats struct {
	// Individual worker stats.
	Workers []WorkerStats

	// Totals over all workers.
	TotalSamples int64
	Discarded    int64

	// True if any worker stopped before finishing its rows.
	Interrupted bool

	// Total render time for entire frame.
	RenderTime time.Duration
}

// newFrameStats aggregates the per-worker statistics
func newFrameStats(workers []WorkerStats, height int, elapsed time.Duration) FrameStats {
	stats := FrameStats{Workers: workers, RenderTime: elapsed}
	for i := range stats.Workers {
		w := &stats.Workers[i]
		w.FramePercent = 100 * float64(w.Rows.Len()) / float64(height)
		stats.TotalSamples += w.Samples
		stats.Discarded += w.Discarded
		stats.Interrupted = stats.Interrupted || w.Interrupted
	}
	return stats
}

// SamplesPerSecond returns the sampling throughput of the render
func (s FrameStats) SamplesPerSecond() float64 {
	if s.RenderTime <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.RenderTime.Seconds()
}

// WriteTable renders the statistics as a text table
func (s FrameStats) WriteTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "% of frame", "Passes", "Samples", "Discarded", "Render time"})
	for _, stat := range s.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", stat.ID),
			fmt.Sprintf("%d-%d", stat.Rows.Start, stat.Rows.End-1),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			fmt.Sprintf("%d", stat.Passes),
			fmt.Sprintf("%d", stat.Samples),
			fmt.Sprintf("%d", stat.Discarded),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "", "", "TOTAL", fmt.Sprintf("%d", s.TotalSamples), fmt.Sprintf("%d", s.Discarded), s.RenderTime.String()})

	table.Render()
}
