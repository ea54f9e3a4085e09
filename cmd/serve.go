package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/df07/go-cornell-pathtracer/pkg/renderer"
	"github.com/df07/go-cornell-pathtracer/web/server"
	"github.com/urfave/cli"
)

const shutdownTimeout = 5 * time.Second

// Render a frame while serving its progress over HTTP. The final frame stays
// available until the process is interrupted or a client posts to /api/stop.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	r, err := setupRenderer(ctx)
	if err != nil {
		return err
	}

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewServer(r, stop)
	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(ctx.String("addr")); err != nil {
			serverErr <- err
			stop()
		}
	}()

	done := make(chan struct{})
	go reportProgress(r, ctx.Duration("report-interval"), done)

	stats, err := r.Render(renderCtx)
	close(done)
	if err != nil && !errors.Is(err, renderer.ErrInterrupted) {
		return err
	}
	displayFrameStats(stats)

	if err == nil {
		logger.Notice("render complete; serving final frame until stopped")
		<-renderCtx.Done()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	select {
	case err := <-serverErr:
		return err
	default:
	}

	return saveFrame(r, ctx.String("out"))
}
