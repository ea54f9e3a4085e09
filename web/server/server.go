package server

import (
	"bytes"
	"context"
	"errors"
	"image"
	"net/http"
	"sync"
	"time"

	"github.com/df07/go-cornell-pathtracer/pkg/log"
	"github.com/df07/go-cornell-pathtracer/pkg/renderer"
	"github.com/df07/go-cornell-pathtracer/pkg/scene"
	"github.com/fogleman/gg"
	"github.com/labstack/echo/v4"
)

// Server is the display consumer of a running render. It serves PNG
// snapshots of the shared frame buffer and progress reports, and maps a
// stop request to cancellation of the render.
type Server struct {
	renderer *renderer.Renderer
	stop     context.CancelFunc
	echo     *echo.Echo
	logger   log.Logger

	// Snapshot target reused across frame requests
	frameMu sync.Mutex
	frame   *image.RGBA
}

// NewServer creates a server for r. stop is called when a client asks the
// render to end.
func NewServer(r *renderer.Renderer, stop context.CancelFunc) *Server {
	fb := r.FrameBuffer()
	s := &Server{
		renderer: r,
		stop:     stop,
		echo:     echo.New(),
		logger:   log.New("server"),
		frame:    image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height())),
	}

	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.Use(s.logRequests)

	s.echo.GET("/api/health", s.handleHealth)
	s.echo.GET("/api/frame", s.handleFrame)
	s.echo.GET("/api/progress", s.handleProgress)
	s.echo.GET("/api/scenes", s.handleScenes)
	s.echo.POST("/api/stop", s.handleStop)

	return s
}

// Handler returns the HTTP handler serving the API
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves on addr until Shutdown is called
func (s *Server) Start(addr string) error {
	s.logger.Noticef("serving frame at http://%s/api/frame", addr)
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Notice("shutting down")
	return s.echo.Shutdown(ctx)
}

func (s *Server) logRequests(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		s.logger.Debugf("%s %s (%s)", c.Request().Method, c.Request().URL.Path, time.Since(start))
		return err
	}
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleFrame copies the frame buffer row by row and encodes the copy, so
// no frame buffer lock is held while encoding
func (s *Server) handleFrame(c echo.Context) error {
	s.frameMu.Lock()
	defer s.frameMu.Unlock()

	if err := s.renderer.FrameBuffer().Snapshot(s.frame); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	var buf bytes.Buffer
	if err := gg.NewContextForRGBA(s.frame).EncodePNG(&buf); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

func (s *Server) handleProgress(c echo.Context) error {
	return c.JSON(http.StatusOK, s.renderer.Progress())
}

func (s *Server) handleScenes(c echo.Context) error {
	return c.JSON(http.StatusOK, scene.List())
}

func (s *Server) handleStop(c echo.Context) error {
	s.logger.Notice("stop requested")
	s.stop()
	return c.JSON(http.StatusAccepted, map[string]string{"status": "stopping"})
}
