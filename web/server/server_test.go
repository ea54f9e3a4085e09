package server

import (
	"context"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/df07/go-cornell-pathtracer/pkg/core"
	"github.com/df07/go-cornell-pathtracer/pkg/renderer"
	"github.com/df07/go-cornell-pathtracer/pkg/scene"
)

func newTestServer(t *testing.T) (*Server, *renderer.Renderer, context.Context) {
	t.Helper()
	r, err := renderer.NewRenderer(scene.NewLightPanelScene(core.NewVec3(0.25, 0.49, 0.81)), renderer.Config{
		Width: 6, Height: 4, SamplesPerPixel: 1, MaxDepth: 3, NumWorkers: 2, Seed: 1,
	})
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return NewServer(r, cancel), r, ctx
}

func serve(s *Server, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	s, _, _ := newTestServer(t)

	rec := serve(s, http.MethodGet, "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", body)
	}
}

func TestFrame(t *testing.T) {
	s, r, ctx := newTestServer(t)

	// Before rendering every pixel is transparent
	rec := serve(s, http.MethodGet, "/api/frame")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %q", ct)
	}
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("Frame is not a valid PNG: %v", err)
	}
	if size := img.Bounds().Size(); size.X != 6 || size.Y != 4 {
		t.Fatalf("Expected 6x4 frame, got %v", size)
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Errorf("Expected an unwritten pixel to be transparent, got alpha %d", a)
	}

	if _, err := r.Render(ctx); err != nil {
		t.Fatal(err)
	}

	rec = serve(s, http.MethodGet, "/api/frame")
	img, err = png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("Frame is not a valid PNG: %v", err)
	}
	red, green, blue, alpha := img.At(3, 2).RGBA()
	if red>>8 != 127 || green>>8 != 179 || blue>>8 != 230 || alpha>>8 != 255 {
		t.Errorf("Expected (127,179,230,255), got (%d,%d,%d,%d)", red>>8, green>>8, blue>>8, alpha>>8)
	}
}

func TestProgress(t *testing.T) {
	s, r, ctx := newTestServer(t)
	if _, err := r.Render(ctx); err != nil {
		t.Fatal(err)
	}

	rec := serve(s, http.MethodGet, "/api/progress")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var progress renderer.Progress
	if err := json.Unmarshal(rec.Body.Bytes(), &progress); err != nil {
		t.Fatal(err)
	}
	if progress.SamplesDone != 24 || progress.SamplesTotal != 24 || progress.Fraction != 1 {
		t.Errorf("Unexpected progress %+v", progress)
	}
}

func TestScenes(t *testing.T) {
	s, _, _ := newTestServer(t)

	rec := serve(s, http.MethodGet, "/api/scenes")
	var infos []scene.SceneInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &infos); err != nil {
		t.Fatal(err)
	}
	if len(infos) != len(scene.Names()) {
		t.Errorf("Expected %d scenes, got %d", len(scene.Names()), len(infos))
	}
}

func TestStop(t *testing.T) {
	s, _, ctx := newTestServer(t)

	if rec := serve(s, http.MethodGet, "/api/stop"); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected GET /api/stop to be rejected, got %d", rec.Code)
	}
	if ctx.Err() != nil {
		t.Fatal("Render context cancelled before stop was requested")
	}

	rec := serve(s, http.MethodPost, "/api/stop")
	if rec.Code != http.StatusAccepted {
		t.Errorf("Expected 202, got %d", rec.Code)
	}
	if ctx.Err() == nil {
		t.Error("Expected stop to cancel the render context")
	}
}
