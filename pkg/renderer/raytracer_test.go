package renderer

import (
	"bytes"
	"context"
	"errors"
	"image"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/integrator"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

func TestRenderConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*RenderConfig)
		wantErr bool
	}{
		{"defaults", func(*RenderConfig) {}, false},
		{"zero width", func(c *RenderConfig) { c.Width = 0 }, true},
		{"negative height", func(c *RenderConfig) { c.Height = -5 }, true},
		{"zero tile size", func(c *RenderConfig) { c.TileSize = 0 }, true},
		{"negative workers", func(c *RenderConfig) { c.NumWorkers = -1 }, true},
		{"zero beam", func(c *RenderConfig) { c.SuperSampling.BeamSize = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultRenderConfig()
			tt.modify(&config)
			err := config.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidRenderConfig) {
				t.Errorf("expected ErrInvalidRenderConfig, got %v", err)
			}
		})
	}
}

func TestNewRaytracer_RequiresCameraAndIntegrator(t *testing.T) {
	camera := newTestCamera(t, 0, 0)
	if _, err := NewRaytracer(nil, camera, DefaultRenderConfig(), silentLogger{}); err == nil {
		t.Error("expected an error without an integrator")
	}
	if _, err := NewRaytracer(constantIntegrator(core.Vec3{}), nil, DefaultRenderConfig(), silentLogger{}); err == nil {
		t.Error("expected an error without a camera")
	}
}

func TestRaytracer_RenderWritesEveryPixelOnce(t *testing.T) {
	config := RenderConfig{
		Width:         37,
		Height:        23,
		TileSize:      8,
		NumWorkers:    4,
		SuperSampling: SuperSamplingConfig{BeamSize: 1},
	}
	integ := constantIntegrator(core.NewVec3(0.1, 0.2, 0.3))
	rt, err := NewRaytracer(integ, newTestCamera(t, 1, 0), config, silentLogger{})
	if err != nil {
		t.Fatalf("NewRaytracer failed: %v", err)
	}

	sink := newCountingSink()
	stats, err := rt.Render(context.Background(), sink)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if len(sink.writes) != config.Width*config.Height {
		t.Errorf("expected %d pixels, got %d", config.Width*config.Height, len(sink.writes))
	}
	for pixel, count := range sink.writes {
		if count != 1 {
			t.Errorf("pixel %v written %d times", pixel, count)
		}
	}

	if stats.TotalPixels != 851 || stats.TotalSamples != 851 {
		t.Errorf("expected 851 pixels and samples, got %d and %d", stats.TotalPixels, stats.TotalSamples)
	}
	if stats.TilesRendered != 15 {
		t.Errorf("expected 15 tiles, got %d", stats.TilesRendered)
	}
	if stats.MinSamples != 1 || stats.MaxSamplesUsed != 1 || stats.AverageSamples != 1 {
		t.Errorf("unexpected sample stats %+v", stats)
	}
	if integ.calls.Load() != 851 {
		t.Errorf("expected 851 integrator calls, got %d", integ.calls.Load())
	}
}

func TestRaytracer_RenderCancelled(t *testing.T) {
	config := DefaultRenderConfig()
	config.Width = 64
	config.Height = 64
	config.TileSize = 16
	rt, err := NewRaytracer(constantIntegrator(core.Vec3{}), newTestCamera(t, 0, 0), config, silentLogger{})
	if err != nil {
		t.Fatalf("NewRaytracer failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sink := newCountingSink()
	_, err = rt.Render(ctx, sink)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(sink.writes) != 0 {
		t.Errorf("expected no pixels after cancellation, got %d", len(sink.writes))
	}
}

func TestRaytracer_RenderIsDeterministic(t *testing.T) {
	config := RenderConfig{
		Width:         24,
		Height:        16,
		TileSize:      5,
		NumWorkers:    3,
		SuperSampling: SuperSamplingConfig{BeamSize: 3},
	}
	camera := newTestCamera(t, 0.5, 2)
	integ := &funcIntegrator{colorFn: func(ray core.Ray) core.Vec3 {
		return ray.Direction.Add(core.Splat(1)).Multiply(0.5)
	}}

	render := func() *image.RGBA {
		rt, err := NewRaytracer(integ, camera, config, silentLogger{})
		if err != nil {
			t.Fatalf("NewRaytracer failed: %v", err)
		}
		sink := NewImageSink(config.Width, config.Height, 1)
		if _, err := rt.Render(context.Background(), sink); err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		return sink.Image()
	}

	first := render()
	second := render()
	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("two renders of the same scene differ")
	}
}

func TestRaytracer_RenderBuiltinScene(t *testing.T) {
	s, err := scene.Create("two-spheres")
	if err != nil {
		t.Fatalf("scene.Create failed: %v", err)
	}
	camera, err := s.NewCamera()
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}

	config := DefaultRenderConfig()
	config.Width = 21
	config.Height = 21
	config.TileSize = 7
	integ := integrator.NewRecursiveIntegrator(s, integrator.DefaultConfig())
	rt, err := NewRaytracer(integ, camera, config, silentLogger{})
	if err != nil {
		t.Fatalf("NewRaytracer failed: %v", err)
	}

	sink := newCountingSink()
	if _, err := rt.Render(context.Background(), sink); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(sink.writes) != 21*21 {
		t.Errorf("expected %d pixels, got %d", 21*21, len(sink.writes))
	}
	if sink.colors[[2]int{0, 0}] != s.Background {
		t.Errorf("corner pixel should show the background, got %v", sink.colors[[2]int{0, 0}])
	}
}

func TestRaytracer_PrintGrid(t *testing.T) {
	config := DefaultRenderConfig()
	config.Width = 5
	config.Height = 5
	rt, err := NewRaytracer(constantIntegrator(core.Vec3{}), newTestCamera(t, 0, 0), config, silentLogger{})
	if err != nil {
		t.Fatalf("NewRaytracer failed: %v", err)
	}

	sink := newCountingSink()
	if err := rt.PrintGrid(sink, 2, core.Splat(1)); err != nil {
		t.Fatalf("PrintGrid failed: %v", err)
	}
	// Only pixels with both coordinates odd are left untouched
	if len(sink.writes) != 21 {
		t.Errorf("expected 21 grid pixels, got %d", len(sink.writes))
	}
	if _, ok := sink.writes[[2]int{1, 3}]; ok {
		t.Error("pixel (1,3) is off the grid but was written")
	}

	if err := rt.PrintGrid(sink, 0, core.Splat(1)); err == nil {
		t.Error("expected an error for a zero interval")
	}
}

func TestNewTileGrid_CoversImage(t *testing.T) {
	tiles := NewTileGrid(10, 7, 4)
	if len(tiles) != 6 {
		t.Fatalf("expected 6 tiles, got %d", len(tiles))
	}

	covered := make(map[image.Point]int)
	for i, tile := range tiles {
		if tile.ID != i {
			t.Errorf("tile %d has ID %d", i, tile.ID)
		}
		for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
			for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
				covered[image.Pt(x, y)]++
			}
		}
	}
	if len(covered) != 70 {
		t.Errorf("expected 70 covered pixels, got %d", len(covered))
	}
	for p, n := range covered {
		if n != 1 {
			t.Errorf("pixel %v covered by %d tiles", p, n)
		}
	}
	if last := tiles[5].Bounds; last != image.Rect(8, 4, 10, 7) {
		t.Errorf("expected the last tile to be clipped to the image, got %v", last)
	}
}
