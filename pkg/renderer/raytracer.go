package renderer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/integrator"
)

// ErrInvalidRenderConfig is returned for render settings that cannot produce an image
var ErrInvalidRenderConfig = errors.New("invalid render config")

// RenderConfig contains rendering configuration
type RenderConfig struct {
	Width         int                 // Image width in pixels
	Height        int                 // Image height in pixels
	TileSize      int                 // Side of the square tiles handed to workers
	NumWorkers    int                 // Number of parallel workers (0 = auto-detect)
	SuperSampling SuperSamplingConfig // Aperture sampling per pixel
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:         500,
		Height:        500,
		TileSize:      32,
		NumWorkers:    0,
		SuperSampling: DefaultSuperSamplingConfig(),
	}
}

// Validate reports the first unusable setting
func (c RenderConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidRenderConfig, c.Width, c.Height)
	case c.TileSize <= 0:
		return fmt.Errorf("%w: tile size %d", ErrInvalidRenderConfig, c.TileSize)
	case c.NumWorkers < 0:
		return fmt.Errorf("%w: %d workers", ErrInvalidRenderConfig, c.NumWorkers)
	case c.SuperSampling.BeamSize < 1:
		return fmt.Errorf("%w: beam size %d", ErrInvalidRenderConfig, c.SuperSampling.BeamSize)
	}
	return nil
}

// Raytracer renders a camera view of an integrator into a pixel sink
type Raytracer struct {
	integrator integrator.Integrator
	camera     *geometry.Camera
	config     RenderConfig
	logger     core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(integ integrator.Integrator, camera *geometry.Camera, config RenderConfig, logger core.Logger) (*Raytracer, error) {
	if integ == nil {
		return nil, errors.New("raytracer requires an integrator")
	}
	if camera == nil {
		return nil, errors.New("raytracer requires a camera")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{
		integrator: integ,
		camera:     camera,
		config:     config,
		logger:     logger,
	}, nil
}

// Config returns the render configuration
func (rt *Raytracer) Config() RenderConfig {
	return rt.config
}

// Render traces every pixel exactly once into the sink. Tiles are rendered by
// a fixed pool of workers; on cancellation the context error is returned after
// all workers have drained.
func (rt *Raytracer) Render(ctx context.Context, sink PixelSink) (RenderStats, error) {
	start := time.Now()
	tiles := NewTileGrid(rt.config.Width, rt.config.Height, rt.config.TileSize)

	tileRenderer := NewTileRenderer(rt.integrator, rt.camera, rt.config.Width, rt.config.Height, rt.config.SuperSampling)
	workerPool := NewWorkerPool(tileRenderer, len(tiles), rt.config.NumWorkers)
	workerPool.Start()

	rt.logger.Printf("Rendering %dx%d in %d tiles with %d workers (beam %d, adaptive %v)\n",
		rt.config.Width, rt.config.Height, len(tiles), workerPool.GetNumWorkers(),
		rt.config.SuperSampling.BeamSize, rt.config.SuperSampling.Adaptive)

	for taskID, tile := range tiles {
		workerPool.SubmitTask(TileTask{
			Tile:   tile,
			TaskID: taskID,
			Ctx:    ctx,
			Sink:   sink,
		})
	}

	var stats RenderStats
	var firstErr error
	for i := 0; i < len(tiles); i++ {
		result, ok := workerPool.GetResult()
		if !ok {
			firstErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}
		stats.merge(result.Stats)
	}
	workerPool.Stop()

	if firstErr != nil {
		return stats, firstErr
	}

	rt.logger.Printf("Render completed in %v: %d samples, %.2f avg per pixel\n",
		time.Since(start), stats.TotalSamples, stats.AverageSamples)
	return stats, nil
}

// PrintGrid overwrites every interval-th row and column of the image with color
func (rt *Raytracer) PrintGrid(sink PixelSink, interval int, color core.Vec3) error {
	if interval <= 0 {
		return fmt.Errorf("grid interval must be positive, got %d", interval)
	}
	for y := 0; y < rt.config.Height; y++ {
		for x := 0; x < rt.config.Width; x++ {
			if x%interval == 0 || y%interval == 0 {
				sink.WritePixel(x, y, color)
			}
		}
	}
	return nil
}
