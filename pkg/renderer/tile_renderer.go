package renderer

import (
	"context"
	"image"
	"math/rand"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/integrator"
)

// Tile represents a rectangular region of the image
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	Random *rand.Rand      // Tile-specific random generator for deterministic results
}

// NewTile creates a new tile with the specified bounds
func NewTile(id int, bounds image.Rectangle) *Tile {
	// Create deterministic random generator based on tile ID
	random := rand.New(rand.NewSource(int64(id + 42))) // +42 to avoid seed 0

	return &Tile{
		ID:     id,
		Bounds: bounds,
		Random: random,
	}
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	tileID := 0

	// Calculate number of tiles in each dimension
	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1)))
			tileID++
		}
	}

	return tiles
}

// TileRenderer traces the pixels of individual tiles
type TileRenderer struct {
	integrator integrator.Integrator
	camera     *geometry.Camera
	width      int
	height     int
	config     SuperSamplingConfig
}

// NewTileRenderer creates a tile renderer for an image of the given size
func NewTileRenderer(integ integrator.Integrator, camera *geometry.Camera, width, height int, config SuperSamplingConfig) *TileRenderer {
	return &TileRenderer{
		integrator: integ,
		camera:     camera,
		width:      width,
		height:     height,
		config:     config,
	}
}

// RenderTileBounds renders pixels within the specified bounds into the sink.
// The context is checked before each row.
func (tr *TileRenderer) RenderTileBounds(ctx context.Context, bounds image.Rectangle, sink PixelSink, random *rand.Rand) (RenderStats, error) {
	sampler := newSuperSampler(tr.integrator, tr.camera, tr.config, core.NewRandomSampler(random))
	stats := tr.initRenderStatsForBounds(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			before := sampler.Samples()
			ray := tr.camera.ConstructRay(tr.width, tr.height, x, y)
			sink.WritePixel(x, y, sampler.TraceRay(ray))
			tr.updateStats(&stats, sampler.Samples()-before)
		}
	}

	tr.finalizeStats(&stats)
	return stats, nil
}

// initRenderStatsForBounds initializes the render statistics tracking for specific bounds
func (tr *TileRenderer) initRenderStatsForBounds(bounds image.Rectangle) RenderStats {
	return RenderStats{
		TotalPixels: bounds.Dx() * bounds.Dy(),
		MinSamples:  -1, // Set by the first pixel
	}
}

// updateStats updates the render statistics with data from a single pixel
func (tr *TileRenderer) updateStats(stats *RenderStats, samplesUsed int) {
	stats.TotalSamples += samplesUsed
	if stats.MinSamples < 0 {
		stats.MinSamples = samplesUsed
	} else {
		stats.MinSamples = min(stats.MinSamples, samplesUsed)
	}
	stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, samplesUsed)
}

// finalizeStats calculates final statistics after all pixels are rendered
func (tr *TileRenderer) finalizeStats(stats *RenderStats) {
	stats.TilesRendered = 1
	if stats.MinSamples < 0 {
		stats.MinSamples = 0
	}
	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
}
