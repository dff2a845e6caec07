package renderer

import (
	"image"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int     // Total number of pixels rendered
	TotalSamples   int     // Total number of rays traced through the integrator
	AverageSamples float64 // Average samples per pixel
	MinSamples     int     // Minimum samples taken by any pixel
	MaxSamplesUsed int     // Maximum samples taken by any pixel
	TilesRendered  int     // Number of tiles completed
}

// merge folds the statistics of another tile into stats
func (stats *RenderStats) merge(other RenderStats) {
	if other.TotalPixels == 0 {
		return
	}
	if stats.TotalPixels == 0 {
		stats.MinSamples = other.MinSamples
	} else {
		stats.MinSamples = min(stats.MinSamples, other.MinSamples)
	}
	stats.TotalPixels += other.TotalPixels
	stats.TotalSamples += other.TotalSamples
	stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, other.MaxSamplesUsed)
	stats.TilesRendered += other.TilesRendered
	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
}

// PixelStats accumulates color samples for averaging
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an image in [0,1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	var total float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += 0.2126*float64(r)/0xffff + 0.7152*float64(g)/0xffff + 0.0722*float64(b)/0xffff
		}
	}
	return total / float64(pixels)
}
