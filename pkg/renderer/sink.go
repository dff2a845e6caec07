package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// PixelSink receives finished pixel colors. Tiles are disjoint, so
// implementations may be written concurrently at distinct coordinates.
type PixelSink interface {
	WritePixel(x, y int, color core.Vec3)
}

// ImageSink writes pixels into an in-memory RGBA image
type ImageSink struct {
	img   *image.RGBA
	gamma float64
}

// NewImageSink creates an image sink. A gamma above 1 is applied before quantizing.
func NewImageSink(width, height int, gamma float64) *ImageSink {
	return &ImageSink{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		gamma: gamma,
	}
}

// WritePixel stores a color, clamped to [0,1]
func (s *ImageSink) WritePixel(x, y int, c core.Vec3) {
	s.img.SetRGBA(x, y, vec3ToColor(c, s.gamma))
}

// Image returns the underlying image
func (s *ImageSink) Image() *image.RGBA {
	return s.img
}

// vec3ToColor converts a Vec3 color to RGBA with clamping and optional gamma correction
func vec3ToColor(colorVec core.Vec3, gamma float64) color.RGBA {
	colorVec = colorVec.Clamp(0.0, 1.0)
	if gamma > 1 {
		colorVec = colorVec.GammaCorrect(gamma)
	}

	return color.RGBA{
		R: uint8(255*colorVec.X + 0.5),
		G: uint8(255*colorVec.Y + 0.5),
		B: uint8(255*colorVec.Z + 0.5),
		A: 255,
	}
}
