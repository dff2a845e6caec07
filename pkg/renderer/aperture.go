package renderer

import (
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// ApertureGrid returns lens sample points around center: the center itself
// followed by a beam x beam grid of jittered points covering the square of
// half-side radius spanned by up and right. A single-point grid is returned
// when beam is 1 or radius is 0.
func ApertureGrid(beam int, center, up, right core.Vec3, radius float64, sampler core.Sampler) ([]core.Vec3, error) {
	if beam < 1 {
		return nil, fmt.Errorf("aperture beam size must be at least 1, got %d", beam)
	}
	return apertureGrid(beam, center, up, right, radius, sampler), nil
}

func apertureGrid(beam int, center, up, right core.Vec3, radius float64, sampler core.Sampler) []core.Vec3 {
	if beam == 1 || core.IsZero(radius) {
		return []core.Vec3{center}
	}

	// Cell size of the grid
	rxy := 2 * radius / float64(beam)
	mid := float64(beam-1) / 2

	points := make([]core.Vec3, 0, beam*beam+1)
	points = append(points, center)
	for i := 0; i < beam; i++ {
		for j := 0; j < beam; j++ {
			jitter := sampler.Get2D()
			xj := (float64(j)-mid)*rxy + (jitter.X-0.5)*rxy
			yi := -(float64(i)-mid)*rxy + (jitter.Y-0.5)*rxy

			p := center
			if !core.IsZero(xj) {
				p = p.Add(right.Multiply(xj))
			}
			if !core.IsZero(yi) {
				p = p.Add(up.Multiply(yi))
			}
			points = append(points, p)
		}
	}
	return points
}
