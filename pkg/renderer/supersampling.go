package renderer

import (
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/integrator"
)

// SuperSamplingConfig selects how each primary ray is sampled over the lens
type SuperSamplingConfig struct {
	BeamSize int  // Aperture grid side, 1 traces the primary ray alone
	Adaptive bool // Subdivide the aperture only where corner colors differ
}

// DefaultSuperSamplingConfig returns one ray per pixel
func DefaultSuperSamplingConfig() SuperSamplingConfig {
	return SuperSamplingConfig{BeamSize: 1}
}

// SuperSampler wraps an integrator and traces many rays through the camera
// aperture toward the focal point of each primary ray. It owns a sampler, so
// each goroutine needs its own instance.
type SuperSampler struct {
	integrator integrator.Integrator
	camera     *geometry.Camera
	config     SuperSamplingConfig
	sampler    core.Sampler
	samples    int // Rays traced through the integrator so far
}

// NewSuperSampler creates a new super-sampler
func NewSuperSampler(integ integrator.Integrator, camera *geometry.Camera, config SuperSamplingConfig, sampler core.Sampler) (*SuperSampler, error) {
	if config.BeamSize < 1 {
		return nil, fmt.Errorf("super-sampling beam size must be at least 1, got %d", config.BeamSize)
	}
	return newSuperSampler(integ, camera, config, sampler), nil
}

func newSuperSampler(integ integrator.Integrator, camera *geometry.Camera, config SuperSamplingConfig, sampler core.Sampler) *SuperSampler {
	return &SuperSampler{
		integrator: integ,
		camera:     camera,
		config:     config,
		sampler:    sampler,
	}
}

// Samples returns the number of rays traced so far
func (ss *SuperSampler) Samples() int {
	return ss.samples
}

// TraceRay returns the color of a primary ray, averaged over the aperture
func (ss *SuperSampler) TraceRay(ray core.Ray) core.Vec3 {
	if ss.config.BeamSize == 1 || core.IsZero(ss.camera.ApertureRadius()) {
		return ss.trace(ray)
	}
	if ss.config.Adaptive {
		return ss.adaptive(ray)
	}
	return ss.fixed(ray)
}

func (ss *SuperSampler) trace(ray core.Ray) core.Vec3 {
	ss.samples++
	return ss.integrator.TraceRay(ray)
}

// focalPoint returns where the primary ray crosses the focal plane
func (ss *SuperSampler) focalPoint(ray core.Ray) core.Vec3 {
	t := (ss.camera.Distance() + ss.camera.FocalDistance()) / ss.camera.Forward().Dot(ray.Direction)
	return ray.At(t)
}

// fixed averages the colors of rays from every aperture grid point
func (ss *SuperSampler) fixed(ray core.Ray) core.Vec3 {
	points := apertureGrid(ss.config.BeamSize, ray.Origin, ss.camera.Up(), ss.camera.Right(),
		ss.camera.ApertureRadius(), ss.sampler)
	if len(points) == 1 {
		return ss.trace(ray)
	}

	target := ss.focalPoint(ray)
	var pixel PixelStats
	for _, p := range points {
		pixel.AddSample(ss.trace(core.NewRay(p, target.Subtract(p))))
	}
	return pixel.GetColor()
}

// adaptive starts the subdivision on the whole aperture square
func (ss *SuperSampler) adaptive(ray core.Ray) core.Vec3 {
	region := adaptiveRegion{
		target: ss.focalPoint(ray),
		unit:   2 * ss.camera.ApertureRadius() / float64(ss.config.BeamSize),
		cache:  make(map[core.Vec3]core.Vec3),
	}
	return ss.subdivide(&region, ray.Origin, float64(ss.config.BeamSize))
}

// adaptiveRegion holds the per-pixel state of adaptive subdivision
type adaptiveRegion struct {
	target core.Vec3               // Focal point all rays converge to
	unit   float64                 // Side of one sample cell
	cache  map[core.Vec3]core.Vec3 // Corner colors shared by neighboring squares
}

// subdivide evaluates the corners of a square of the given size (in cells).
// Equal corners settle the square; otherwise its quadrants are evaluated and
// averaged, each weighing a quarter of the area. Squares smaller than two
// cells average their corners.
func (ss *SuperSampler) subdivide(region *adaptiveRegion, center core.Vec3, size float64) core.Vec3 {
	up := ss.camera.Up()
	right := ss.camera.Right()
	half := size * region.unit / 2

	offsets := [4][2]float64{{-1, 1}, {1, 1}, {-1, -1}, {1, -1}}
	var corners [4]core.Vec3
	for i, o := range offsets {
		corners[i] = ss.cornerColor(region, center.Add(right.Multiply(o[0]*half)).Add(up.Multiply(o[1]*half)))
	}

	if size/2 < 1 {
		return corners[0].Add(corners[1]).Add(corners[2]).Add(corners[3]).Multiply(0.25)
	}
	if equalColors(corners[:]) {
		return corners[0]
	}

	quarter := half / 2
	var sum core.Vec3
	for _, o := range offsets {
		sub := center.Add(right.Multiply(o[0] * quarter)).Add(up.Multiply(o[1] * quarter))
		sum = sum.Add(ss.subdivide(region, sub, size/2))
	}
	return sum.Multiply(0.25)
}

// cornerColor traces the ray from an aperture point to the focal point once
func (ss *SuperSampler) cornerColor(region *adaptiveRegion, point core.Vec3) core.Vec3 {
	if c, ok := region.cache[point]; ok {
		return c
	}
	c := ss.trace(core.NewRay(point, region.target.Subtract(point)))
	region.cache[point] = c
	return c
}

func equalColors(colors []core.Vec3) bool {
	for _, c := range colors[1:] {
		if !c.NearlyEqual(colors[0], core.Epsilon) {
			return false
		}
	}
	return true
}
