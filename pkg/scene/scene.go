package scene

import (
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Background     core.Vec3             // Color of rays that hit nothing
	AmbientLight   core.Vec3             // Pre-scaled ambient color, see lights.Ambient
	Geometries     *geometry.Geometries  // Root of the scene graph
	Lights         []lights.LightSource  // Lights used for local shading
	CameraConfig   geometry.CameraConfig // Preferred camera
	SamplingConfig SamplingConfig        // Preferred render settings
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width    int  // Image width in pixels
	Height   int  // Image height in pixels
	BeamSize int  // Aperture grid side, 1 disables super-sampling
	Adaptive bool // Use adaptive instead of fixed super-sampling
}

// DefaultSamplingConfig returns a 500x500 render with one ray per pixel
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:    500,
		Height:   500,
		BeamSize: 1,
	}
}

// NewScene creates an empty scene with a black background and no ambient light
func NewScene(name string) *Scene {
	return &Scene{
		Name:           name,
		Geometries:     geometry.NewGeometries(),
		SamplingConfig: DefaultSamplingConfig(),
	}
}

// Add appends geometries to the scene graph
func (s *Scene) Add(items ...geometry.Intersectable) {
	s.Geometries.Add(items...)
}

// AddLight appends light sources
func (s *Scene) AddLight(sources ...lights.LightSource) {
	s.Lights = append(s.Lights, sources...)
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.Geometries.PrimitiveCount()
}

// NewCamera builds the scene's preferred camera
func (s *Scene) NewCamera() (*geometry.Camera, error) {
	camera, err := geometry.NewCamera(s.CameraConfig)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", s.Name, err)
	}
	return camera, nil
}

// rgb converts 8-bit color components to the 0..1 scale
func rgb(r, g, b float64) core.Vec3 {
	return core.NewVec3(r/255, g/255, b/255)
}

var (
	black  = core.Vec3{}
	white  = rgb(255, 255, 255)
	red    = rgb(255, 0, 0)
	green  = rgb(0, 255, 0)
	blue   = rgb(0, 0, 255)
	yellow = rgb(255, 255, 0)
)

// must unwraps constructor results for hard-coded scene data.
// Built-in scenes are fixed, so a failure is a programming error.
func must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Sprintf("invalid built-in scene data: %v", err))
	}
	return v
}

// applyCameraOverride merges the first override, if any, into the scene camera
func (s *Scene) applyCameraOverride(overrides []geometry.CameraConfig) {
	if len(overrides) > 0 {
		s.CameraConfig = geometry.MergeCameraConfig(s.CameraConfig, overrides[0])
	}
}
