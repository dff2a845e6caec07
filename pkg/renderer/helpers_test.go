package renderer

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
)

const tolerance = 1e-9

// funcIntegrator computes a color from the ray alone and counts calls
type funcIntegrator struct {
	colorFn func(ray core.Ray) core.Vec3
	calls   atomic.Int64
}

func (fi *funcIntegrator) TraceRay(ray core.Ray) core.Vec3 {
	fi.calls.Add(1)
	return fi.colorFn(ray)
}

func constantIntegrator(c core.Vec3) *funcIntegrator {
	return &funcIntegrator{colorFn: func(core.Ray) core.Vec3 { return c }}
}

// recordingIntegrator remembers every ray it traced
type recordingIntegrator struct {
	rays []core.Ray
}

func (ri *recordingIntegrator) TraceRay(ray core.Ray) core.Vec3 {
	ri.rays = append(ri.rays, ray)
	return core.Vec3{}
}

// centeredSampler always samples the middle of its cell, giving zero jitter
type centeredSampler struct{}

func (centeredSampler) Get1D() float64 { return 0.5 }
func (centeredSampler) Get2D() core.Vec2 {
	return core.NewVec2(0.5, 0.5)
}

// countingSink records how often each pixel was written
type countingSink struct {
	mu     sync.Mutex
	writes map[[2]int]int
	colors map[[2]int]core.Vec3
}

func newCountingSink() *countingSink {
	return &countingSink{
		writes: make(map[[2]int]int),
		colors: make(map[[2]int]core.Vec3),
	}
}

func (s *countingSink) WritePixel(x, y int, c core.Vec3) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes[[2]int{x, y}]++
	s.colors[[2]int{x, y}] = c
}

// newTestCamera looks down -z from the origin through a 2x2 view plane at distance 1
func newTestCamera(t *testing.T, aperture, focal float64) *geometry.Camera {
	t.Helper()
	config := geometry.NewCameraConfig(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0))
	config.Width = 2
	config.Height = 2
	config.Distance = 1
	config.ApertureRadius = aperture
	config.FocalDistance = focal
	camera, err := geometry.NewCamera(config)
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}
	return camera
}

func vecNear(a, b core.Vec3) bool {
	return a.NearlyEqual(b, tolerance)
}

// silentLogger discards render output
type silentLogger struct{}

func (silentLogger) Printf(string, ...interface{}) {}
