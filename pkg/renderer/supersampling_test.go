package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func TestNewSuperSampler_InvalidBeam(t *testing.T) {
	camera := newTestCamera(t, 1, 0)
	_, err := NewSuperSampler(constantIntegrator(core.Vec3{}), camera, SuperSamplingConfig{BeamSize: 0}, centeredSampler{})
	if err == nil {
		t.Error("expected an error for beam size 0")
	}
}

func TestSuperSampler_SingleSampleMatchesIntegrator(t *testing.T) {
	tests := []struct {
		name     string
		aperture float64
		config   SuperSamplingConfig
	}{
		{"beam of one", 1, SuperSamplingConfig{BeamSize: 1}},
		{"beam of one adaptive", 1, SuperSamplingConfig{BeamSize: 1, Adaptive: true}},
		{"pinhole camera", 0, SuperSamplingConfig{BeamSize: 6}},
		{"pinhole camera adaptive", 0, SuperSamplingConfig{BeamSize: 6, Adaptive: true}},
	}

	// Color encodes the ray direction so any change to the ray shows up
	directionColor := func(ray core.Ray) core.Vec3 { return ray.Direction }

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := newTestCamera(t, tt.aperture, 3)
			integ := &funcIntegrator{colorFn: directionColor}
			ss, err := NewSuperSampler(integ, camera, tt.config, centeredSampler{})
			if err != nil {
				t.Fatalf("NewSuperSampler failed: %v", err)
			}

			for _, pixel := range [][2]int{{0, 0}, {2, 1}, {4, 4}} {
				ray := camera.ConstructRay(5, 5, pixel[0], pixel[1])
				got := ss.TraceRay(ray)
				if got != directionColor(ray) {
					t.Errorf("pixel %v: expected %v, got %v", pixel, directionColor(ray), got)
				}
			}
			if ss.Samples() != 3 {
				t.Errorf("expected one sample per pixel, got %d", ss.Samples())
			}
		})
	}
}

func TestSuperSampler_FixedRaysConvergeOnFocalPoint(t *testing.T) {
	camera := newTestCamera(t, 1, 4)
	integ := &recordingIntegrator{}
	ss := newSuperSampler(integ, camera, SuperSamplingConfig{BeamSize: 3}, centeredSampler{})

	ray := camera.ConstructRay(4, 4, 0, 3)
	ss.TraceRay(ray)

	if len(integ.rays) != 10 {
		t.Fatalf("expected 10 rays, got %d", len(integ.rays))
	}

	// View plane at distance 1 plus focal distance 4
	target := ray.At(5 / camera.Forward().Dot(ray.Direction))
	if !core.IsZero(target.Z + 5) {
		t.Fatalf("focal point should lie on z=-5, got %v", target)
	}
	for i, r := range integ.rays {
		if !core.IsZero(r.Origin.Z) {
			t.Errorf("ray %d: origin %v is off the aperture plane", i, r.Origin)
		}
		hit := r.At(target.Distance(r.Origin))
		if !vecNear(hit, target) {
			t.Errorf("ray %d: passes %v instead of the focal point %v", i, hit, target)
		}
	}
}

func TestSuperSampler_FixedAverages(t *testing.T) {
	camera := newTestCamera(t, 1, 0)
	integ := &funcIntegrator{colorFn: func(ray core.Ray) core.Vec3 {
		return core.Splat(math.Abs(ray.Origin.X))
	}}
	ss := newSuperSampler(integ, camera, SuperSamplingConfig{BeamSize: 2}, centeredSampler{})

	// Center plus four points at |x| = 0.5
	got := ss.TraceRay(camera.ConstructRay(3, 3, 1, 1))
	if !vecNear(got, core.Splat(0.4)) {
		t.Errorf("expected %v, got %v", core.Splat(0.4), got)
	}
	if ss.Samples() != 5 {
		t.Errorf("expected 5 samples, got %d", ss.Samples())
	}
}

func TestSuperSampler_AdaptiveUniformStopsAtCorners(t *testing.T) {
	color := core.NewVec3(0.2, 0.4, 0.6)
	camera := newTestCamera(t, 1, 10)
	integ := constantIntegrator(color)
	ss := newSuperSampler(integ, camera, SuperSamplingConfig{BeamSize: 16, Adaptive: true}, centeredSampler{})

	got := ss.TraceRay(camera.ConstructRay(7, 7, 2, 5))
	if !vecNear(got, color) {
		t.Errorf("expected %v, got %v", color, got)
	}
	if ss.Samples() != 4 {
		t.Errorf("expected only the 4 corners to be traced, got %d", ss.Samples())
	}
}

func TestSuperSampler_AdaptiveSubdividesEdges(t *testing.T) {
	camera := newTestCamera(t, 1, 0)
	integ := &funcIntegrator{colorFn: func(ray core.Ray) core.Vec3 {
		if ray.Origin.X > 0 {
			return core.Splat(1)
		}
		return core.Splat(0)
	}}
	ss := newSuperSampler(integ, camera, SuperSamplingConfig{BeamSize: 2, Adaptive: true}, centeredSampler{})

	// Right quadrants mix black and white corners, left quadrants are black
	got := ss.TraceRay(camera.ConstructRay(3, 3, 1, 1))
	if !vecNear(got, core.Splat(0.25)) {
		t.Errorf("expected %v, got %v", core.Splat(0.25), got)
	}
	// A 3x3 lattice of corners, each traced once
	if ss.Samples() != 9 {
		t.Errorf("expected 9 samples, got %d", ss.Samples())
	}
	if integ.calls.Load() != 9 {
		t.Errorf("expected 9 integrator calls, got %d", integ.calls.Load())
	}
}
