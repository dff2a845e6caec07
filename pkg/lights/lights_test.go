package lights

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

const tolerance = 1e-9

func TestLightSource_Interface(t *testing.T) {
	var _ LightSource = (*DirectionalLight)(nil)
	var _ LightSource = (*PointLight)(nil)
	var _ LightSource = (*SpotLight)(nil)
}

func TestAmbient(t *testing.T) {
	got := Ambient(core.NewVec3(1, 0.5, 0.2), core.NewVec3(0.1, 0.2, 0.5))
	if !got.NearlyEqual(core.NewVec3(0.1, 0.1, 0.1), tolerance) {
		t.Errorf("Expected (0.1,0.1,0.1), got %v", got)
	}
}

func TestDirectionalLight(t *testing.T) {
	if _, err := NewDirectionalLight(core.NewVec3(1, 1, 1), core.Vec3{}); !errors.Is(err, core.ErrZeroVector) {
		t.Errorf("Expected ErrZeroVector, got %v", err)
	}

	light, err := NewDirectionalLight(core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(0, -2, 0))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, p := range []core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(100, -20, 3)} {
		if light.IntensityAt(p) != core.NewVec3(0.5, 0.5, 0.5) {
			t.Errorf("Expected constant intensity at %v, got %v", p, light.IntensityAt(p))
		}
		if light.DirectionAt(p) != core.NewVec3(0, -1, 0) {
			t.Errorf("Expected normalized direction, got %v", light.DirectionAt(p))
		}
		if !math.IsInf(light.DistanceTo(p), 1) {
			t.Errorf("Expected infinite distance, got %f", light.DistanceTo(p))
		}
	}
}

func TestNewPointLight_Attenuation(t *testing.T) {
	tests := []struct {
		name        string
		attenuation Attenuation
		wantErr     bool
	}{
		{"default", DefaultAttenuation(), false},
		{"quadratic only", Attenuation{Kq: 0.1}, false},
		{"all zero", Attenuation{}, true},
		{"negative linear", Attenuation{Kc: 1, Kl: -0.1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPointLight(core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0), tt.attenuation)
			if (err != nil) != tt.wantErr {
				t.Errorf("Expected error=%v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestPointLight(t *testing.T) {
	light, err := NewPointLight(core.NewVec3(1, 0.5, 0.25), core.NewVec3(0, 10, 0),
		Attenuation{Kc: 1, Kl: 0.1, Kq: 0.01})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	p := core.NewVec3(0, 0, 0)

	// 1 + 0.1·10 + 0.01·100 = 3
	expected := core.NewVec3(1.0/3, 0.5/3, 0.25/3)
	if got := light.IntensityAt(p); !got.NearlyEqual(expected, tolerance) {
		t.Errorf("Expected intensity %v, got %v", expected, got)
	}
	if got := light.DirectionAt(p); !got.NearlyEqual(core.NewVec3(0, -1, 0), tolerance) {
		t.Errorf("Expected direction from light to point, got %v", got)
	}
	if got := light.DistanceTo(p); math.Abs(got-10) > tolerance {
		t.Errorf("Expected distance 10, got %f", got)
	}
}

func TestSpotLight(t *testing.T) {
	if _, err := NewSpotLight(core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0), core.Vec3{},
		DefaultAttenuation(), DefaultNarrowBeam); !errors.Is(err, core.ErrZeroVector) {
		t.Errorf("Expected ErrZeroVector, got %v", err)
	}

	position := core.NewVec3(0, 5, 0)
	intensity := core.NewVec3(1, 1, 1)

	tests := []struct {
		name     string
		beam     float64
		point    core.Vec3
		expected float64
	}{
		{"on axis", DefaultNarrowBeam, core.NewVec3(0, 0, 0), 1},
		{"45 degrees", DefaultNarrowBeam, core.NewVec3(5, 0, 0), math.Sqrt2 / 2},
		{"45 degrees narrow beam", 4, core.NewVec3(5, 0, 0), 0.25},
		{"perpendicular", DefaultNarrowBeam, core.NewVec3(5, 5, 0), 0},
		{"behind the light", DefaultNarrowBeam, core.NewVec3(0, 10, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			light, err := NewSpotLight(intensity, position, core.NewVec3(0, -1, 0), DefaultAttenuation(), tt.beam)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			got := light.IntensityAt(tt.point)
			if !got.NearlyEqual(core.Splat(tt.expected), tolerance) {
				t.Errorf("Expected intensity %f, got %v", tt.expected, got)
			}
			if light.Type() != LightTypeSpot {
				t.Errorf("Expected spot light type, got %s", light.Type())
			}
		})
	}
}

func TestSpotLight_Attenuated(t *testing.T) {
	light, err := NewSpotLight(core.NewVec3(2, 2, 2), core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0),
		Attenuation{Kc: 1, Kq: 1}, DefaultNarrowBeam)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	// cos = 1/√2, attenuation = 1 + 2 = 3
	got := light.IntensityAt(core.NewVec3(1, 1, 0))
	expected := core.Splat(2.0 / 3 * math.Sqrt2 / 2)
	if !got.NearlyEqual(expected, tolerance) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}
