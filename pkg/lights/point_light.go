package lights

import (
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Attenuation holds the constant, linear and quadratic falloff factors
// of a positional light
type Attenuation struct {
	Kc, Kl, Kq float64
}

// DefaultAttenuation returns no falloff with distance
func DefaultAttenuation() Attenuation {
	return Attenuation{Kc: 1}
}

// validate rejects negative factors and an all-zero attenuation
func (a Attenuation) validate() error {
	if a.Kc < 0 || a.Kl < 0 || a.Kq < 0 {
		return fmt.Errorf("attenuation factors must not be negative, got %+v", a)
	}
	if core.IsZero(a.Kc) && core.IsZero(a.Kl) && core.IsZero(a.Kq) {
		return fmt.Errorf("attenuation factors must not all be zero")
	}
	return nil
}

// factor returns kc + kl·d + kq·d²
func (a Attenuation) factor(d float64) float64 {
	return a.Kc + a.Kl*d + a.Kq*d*d
}

// PointLight emits in all directions from a position
type PointLight struct {
	intensity   core.Vec3
	position    core.Vec3
	attenuation Attenuation
}

// NewPointLight creates a point light
func NewPointLight(intensity, position core.Vec3, attenuation Attenuation) (*PointLight, error) {
	if err := attenuation.validate(); err != nil {
		return nil, fmt.Errorf("point light: %w", err)
	}
	return &PointLight{
		intensity:   intensity,
		position:    position,
		attenuation: attenuation,
	}, nil
}

func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// Position returns the light position
func (pl *PointLight) Position() core.Vec3 {
	return pl.position
}

// IntensityAt divides the intensity by the attenuation at the point's distance
func (pl *PointLight) IntensityAt(point core.Vec3) core.Vec3 {
	d := pl.position.Distance(point)
	return pl.intensity.Multiply(1.0 / pl.attenuation.factor(d))
}

func (pl *PointLight) DirectionAt(point core.Vec3) core.Vec3 {
	return point.Subtract(pl.position).Normalize()
}

func (pl *PointLight) DistanceTo(point core.Vec3) float64 {
	return pl.position.Distance(point)
}
