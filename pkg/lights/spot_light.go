package lights

import (
	"fmt"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// DefaultNarrowBeam is the beam exponent of a plain cosine falloff
const DefaultNarrowBeam = 1.0

// SpotLight is a point light aimed along a direction. Intensity falls off as
// cos(angle)^beam away from the aim and is black behind the light.
type SpotLight struct {
	PointLight
	direction core.Vec3
	beam      float64
}

// NewSpotLight creates a spot light. Larger beam values narrow the cone.
func NewSpotLight(intensity, position, direction core.Vec3, attenuation Attenuation, beam float64) (*SpotLight, error) {
	point, err := NewPointLight(intensity, position, attenuation)
	if err != nil {
		return nil, fmt.Errorf("spot light: %w", err)
	}
	dir, err := direction.Unit()
	if err != nil {
		return nil, fmt.Errorf("spot light direction: %w", err)
	}
	if beam < 0 {
		return nil, fmt.Errorf("spot light beam must not be negative, got %g", beam)
	}
	return &SpotLight{
		PointLight: *point,
		direction:  dir,
		beam:       beam,
	}, nil
}

func (sl *SpotLight) Type() LightType {
	return LightTypeSpot
}

// IntensityAt scales the point light intensity by the beam falloff
func (sl *SpotLight) IntensityAt(point core.Vec3) core.Vec3 {
	cosAngle := core.AlignZero(sl.direction.Dot(sl.DirectionAt(point)))
	if cosAngle <= 0 {
		return core.Vec3{}
	}
	return sl.PointLight.IntensityAt(point).Multiply(math.Pow(cosAngle, sl.beam))
}
