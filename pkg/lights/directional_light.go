package lights

import (
	"fmt"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// DirectionalLight is a light at infinity shining in a constant direction
type DirectionalLight struct {
	intensity core.Vec3
	direction core.Vec3
}

// NewDirectionalLight creates a directional light shining along direction
func NewDirectionalLight(intensity, direction core.Vec3) (*DirectionalLight, error) {
	dir, err := direction.Unit()
	if err != nil {
		return nil, fmt.Errorf("directional light: %w", err)
	}
	return &DirectionalLight{intensity: intensity, direction: dir}, nil
}

func (dl *DirectionalLight) Type() LightType {
	return LightTypeDirectional
}

// IntensityAt returns the same intensity everywhere
func (dl *DirectionalLight) IntensityAt(point core.Vec3) core.Vec3 {
	return dl.intensity
}

func (dl *DirectionalLight) DirectionAt(point core.Vec3) core.Vec3 {
	return dl.direction
}

func (dl *DirectionalLight) DistanceTo(point core.Vec3) float64 {
	return math.Inf(1)
}
