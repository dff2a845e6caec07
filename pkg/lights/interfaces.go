package lights

import "github.com/df07/go-recursive-raytracer/pkg/core"

type LightType string

const (
	LightTypeDirectional LightType = "directional"
	LightTypePoint       LightType = "point"
	LightTypeSpot        LightType = "spot"
)

// LightSource is a light that contributes to direct (local) illumination
type LightSource interface {
	Type() LightType

	// IntensityAt returns the light color arriving at the point, before shading
	IntensityAt(point core.Vec3) core.Vec3

	// DirectionAt returns the unit vector FROM the light TO the point
	DirectionAt(point core.Vec3) core.Vec3

	// DistanceTo returns the distance from the light to the point.
	// Lights at infinity return +Inf.
	DistanceTo(point core.Vec3) float64
}

// Ambient returns the ambient light color ia scaled per channel by ka
func Ambient(ia, ka core.Vec3) core.Vec3 {
	return ia.MultiplyVec(ka)
}
