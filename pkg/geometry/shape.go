package geometry

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// GeoPoint marks an intersection: the geometry that was hit and where.
// The geometry is borrowed from the scene graph and must not outlive it.
type GeoPoint struct {
	Geometry Geometry
	Point    core.Vec3
}

// Surface carries the shading attributes shared by every primitive
type Surface struct {
	EmissionColor core.Vec3         // Emitted light (black by default)
	Mat           material.Material // Phong coefficients (zero by default)
}

// NewSurface creates a surface with the given emission and material
func NewSurface(emission core.Vec3, mat material.Material) Surface {
	return Surface{EmissionColor: emission, Mat: mat}
}

// Emission returns the emitted color
func (s Surface) Emission() core.Vec3 {
	return s.EmissionColor
}

// Material returns the surface material
func (s Surface) Material() material.Material {
	return s.Mat
}

// inRange reports whether a ray parameter lies in (0, maxDistance]
func inRange(t, maxDistance float64) bool {
	return core.AlignZero(t) > 0 && core.AlignZero(t-maxDistance) <= 0
}
