package geometry

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// Intersectable is anything a ray can be tested against: a single geometry
// or a group of them.
type Intersectable interface {
	// Intersect returns every hit with parameter t in (0, maxDistance].
	// A miss returns nil.
	Intersect(ray core.Ray, maxDistance float64) []GeoPoint
}

// Geometry is a leaf of the scene graph: a shape with a surface
type Geometry interface {
	Intersectable
	// NormalAt returns the unit surface normal at a point on the surface
	NormalAt(point core.Vec3) core.Vec3
	Emission() core.Vec3
	Material() material.Material
}
