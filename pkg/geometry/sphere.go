package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Surface
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, surface Surface) (*Sphere, error) {
	if core.AlignZero(radius) <= 0 {
		return nil, fmt.Errorf("sphere radius must be positive, got %g", radius)
	}
	return &Sphere{
		Surface: surface,
		Center:  center,
		Radius:  radius,
	}, nil
}

// NormalAt returns the outward normal (from center to point)
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// Intersect tests the ray against the sphere.
// Hits are returned ordered by distance along the ray.
func (s *Sphere) Intersect(ray core.Ray, maxDistance float64) []GeoPoint {
	// Ray starting at the center leaves through exactly one point
	if ray.Origin == s.Center {
		if !inRange(s.Radius, maxDistance) {
			return nil
		}
		return []GeoPoint{{Geometry: s, Point: ray.At(s.Radius)}}
	}

	// Project the center onto the ray
	u := s.Center.Subtract(ray.Origin)
	tm := ray.Direction.Dot(u)
	dSquared := math.Max(0, core.AlignZero(u.LengthSquared()-tm*tm))
	d := math.Sqrt(dSquared)

	// Tangent rays and misses
	if core.AlignZero(d-s.Radius) >= 0 {
		return nil
	}

	th := math.Sqrt(s.Radius*s.Radius - dSquared)

	var hits []GeoPoint
	for _, t := range []float64{tm - th, tm + th} {
		if inRange(t, maxDistance) {
			hits = append(hits, GeoPoint{Geometry: s, Point: ray.At(t)})
		}
	}
	return hits
}
