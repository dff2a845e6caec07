package geometry

import (
	"fmt"
	"math"
	"sort"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// Cylinder represents a finite, capped cylinder. The base cap is centered on
// the axis origin and the top cap lies height units along the axis.
type Cylinder struct {
	tube   *Tube
	Height float64
}

// NewCylinder creates a new cylinder
func NewCylinder(axis core.Ray, radius, height float64, surface Surface) (*Cylinder, error) {
	tube, err := NewTube(axis, radius, surface)
	if err != nil {
		return nil, fmt.Errorf("cylinder: %w", err)
	}
	if core.AlignZero(height) <= 0 {
		return nil, fmt.Errorf("cylinder height must be positive, got %g", height)
	}
	return &Cylinder{tube: tube, Height: height}, nil
}

// Axis returns the axis ray, starting at the base cap center
func (c *Cylinder) Axis() core.Ray {
	return c.tube.Axis
}

// Radius returns the cylinder radius
func (c *Cylinder) Radius() float64 {
	return c.tube.Radius
}

// Emission returns the emitted color
func (c *Cylinder) Emission() core.Vec3 {
	return c.tube.Emission()
}

// Material returns the surface material
func (c *Cylinder) Material() material.Material {
	return c.tube.Material()
}

// NormalAt returns the axis direction for points on either cap plane
// (cap centers included) and the lateral tube normal otherwise.
func (c *Cylinder) NormalAt(point core.Vec3) core.Vec3 {
	base, top := c.capCenters()
	v := c.tube.Axis.Direction
	if core.IsZero(point.Subtract(base).Dot(v)) || core.IsZero(point.Subtract(top).Dot(v)) {
		return v
	}
	return c.tube.NormalAt(point)
}

// Intersect tests the ray against the lateral surface and both caps.
// Hits are returned ordered by distance along the ray.
func (c *Cylinder) Intersect(ray core.Ray, maxDistance float64) []GeoPoint {
	ts := append(c.lateralHits(ray, maxDistance), c.capHits(ray, maxDistance)...)
	if len(ts) == 0 {
		return nil
	}
	sort.Float64s(ts)

	hits := make([]GeoPoint, 0, len(ts))
	for _, t := range ts {
		hits = append(hits, GeoPoint{Geometry: c, Point: ray.At(t)})
	}
	return hits
}

// lateralHits solves the infinite-cylinder quadratic and keeps the roots
// that land strictly between the caps
func (c *Cylinder) lateralHits(ray core.Ray, maxDistance float64) []float64 {
	axis := c.tube.Axis
	v := axis.Direction
	delta := ray.Origin.Subtract(axis.Origin)

	dv := ray.Direction.Dot(v)
	deltaV := delta.Dot(v)

	// a·t² + b·t + cc = 0
	a := ray.Direction.LengthSquared() - dv*dv
	if core.IsZero(a) {
		// Parallel to the axis: only the caps can be hit
		return nil
	}
	b := 2.0 * (delta.Dot(ray.Direction) - deltaV*dv)
	cc := delta.LengthSquared() - deltaV*deltaV - c.tube.Radius*c.tube.Radius

	discriminant := core.AlignZero(b*b - 4*a*cc)
	if discriminant <= 0 {
		return nil
	}
	sqrtD := math.Sqrt(discriminant)

	var ts []float64
	for _, t := range []float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)} {
		if !inRange(t, maxDistance) {
			continue
		}
		h := core.AlignZero(ray.At(t).Subtract(axis.Origin).Dot(v))
		if h > 0 && core.AlignZero(h-c.Height) < 0 {
			ts = append(ts, t)
		}
	}
	return ts
}

// capHits intersects the two cap discs
func (c *Cylinder) capHits(ray core.Ray, maxDistance float64) []float64 {
	v := c.tube.Axis.Direction
	dv := ray.Direction.Dot(v)
	if core.IsZero(dv) {
		return nil
	}

	base, top := c.capCenters()
	radiusSquared := c.tube.Radius * c.tube.Radius

	var ts []float64
	for _, center := range []core.Vec3{base, top} {
		t := core.AlignZero(center.Subtract(ray.Origin).Dot(v) / dv)
		if !inRange(t, maxDistance) {
			continue
		}
		if core.AlignZero(ray.At(t).DistanceSquared(center)-radiusSquared) < 0 {
			ts = append(ts, t)
		}
	}
	return ts
}

// capCenters returns the centers of the base and top caps
func (c *Cylinder) capCenters() (core.Vec3, core.Vec3) {
	base := c.tube.Axis.Origin
	return base, base.Add(c.tube.Axis.Direction.Multiply(c.Height))
}
