package geometry

import (
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Surface
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, surface Surface) (*Plane, error) {
	n, err := normal.Unit()
	if err != nil {
		return nil, fmt.Errorf("plane normal: %w", err)
	}
	return &Plane{
		Surface: surface,
		Point:   point,
		Normal:  n,
	}, nil
}

// NewPlaneFromPoints creates the plane through three points.
// Fails when the points coincide or are collinear.
func NewPlaneFromPoints(p1, p2, p3 core.Vec3, surface Surface) (*Plane, error) {
	u := p2.Subtract(p1)
	v := p3.Subtract(p1)
	n, err := u.Cross(v).Unit()
	if err != nil {
		return nil, fmt.Errorf("plane through %v, %v, %v: %w", p1, p2, p3, err)
	}
	return &Plane{
		Surface: surface,
		Point:   p1,
		Normal:  n,
	}, nil
}

// NormalAt returns the plane normal, which is the same everywhere
func (p *Plane) NormalAt(point core.Vec3) core.Vec3 {
	return p.Normal
}

// Intersect tests the ray against the plane.
// Parallel rays and rays starting on the plane do not hit it.
func (p *Plane) Intersect(ray core.Ray, maxDistance float64) []GeoPoint {
	hit, ok := p.hitPoint(ray, maxDistance)
	if !ok {
		return nil
	}
	return []GeoPoint{{Geometry: p, Point: hit}}
}

// hitPoint solves n·(q0−p0) / n·d for the single crossing point
func (p *Plane) hitPoint(ray core.Ray, maxDistance float64) (core.Vec3, bool) {
	toPlane := p.Point.Subtract(ray.Origin)
	if toPlane.IsZeroVector() {
		return core.Vec3{}, false
	}

	nv := p.Normal.Dot(ray.Direction)
	if core.IsZero(nv) {
		return core.Vec3{}, false
	}

	t := core.AlignZero(p.Normal.Dot(toPlane) / nv)
	if !inRange(t, maxDistance) {
		return core.Vec3{}, false
	}
	return ray.At(t), true
}
