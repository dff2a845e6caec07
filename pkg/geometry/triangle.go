package geometry

import (
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	Surface
	V0, V1, V2 core.Vec3 // The three vertices
	plane      *Plane    // Underlying plane, also caches the normal
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, surface Surface) (*Triangle, error) {
	plane, err := NewPlaneFromPoints(v0, v1, v2, surface)
	if err != nil {
		return nil, fmt.Errorf("degenerate triangle: %w", err)
	}
	return &Triangle{
		Surface: surface,
		V0:      v0,
		V1:      v1,
		V2:      v2,
		plane:   plane,
	}, nil
}

// NormalAt returns the normal of the triangle's plane
func (t *Triangle) NormalAt(point core.Vec3) core.Vec3 {
	return t.plane.Normal
}

// Intersect tests the ray against the underlying plane, then checks on which
// side of each edge the ray passes. Rays through an edge or a vertex miss.
func (t *Triangle) Intersect(ray core.Ray, maxDistance float64) []GeoPoint {
	hit, ok := t.plane.hitPoint(ray, maxDistance)
	if !ok {
		return nil
	}

	v1 := t.V0.Subtract(ray.Origin)
	v2 := t.V1.Subtract(ray.Origin)
	v3 := t.V2.Subtract(ray.Origin)

	s1, ok1 := edgeSide(v1, v2, ray.Direction)
	s2, ok2 := edgeSide(v2, v3, ray.Direction)
	s3, ok3 := edgeSide(v3, v1, ray.Direction)
	if !ok1 || !ok2 || !ok3 {
		return nil
	}

	if (s1 > 0 && s2 > 0 && s3 > 0) || (s1 < 0 && s2 < 0 && s3 < 0) {
		return []GeoPoint{{Geometry: t, Point: hit}}
	}
	return nil
}

// edgeSide returns the sign of the ray direction against the normal of the
// face spanned by the ray origin and an edge. A zero sign is reported as
// not ok: the ray grazes the edge.
func edgeSide(a, b, direction core.Vec3) (float64, bool) {
	n, err := a.Cross(b).Unit()
	if err != nil {
		return 0, false
	}
	side := core.AlignZero(n.Dot(direction))
	return side, side != 0
}
