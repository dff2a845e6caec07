package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

const tolerance = 1e-9

func vecNear(a, b core.Vec3) bool {
	return a.NearlyEqual(b, tolerance)
}

func isUnit(v core.Vec3) bool {
	return math.Abs(v.Length()-1) < tolerance
}

func newTestSphere(t *testing.T, center core.Vec3, radius float64) *Sphere {
	t.Helper()
	s, err := NewSphere(center, radius, Surface{})
	if err != nil {
		t.Fatalf("NewSphere failed: %v", err)
	}
	return s
}

func newTestPlane(t *testing.T, point, normal core.Vec3) *Plane {
	t.Helper()
	p, err := NewPlane(point, normal, Surface{})
	if err != nil {
		t.Fatalf("NewPlane failed: %v", err)
	}
	return p
}

func newTestTriangle(t *testing.T, v0, v1, v2 core.Vec3) *Triangle {
	t.Helper()
	tr, err := NewTriangle(v0, v1, v2, Surface{})
	if err != nil {
		t.Fatalf("NewTriangle failed: %v", err)
	}
	return tr
}
