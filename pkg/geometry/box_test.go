package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func TestNewBox_Invalid(t *testing.T) {
	if _, err := NewAxisAlignedBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 1), Surface{}); err == nil {
		t.Error("Expected error for zero half-extent")
	}
}

func TestBox_Intersect(t *testing.T) {
	box, err := NewAxisAlignedBox(core.NewVec3(0, 0, -5), core.NewVec3(1, 2, 1), Surface{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if box.Len() != 12 {
		t.Fatalf("Expected 12 triangles, got %d", box.Len())
	}

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		closest   *core.Vec3
	}{
		{"front face", core.NewVec3(0.3, 0.2, 0), core.NewVec3(0, 0, -1), &core.Vec3{X: 0.3, Y: 0.2, Z: -4}},
		{"top face", core.NewVec3(0.3, 5, -5.2), core.NewVec3(0, -1, 0), &core.Vec3{X: 0.3, Y: 2, Z: -5.2}},
		{"right face", core.NewVec3(5, 0.7, -4.6), core.NewVec3(-1, 0, 0), &core.Vec3{X: 1, Y: 0.7, Z: -4.6}},
		{"miss beside", core.NewVec3(3, 0, 0), core.NewVec3(0, 0, -1), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction)
			hits := box.Intersect(ray, math.Inf(1))
			if tt.closest == nil {
				if len(hits) != 0 {
					t.Errorf("Expected miss, got %v", Points(hits))
				}
				return
			}
			if len(hits) != 2 {
				t.Fatalf("Expected entry and exit hits, got %d", len(hits))
			}
			closest, _ := FindClosest(ray, hits)
			if !vecNear(closest.Point, *tt.closest) {
				t.Errorf("Expected closest hit %v, got %v", *tt.closest, closest.Point)
			}
		})
	}
}

func TestBox_OutwardNormals(t *testing.T) {
	center := core.NewVec3(1, 2, 3)
	box, err := NewAxisAlignedBox(center, core.NewVec3(1, 1, 1), Surface{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, item := range box.items {
		tri := item.(*Triangle)
		centroid := tri.V0.Add(tri.V1).Add(tri.V2).Multiply(1.0 / 3)
		if tri.NormalAt(centroid).Dot(centroid.Subtract(center)) <= 0 {
			t.Errorf("Triangle %v %v %v faces inward", tri.V0, tri.V1, tri.V2)
		}
	}
}
