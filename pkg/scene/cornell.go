package scene

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// NewCornellScene creates a Cornell box with a mirror sphere and a glass sphere
func NewCornellScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	const (
		boxSize  = 555.0
		distance = 800.0
		vfov     = 40.0
	)

	s := NewScene("Cornell box")
	// Camera outside the box looking in through the open side
	s.CameraConfig = geometry.NewCameraConfig(
		core.NewVec3(278, 278, -distance), core.NewVec3(0, 0, 1), core.NewVec3(0, 1, 0))
	viewSize := 2 * distance * math.Tan(vfov/2*math.Pi/180)
	s.CameraConfig.Width = viewSize
	s.CameraConfig.Height = viewSize
	s.CameraConfig.Distance = distance
	s.applyCameraOverride(cameraOverrides)

	s.SamplingConfig.BeamSize = 3
	s.SamplingConfig.Adaptive = true
	s.AmbientLight = lights.Ambient(white, core.Splat(0.05))

	whiteWall := geometry.NewSurface(black, material.Phong(0, 0.1, 20).WithKd(core.NewVec3(0.73, 0.73, 0.73)))
	redWall := geometry.NewSurface(black, material.Phong(0, 0.1, 20).WithKd(core.NewVec3(0.65, 0.05, 0.05)))
	greenWall := geometry.NewSurface(black, material.Phong(0, 0.1, 20).WithKd(core.NewVec3(0.12, 0.45, 0.15)))

	s.Add(
		// Floor
		newQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), whiteWall),
		// Ceiling
		newQuad(core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), whiteWall),
		// Back wall
		newQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), whiteWall),
		// Left wall
		newQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, boxSize), core.NewVec3(0, boxSize, 0), redWall),
		// Right wall
		newQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), greenWall),
	)

	leftSphere := must(geometry.NewSphere(core.NewVec3(185, 82.5, 169), 82.5, geometry.NewSurface(
		black, material.New().WithKr(core.Splat(0.8)).WithKs(core.Splat(0.2)).WithShininess(300))))
	rightSphere := must(geometry.NewSphere(core.NewVec3(370, 90, 351), 90, geometry.NewSurface(
		rgb(10, 20, 30), material.Phong(0.05, 0.3, 200).WithKt(core.Splat(0.7)))))
	s.Add(leftSphere, rightSphere)

	s.AddLight(must(lights.NewPointLight(
		core.Splat(1.2),
		core.NewVec3(278, boxSize-10, 278), // just below the ceiling
		lights.Attenuation{Kc: 1, Kl: 0.001, Kq: 0.000002},
	)))

	return s
}

// newQuad builds a parallelogram from a corner and two edge vectors as a
// pair of triangles
func newQuad(corner, u, v core.Vec3, surface geometry.Surface) *geometry.Geometries {
	vertices := []core.Vec3{corner, corner.Add(u), corner.Add(u).Add(v), corner.Add(v)}
	return must(geometry.NewTriangleMesh(vertices, []int{0, 1, 2, 0, 2, 3}, surface, nil))
}
