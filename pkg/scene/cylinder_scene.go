package scene

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// NewCylinderScene creates a simple scene with capped cylinders on a
// reflective ground plane
func NewCylinderScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	s := NewScene("Cylinders")
	s.CameraConfig = geometry.NewCameraConfig(
		core.NewVec3(0, 1.5, 4),   // Camera position
		core.NewVec3(0, -0.1, -1), // Looking slightly down
		core.NewVec3(0, 1, -0.1),  // Perpendicular to forward
	)
	s.CameraConfig.Width = 4
	s.CameraConfig.Height = 3
	s.CameraConfig.Distance = 3
	s.applyCameraOverride(cameraOverrides)

	s.SamplingConfig.Width = 640
	s.SamplingConfig.Height = 480
	s.AmbientLight = lights.Ambient(white, core.Splat(0.05))
	s.Background = rgb(10, 10, 30)

	ground := must(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0),
		geometry.NewSurface(rgb(60, 60, 60), material.Phong(0.5, 0.3, 60).WithKr(core.Splat(0.2)))))

	// Left: opaque red, standing up
	redCylinder := must(geometry.NewCylinder(
		core.NewRay(core.NewVec3(-1.5, 0, -4), core.NewVec3(0, 1, 0)), 0.5, 1.5,
		geometry.NewSurface(rgb(150, 20, 20), material.Phong(0.6, 0.4, 80))))

	// Center: tall and transparent
	clearCylinder := must(geometry.NewCylinder(
		core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 1, 0)), 0.6, 2,
		geometry.NewSurface(rgb(20, 60, 120), material.Phong(0.2, 0.5, 100).WithKt(core.Splat(0.6)))))

	// Right: mirror lying on its side
	mirrorCylinder := must(geometry.NewCylinder(
		core.NewRay(core.NewVec3(1, 0.4, -3.5), core.NewVec3(1, 0, -1)), 0.4, 1.5,
		geometry.NewSurface(rgb(20, 20, 20),
			material.New().WithKr(core.Splat(0.8)).WithKs(core.Splat(0.2)).WithShininess(200))))

	s.Add(ground, redCylinder, clearCylinder, mirrorCylinder)

	s.AddLight(
		must(lights.NewPointLight(rgb(400, 400, 400), core.NewVec3(0, 5, 0),
			lights.Attenuation{Kc: 1, Kl: 0.05, Kq: 0.01})),
		must(lights.NewDirectionalLight(rgb(80, 80, 100), core.NewVec3(-1, -1, -1))),
	)

	return s
}
