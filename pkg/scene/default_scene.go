package scene

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// NewDefaultScene creates a mirrored corner with a reflective floor and a
// scatter of small colored spheres, lit by all three light types
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	s := NewScene("Mirror room")
	s.CameraConfig = geometry.NewCameraConfig(
		core.NewVec3(150, 0, 410), core.NewVec3(-40, 0, -100), core.NewVec3(0, 1, 0))
	s.CameraConfig.Width = 200
	s.CameraConfig.Height = 200
	s.CameraConfig.Distance = 300
	s.CameraConfig.ApertureRadius = 5
	s.CameraConfig.FocalDistance = 50
	s.applyCameraOverride(cameraOverrides)

	s.SamplingConfig = SamplingConfig{
		Width:    600,
		Height:   600,
		BeamSize: 9,
		Adaptive: true,
	}
	s.Background = rgb(0, 0, 128)
	s.AmbientLight = lights.Ambient(white, core.Splat(0.1))

	p := []core.Vec3{
		core.NewVec3(150, 100, -50), core.NewVec3(150, -100, -50), core.NewVec3(-100, 100, -50),
		core.NewVec3(-100, -100, -50), core.NewVec3(-100, 100, -40), core.NewVec3(-100, -100, -40),
		core.NewVec3(-100, 100, 200), core.NewVec3(-100, -100, 200), core.NewVec3(0, -50, 60),
		core.NewVec3(-10, -100, 70), core.NewVec3(10, -100, 70), core.NewVec3(10, -100, 50),
		core.NewVec3(-10, -100, 50), core.NewVec3(200, -100, -50), core.NewVec3(-200, -100, -50),
		core.NewVec3(-200, -100, 200), core.NewVec3(200, -100, 200),
	}

	mirror := geometry.NewSurface(rgb(20, 20, 20),
		material.Phong(0.3, 1, 50).WithKr(core.Splat(0.7)))
	floor := geometry.NewSurface(blue,
		material.Phong(0.5, 0.5, 300).WithKr(core.Splat(0.1)))
	smallSphere := material.Phong(0.1, 1, 100).WithKr(core.Splat(0.05))

	backMirror := geometry.NewGeometries(
		must(geometry.NewTriangle(p[0], p[1], p[2], mirror)),
		must(geometry.NewTriangle(p[1], p[2], p[3], mirror)),
	)
	leftMirror := geometry.NewGeometries(
		must(geometry.NewTriangle(p[4], p[6], p[7], mirror)),
		must(geometry.NewTriangle(p[7], p[5], p[4], mirror)),
	)
	floorGroup := geometry.NewGeometries(
		must(geometry.NewTriangle(p[13], p[14], p[15], floor)),
		must(geometry.NewTriangle(p[13], p[15], p[16], floor)),
	)

	sphere := func(x, z float64, emission core.Vec3) *geometry.Sphere {
		return must(geometry.NewSphere(core.NewVec3(x, -93, z), 7, geometry.NewSurface(emission, smallSphere)))
	}
	spheres := geometry.NewGeometries(
		geometry.NewGeometries(
			sphere(90, 21, black),
			sphere(102, 93, rgb(34, 177, 76)),
			sphere(73, 120, rgb(128, 0, 64)),
			sphere(54, 95, rgb(255, 50, 128)),
		),
		geometry.NewGeometries(
			sphere(-15, 80, rgb(0, 0, 255)),
			sphere(20, 32, rgb(0, 255, 255)),
			sphere(-20, 40, rgb(255, 0, 0)),
			sphere(-23, 90, rgb(200, 255, 30)),
			sphere(8, 23, rgb(0, 255, 0)),
			sphere(24, 104, rgb(200, 180, 98)),
		),
		geometry.NewGeometries(
			sphere(-70, 105, rgb(200, 167, 30)),
			sphere(-82, 94, rgb(20, 154, 76)),
		),
	)

	s.Add(backMirror, leftMirror, floorGroup, spheres)

	s.AddLight(
		must(lights.NewDirectionalLight(rgb(300, 300, 300), core.NewVec3(-10, -5, -10))),
		must(lights.NewPointLight(rgb(300, 200, 100), core.NewVec3(-50, 100, 60),
			lights.Attenuation{Kc: 1, Kl: 4e-2, Kq: 2e-8})),
		must(lights.NewSpotLight(rgb(800, 400, 400), core.NewVec3(80, -60, 70), core.NewVec3(-5, -2, -1),
			lights.Attenuation{Kc: 1, Kl: 0.001, Kq: 0.0000025}, 4)),
	)

	return s
}
