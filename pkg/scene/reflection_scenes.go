package scene

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// NewTwoSpheresScene creates a partially transparent sphere around a smaller
// opaque one, lit by a single spot light
func NewTwoSpheresScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	s := NewScene("Two spheres")
	s.CameraConfig = geometry.NewCameraConfig(
		core.NewVec3(0, 0, 1000), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0))
	s.CameraConfig.Width = 150
	s.CameraConfig.Height = 150
	s.CameraConfig.Distance = 1000
	s.applyCameraOverride(cameraOverrides)

	outer := must(geometry.NewSphere(core.NewVec3(0, 0, -50), 50, geometry.NewSurface(
		blue, material.Phong(0.4, 0.3, 100).WithKt(core.Splat(0.3)))))
	inner := must(geometry.NewSphere(core.NewVec3(0, 0, -50), 25, geometry.NewSurface(
		red, material.Phong(0.5, 0.5, 100))))
	s.Add(outer, inner)

	s.AddLight(must(lights.NewSpotLight(
		rgb(1000, 600, 0),
		core.NewVec3(-100, -100, 500),
		core.NewVec3(-1, -1, -2),
		lights.Attenuation{Kc: 1, Kl: 0.0004, Kq: 0.0000006},
		lights.DefaultNarrowBeam,
	)))

	return s
}

// NewMirrorsScene creates two nested spheres reflected in a pair of
// triangular mirrors
func NewMirrorsScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	s := NewScene("Two spheres on mirrors")
	s.CameraConfig = geometry.NewCameraConfig(
		core.NewVec3(0, 0, 10000), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0))
	s.CameraConfig.Width = 2500
	s.CameraConfig.Height = 2500
	s.CameraConfig.Distance = 10000
	s.applyCameraOverride(cameraOverrides)

	s.AmbientLight = lights.Ambient(white, core.Splat(0.1))

	mirrorEmission := rgb(20, 20, 20)
	s.Add(
		must(geometry.NewSphere(core.NewVec3(-950, -900, -1000), 400, geometry.NewSurface(
			rgb(0, 50, 100), material.Phong(0.25, 0.25, 20).WithKt(core.NewVec3(0.5, 0, 0))))),
		must(geometry.NewSphere(core.NewVec3(-950, -900, -1000), 200, geometry.NewSurface(
			rgb(100, 50, 20), material.Phong(0.25, 0.25, 20)))),
		must(geometry.NewTriangle(
			core.NewVec3(1500, -1500, -1500), core.NewVec3(-1500, 1500, -1500), core.NewVec3(670, 670, 3000),
			geometry.NewSurface(mirrorEmission, material.New().WithKr(core.Splat(1))))),
		must(geometry.NewTriangle(
			core.NewVec3(1500, -1500, -1500), core.NewVec3(-1500, 1500, -1500), core.NewVec3(-1500, -1500, -2000),
			geometry.NewSurface(mirrorEmission, material.New().WithKr(core.NewVec3(0.5, 0, 0.4))))),
	)

	s.AddLight(must(lights.NewSpotLight(
		rgb(1020, 400, 400),
		core.NewVec3(-750, -750, -150),
		core.NewVec3(-1, -1, -4),
		lights.Attenuation{Kc: 1, Kl: 0.00001, Kq: 0.000005},
		lights.DefaultNarrowBeam,
	)))

	return s
}

// NewTransparentShadowScene creates two triangles lit by a spot light through
// a partially transparent sphere, which casts a partial shadow
func NewTransparentShadowScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	s := NewScene("Triangles with transparent sphere")
	s.CameraConfig = geometry.NewCameraConfig(
		core.NewVec3(0, 0, 1000), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0))
	s.CameraConfig.Width = 200
	s.CameraConfig.Height = 200
	s.CameraConfig.Distance = 1000
	s.applyCameraOverride(cameraOverrides)

	s.SamplingConfig.Width = 600
	s.SamplingConfig.Height = 600
	s.AmbientLight = lights.Ambient(white, core.Splat(0.15))

	floor := geometry.NewSurface(black, material.Phong(0.5, 0.5, 60))
	s.Add(
		must(geometry.NewTriangle(
			core.NewVec3(-150, -150, -115), core.NewVec3(150, -150, -135), core.NewVec3(75, 75, -150), floor)),
		must(geometry.NewTriangle(
			core.NewVec3(-150, -150, -115), core.NewVec3(-70, 70, -140), core.NewVec3(75, 75, -150), floor)),
		must(geometry.NewSphere(core.NewVec3(60, 50, -50), 30, geometry.NewSurface(
			blue, material.Phong(0.2, 0.2, 30).WithKt(core.Splat(0.6))))),
	)

	s.AddLight(must(lights.NewSpotLight(
		rgb(700, 400, 400),
		core.NewVec3(60, 50, 0),
		core.NewVec3(0, 0, -1),
		lights.Attenuation{Kc: 1, Kl: 4e-5, Kq: 2e-7},
		lights.DefaultNarrowBeam,
	)))

	return s
}

// NewAllEffectsScene combines mirrors, a transparent panel, a point light and
// a spot light, rendered with depth of field
func NewAllEffectsScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	s := NewScene("All effects")
	s.CameraConfig = geometry.NewCameraConfig(
		core.NewVec3(8, 8, 4), core.NewVec3(-1, -1, -0.4), core.NewVec3(-1, 0, 2.5))
	s.CameraConfig.Width = 3.2
	s.CameraConfig.Height = 3
	s.CameraConfig.Distance = 5
	s.CameraConfig.FocalDistance = 10
	s.CameraConfig.ApertureRadius = 8
	s.applyCameraOverride(cameraOverrides)

	s.SamplingConfig.BeamSize = 9

	mirror := geometry.NewSurface(rgb(50, 50, 50), material.New().WithKr(core.Splat(1)))
	panel := geometry.NewSurface(green, material.Phong(0.00001, 0.0000002, 30).WithKt(core.Splat(0.6)))
	s.Add(
		// Mirror wall
		must(geometry.NewTriangle(core.NewVec3(2, -2, 0), core.NewVec3(-2, 2, 0), core.NewVec3(-2, 2, 2), mirror)),
		must(geometry.NewTriangle(core.NewVec3(2, -2, 0), core.NewVec3(-2, 2, 2), core.NewVec3(2, -2, 2), mirror)),
		// Floor
		must(geometry.NewTriangle(core.NewVec3(2, -2, 0), core.NewVec3(-2, 2, 0), core.NewVec3(3, 3, 0),
			geometry.NewSurface(rgb(20, 20, 20), material.Phong(0.5, 0.2, 100)))),
		must(geometry.NewSphere(core.NewVec3(1.5, 0.5, 1), 0.5,
			geometry.NewSurface(blue, material.Phong(0.5, 0.1, 100)))),
		must(geometry.NewSphere(core.NewVec3(2, -0.75, 0.5), 0.3,
			geometry.NewSurface(yellow, material.New().WithKr(core.Splat(1))))),
		// Transparent panel
		must(geometry.NewTriangle(core.NewVec3(2, 2, 1), core.NewVec3(3, 1, 1), core.NewVec3(2, 2, 2), panel)),
		must(geometry.NewTriangle(core.NewVec3(3, 1, 1), core.NewVec3(2, 2, 2), core.NewVec3(3, 1, 2), panel)),
	)

	s.AddLight(
		must(lights.NewPointLight(
			rgb(500, 400, 400),
			core.NewVec3(20, 4, 20),
			lights.Attenuation{Kc: 1, Kl: 0.00001, Kq: 0.000006},
		)),
		must(lights.NewSpotLight(
			rgb(700, 400, 400),
			core.NewVec3(-20, 2, 5),
			core.NewVec3(1, 0, 0),
			lights.Attenuation{Kc: 1, Kl: 0.0000001, Kq: 0.000005},
			lights.DefaultNarrowBeam,
		)),
	)

	return s
}
