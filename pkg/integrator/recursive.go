package integrator

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// RecursiveIntegrator implements Whitted-style ray tracing: Phong local
// shading with shadow transparency, plus recursive reflection and refraction.
// It is read-only after construction and safe for concurrent use.
type RecursiveIntegrator struct {
	scene  *scene.Scene
	config Config
}

// NewRecursiveIntegrator creates a new recursive integrator
func NewRecursiveIntegrator(s *scene.Scene, config Config) *RecursiveIntegrator {
	return &RecursiveIntegrator{
		scene:  s,
		config: config,
	}
}

// TraceRay returns the background for a miss, otherwise the shaded color of
// the closest hit plus the ambient light
func (ri *RecursiveIntegrator) TraceRay(ray core.Ray) core.Vec3 {
	closest, ok := ri.findClosest(ray)
	if !ok {
		return ri.scene.Background
	}
	return ri.calcColor(closest, ray, ri.config.MaxDepth, core.Splat(1)).Add(ri.scene.AmbientLight)
}

// findClosest returns the hit nearest to the ray origin
func (ri *RecursiveIntegrator) findClosest(ray core.Ray) (geometry.GeoPoint, bool) {
	hits := ri.scene.Geometries.Intersect(ray, math.Inf(1))
	return geometry.FindClosest(ray, hits)
}

// calcColor shades a hit at the given recursion level with accumulated attenuation k
func (ri *RecursiveIntegrator) calcColor(gp geometry.GeoPoint, ray core.Ray, level int, k core.Vec3) core.Vec3 {
	color := gp.Geometry.Emission().Add(ri.localEffects(gp, ray, k))
	if level <= 1 {
		return color
	}
	return color.Add(ri.globalEffects(gp, ray, level, k))
}

// localEffects sums the Phong diffuse and specular terms of every light that
// is on the viewer's side of the surface, scaled by its shadow transparency
func (ri *RecursiveIntegrator) localEffects(gp geometry.GeoPoint, ray core.Ray, k core.Vec3) core.Vec3 {
	var color core.Vec3

	v := ray.Direction
	n := gp.Geometry.NormalAt(gp.Point)
	nv := core.AlignZero(n.Dot(v))
	if nv == 0 {
		return color
	}
	mat := gp.Geometry.Material()

	for _, light := range ri.scene.Lights {
		l := light.DirectionAt(gp.Point)
		nl := core.AlignZero(n.Dot(l))
		if nl*nv <= 0 {
			continue
		}

		ktr := ri.transparency(light, l, n, gp)
		if k.MultiplyVec(ktr).LowerThan(ri.config.MinAttenuation) {
			continue
		}

		il := light.IntensityAt(gp.Point).MultiplyVec(ktr)
		diffuse := mat.Kd.Multiply(math.Abs(nl))

		r := l.Subtract(n.Multiply(2 * nl))
		vr := core.AlignZero(v.Negate().Dot(r))
		specular := mat.Ks.Multiply(math.Pow(math.Max(0, vr), float64(mat.Shininess)))

		color = color.Add(il.MultiplyVec(diffuse.Add(specular)))
	}
	return color
}

// transparency returns the product of the kt of every object between the
// point and the light. An opaque occluder ends the product at zero.
func (ri *RecursiveIntegrator) transparency(light lights.LightSource, l, n core.Vec3, gp geometry.GeoPoint) core.Vec3 {
	toLight := l.Negate()
	shadowRay := core.NewOffsetRay(gp.Point, toLight, n, ri.config.Delta)
	hits := ri.scene.Geometries.Intersect(shadowRay, light.DistanceTo(gp.Point))

	ktr := core.Splat(1)
	for _, hit := range hits {
		ktr = ktr.MultiplyVec(hit.Geometry.Material().Kt)
		if ktr.LowerThan(ri.config.MinAttenuation) {
			return core.Vec3{}
		}
	}
	return ktr
}

// globalEffects adds the reflected and refracted contributions. Each branch
// is only traced when its accumulated attenuation stays above the threshold.
func (ri *RecursiveIntegrator) globalEffects(gp geometry.GeoPoint, ray core.Ray, level int, k core.Vec3) core.Vec3 {
	var color core.Vec3
	n := gp.Geometry.NormalAt(gp.Point)
	mat := gp.Geometry.Material()

	if kkr := mat.Kr.MultiplyVec(k); !kkr.LowerThan(ri.config.MinAttenuation) {
		color = color.Add(ri.globalEffect(ri.reflectedRay(n, gp.Point, ray), level, mat.Kr, kkr))
	}
	if kkt := mat.Kt.MultiplyVec(k); !kkt.LowerThan(ri.config.MinAttenuation) {
		color = color.Add(ri.globalEffect(ri.refractedRay(n, gp.Point, ray), level, mat.Kt, kkt))
	}
	return color
}

// globalEffect traces a secondary ray one level deeper and scales the result by kx
func (ri *RecursiveIntegrator) globalEffect(ray core.Ray, level int, kx, kkx core.Vec3) core.Vec3 {
	closest, ok := ri.findClosest(ray)
	if !ok {
		return ri.scene.Background
	}
	return ri.calcColor(closest, ray, level-1, kkx).MultiplyVec(kx)
}

// reflectedRay mirrors the incoming direction about the normal
func (ri *RecursiveIntegrator) reflectedRay(n, point core.Vec3, ray core.Ray) core.Ray {
	v := ray.Direction
	r := v.Subtract(n.Multiply(core.AlignZero(2 * n.Dot(v))))
	return core.NewOffsetRay(point, r.Normalize(), n, ri.config.Delta)
}

// refractedRay continues in the incoming direction without bending
func (ri *RecursiveIntegrator) refractedRay(n, point core.Vec3, ray core.Ray) core.Ray {
	return core.NewOffsetRay(point, ray.Direction, n, ri.config.Delta)
}
