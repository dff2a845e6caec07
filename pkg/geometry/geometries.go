package geometry

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Geometries is an interior node of the scene graph. Its children may be
// leaf geometries or further groups; their order carries no meaning.
type Geometries struct {
	items []Intersectable
}

// NewGeometries creates a group holding the given items
func NewGeometries(items ...Intersectable) *Geometries {
	g := &Geometries{}
	g.Add(items...)
	return g
}

// Add appends items to the group
func (g *Geometries) Add(items ...Intersectable) {
	g.items = append(g.items, items...)
}

// Len returns the number of direct children
func (g *Geometries) Len() int {
	return len(g.items)
}

// PrimitiveCount returns the number of leaf geometries, counting through
// nested groups
func (g *Geometries) PrimitiveCount() int {
	count := 0
	for _, item := range g.items {
		if group, ok := item.(*Geometries); ok {
			count += group.PrimitiveCount()
		} else {
			count++
		}
	}
	return count
}

// Intersect returns the union of the children's hits.
// An empty group, or one whose children all miss, returns nil.
func (g *Geometries) Intersect(ray core.Ray, maxDistance float64) []GeoPoint {
	var hits []GeoPoint
	for _, item := range g.items {
		hits = append(hits, item.Intersect(ray, maxDistance)...)
	}
	return hits
}

// FindClosest returns the hit nearest to the ray origin.
// Ties keep the first hit seen; an empty list reports false.
func FindClosest(ray core.Ray, hits []GeoPoint) (GeoPoint, bool) {
	if len(hits) == 0 {
		return GeoPoint{}, false
	}

	closest := hits[0]
	closestDistance := ray.Origin.DistanceSquared(closest.Point)
	for _, hit := range hits[1:] {
		if d := ray.Origin.DistanceSquared(hit.Point); d < closestDistance {
			closest = hit
			closestDistance = d
		}
	}
	return closest, true
}

// Points drops the geometry references and returns only the hit points
func Points(hits []GeoPoint) []core.Vec3 {
	if len(hits) == 0 {
		return nil
	}
	points := make([]core.Vec3, len(hits))
	for i, hit := range hits {
		points[i] = hit.Point
	}
	return points
}
