package geometry

import (
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Tube is an infinite cylinder around an axis ray
type Tube struct {
	Surface
	Axis   core.Ray
	Radius float64
}

// NewTube creates a new tube
func NewTube(axis core.Ray, radius float64, surface Surface) (*Tube, error) {
	if axis.Direction.IsZeroVector() {
		return nil, fmt.Errorf("tube axis: %w", core.ErrZeroVector)
	}
	if core.AlignZero(radius) <= 0 {
		return nil, fmt.Errorf("tube radius must be positive, got %g", radius)
	}
	return &Tube{
		Surface: surface,
		Axis:    axis,
		Radius:  radius,
	}, nil
}

// NormalAt returns the radial direction from the axis to the point
func (tb *Tube) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(tb.axisFoot(point)).Normalize()
}

// Intersect always misses: an infinite tube is not an intersectable solid.
// Use Cylinder for bounded tubes.
func (tb *Tube) Intersect(ray core.Ray, maxDistance float64) []GeoPoint {
	return nil
}

// axisFoot returns the point on the axis closest to p
func (tb *Tube) axisFoot(p core.Vec3) core.Vec3 {
	t := p.Subtract(tb.Axis.Origin).Dot(tb.Axis.Direction)
	return tb.Axis.At(t)
}
