package core

// Ray represents a ray with an origin and a unit-length direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray, normalizing the direction
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// NewOffsetRay creates a ray leaving a surface point. The origin is pushed
// delta along the normal, onto the side the direction points to, so the ray
// does not immediately hit the surface it starts on.
func NewOffsetRay(point, direction, normal Vec3, delta float64) Ray {
	nd := AlignZero(normal.Dot(direction))
	origin := point
	if nd > 0 {
		origin = point.Add(normal.Multiply(delta))
	} else if nd < 0 {
		origin = point.Add(normal.Multiply(-delta))
	}
	return NewRay(origin, direction)
}

// At returns the point at parameter t along the ray.
// A t within Epsilon of zero returns the origin itself.
func (r Ray) At(t float64) Vec3 {
	if IsZero(t) {
		return r.Origin
	}
	return r.Origin.Add(r.Direction.Multiply(t))
}
