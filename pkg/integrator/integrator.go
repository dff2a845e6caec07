package integrator

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// TraceRay returns the color seen along a ray
	TraceRay(ray core.Ray) core.Vec3
}

// Config holds the recursion limits of the recursive integrator
type Config struct {
	MaxDepth       int     // Recursion levels, level 1 shades locally only
	MinAttenuation float64 // Branches whose accumulated k falls below this in every channel are pruned
	Delta          float64 // Offset of secondary ray origins along the surface normal
}

// DefaultConfig returns the standard recursion limits
func DefaultConfig() Config {
	return Config{
		MaxDepth:       10,
		MinAttenuation: 0.001,
		Delta:          0.1,
	}
}
