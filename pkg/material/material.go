package material

import (
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Material holds the Phong coefficients of a surface.
// Kd and Ks drive local shading, Kr and Kt scale the reflected and
// transmitted rays. The zero value is a black, non-reflective surface.
type Material struct {
	Kd        core.Vec3 // Diffuse coefficient
	Ks        core.Vec3 // Specular coefficient
	Kr        core.Vec3 // Reflection coefficient
	Kt        core.Vec3 // Transparency coefficient
	Shininess int       // Specular exponent
}

// New returns the zero material
func New() Material {
	return Material{}
}

// Phong creates a material with scalar diffuse and specular coefficients
func Phong(kd, ks float64, shininess int) Material {
	return Material{
		Kd:        core.Splat(kd),
		Ks:        core.Splat(ks),
		Shininess: shininess,
	}
}

// WithKd returns a copy with the diffuse coefficient replaced
func (m Material) WithKd(kd core.Vec3) Material {
	m.Kd = kd
	return m
}

// WithKs returns a copy with the specular coefficient replaced
func (m Material) WithKs(ks core.Vec3) Material {
	m.Ks = ks
	return m
}

// WithKr returns a copy with the reflection coefficient replaced
func (m Material) WithKr(kr core.Vec3) Material {
	m.Kr = kr
	return m
}

// WithKt returns a copy with the transparency coefficient replaced
func (m Material) WithKt(kt core.Vec3) Material {
	m.Kt = kt
	return m
}

// WithShininess returns a copy with the specular exponent replaced
func (m Material) WithShininess(shininess int) Material {
	m.Shininess = shininess
	return m
}

// IsOpaque reports whether no light passes through the surface
func (m Material) IsOpaque() bool {
	return m.Kt.IsZeroVector()
}

// Validate checks that every coefficient lies in [0,1] and shininess is not negative
func (m Material) Validate() error {
	if m.Shininess < 0 {
		return fmt.Errorf("shininess must not be negative, got %d", m.Shininess)
	}
	coefficients := []struct {
		name  string
		value core.Vec3
	}{
		{"kd", m.Kd},
		{"ks", m.Ks},
		{"kr", m.Kr},
		{"kt", m.Kt},
	}
	for _, c := range coefficients {
		for _, channel := range []float64{c.value.X, c.value.Y, c.value.Z} {
			if channel < 0 || channel > 1 {
				return fmt.Errorf("%s channel %g outside [0,1]", c.name, channel)
			}
		}
	}
	return nil
}
