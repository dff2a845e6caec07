package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// DefaultApertureRadius is the lens radius used when depth of field is sampled
const DefaultApertureRadius = 1.0

var (
	// ErrNotOrthogonal is returned when the forward and up vectors are not perpendicular
	ErrNotOrthogonal = errors.New("camera forward and up vectors are not orthogonal")
	// ErrInvalidViewPlane is returned for a non-positive view plane size or distance
	ErrInvalidViewPlane = errors.New("view plane width, height and distance must be positive")
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Position       core.Vec3 // Camera position
	Forward        core.Vec3 // Viewing direction
	Up             core.Vec3 // Up direction, perpendicular to Forward
	Width          float64   // View plane width
	Height         float64   // View plane height
	Distance       float64   // Distance from camera to view plane
	ApertureRadius float64   // Lens radius for depth of field sampling
	FocalDistance  float64   // Distance past the view plane that stays in focus (0 = view plane)
}

// NewCameraConfig returns a config for the given basis with default lens settings.
// The view plane size and distance still have to be set.
func NewCameraConfig(position, forward, up core.Vec3) CameraConfig {
	return CameraConfig{
		Position:       position,
		Forward:        forward,
		Up:             up,
		ApertureRadius: DefaultApertureRadius,
		FocalDistance:  0,
	}
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if !override.Position.IsZeroVector() {
		result.Position = override.Position
	}
	if !override.Forward.IsZeroVector() {
		result.Forward = override.Forward
	}
	if !override.Up.IsZeroVector() {
		result.Up = override.Up
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.Distance != 0 {
		result.Distance = override.Distance
	}
	if override.ApertureRadius != 0 {
		result.ApertureRadius = override.ApertureRadius
	}
	if override.FocalDistance != 0 {
		result.FocalDistance = override.FocalDistance
	}
	return result
}

// Camera generates primary rays through a view plane
type Camera struct {
	position       core.Vec3
	forward        core.Vec3
	up             core.Vec3
	right          core.Vec3
	width          float64
	height         float64
	distance       float64
	apertureRadius float64
	focalDistance  float64
}

// NewCamera validates the configuration and creates an immutable camera
func NewCamera(config CameraConfig) (*Camera, error) {
	forward, err := config.Forward.Unit()
	if err != nil {
		return nil, fmt.Errorf("camera forward: %w", err)
	}
	up, err := config.Up.Unit()
	if err != nil {
		return nil, fmt.Errorf("camera up: %w", err)
	}
	if !core.IsZero(forward.Dot(up)) {
		return nil, ErrNotOrthogonal
	}
	if core.AlignZero(config.Width) <= 0 || core.AlignZero(config.Height) <= 0 || core.AlignZero(config.Distance) <= 0 {
		return nil, fmt.Errorf("%w: width=%g height=%g distance=%g",
			ErrInvalidViewPlane, config.Width, config.Height, config.Distance)
	}
	if config.ApertureRadius < 0 || config.FocalDistance < 0 {
		return nil, fmt.Errorf("aperture radius and focal distance must not be negative, got %g and %g",
			config.ApertureRadius, config.FocalDistance)
	}

	return &Camera{
		position:       config.Position,
		forward:        forward,
		up:             up,
		right:          forward.Cross(up).Normalize(),
		width:          config.Width,
		height:         config.Height,
		distance:       config.Distance,
		apertureRadius: config.ApertureRadius,
		focalDistance:  config.FocalDistance,
	}, nil
}

// ConstructRay builds the ray from the camera position through the center of
// pixel (col, row) on an nx by ny grid. Row 0 is the top of the image.
func (c *Camera) ConstructRay(nx, ny, col, row int) core.Ray {
	// Image center
	center := c.position.Add(c.forward.Multiply(c.distance))

	// Pixel size
	rx := c.width / float64(nx)
	ry := c.height / float64(ny)

	xj := core.AlignZero((float64(col) - float64(nx-1)/2.0) * rx)
	yi := core.AlignZero(-(float64(row) - float64(ny-1)/2.0) * ry)

	// The middle pixel looks straight ahead
	if xj == 0 && yi == 0 {
		return core.Ray{Origin: c.position, Direction: c.forward}
	}

	pixel := center
	if xj != 0 {
		pixel = pixel.Add(c.right.Multiply(xj))
	}
	if yi != 0 {
		pixel = pixel.Add(c.up.Multiply(yi))
	}
	return core.NewRay(c.position, pixel.Subtract(c.position))
}

// Position returns the camera position
func (c *Camera) Position() core.Vec3 { return c.position }

// Forward returns the unit viewing direction
func (c *Camera) Forward() core.Vec3 { return c.forward }

// Up returns the unit up direction
func (c *Camera) Up() core.Vec3 { return c.up }

// Right returns the unit right direction (forward × up)
func (c *Camera) Right() core.Vec3 { return c.right }

// Width returns the view plane width
func (c *Camera) Width() float64 { return c.width }

// Height returns the view plane height
func (c *Camera) Height() float64 { return c.height }

// Distance returns the distance to the view plane
func (c *Camera) Distance() float64 { return c.distance }

// ApertureRadius returns the lens radius
func (c *Camera) ApertureRadius() float64 { return c.apertureRadius }

// FocalDistance returns the focus distance past the view plane
func (c *Camera) FocalDistance() float64 { return c.focalDistance }
