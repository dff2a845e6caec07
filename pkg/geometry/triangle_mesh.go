package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// TriangleMeshOptions contains optional parameters for triangle mesh creation
type TriangleMeshOptions struct {
	Surfaces []Surface  // Optional per-triangle surfaces
	Rotation *core.Vec3 // Optional rotation (radians around X, Y, Z) applied to vertices
	Center   *core.Vec3 // Optional center point for rotation
}

// NewTriangleMesh builds a group of triangles from vertices and face indices.
// vertices: array of 3D points
// faces: array of triangle indices (each group of 3 indices forms a triangle)
// surface: default surface for all triangles
// options: optional parameters (can be nil for basic mesh)
func NewTriangleMesh(vertices []core.Vec3, faces []int, surface Surface, options *TriangleMeshOptions) (*Geometries, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face indices must be a multiple of 3, got %d", len(faces))
	}

	numTriangles := len(faces) / 3
	if options != nil && options.Surfaces != nil && len(options.Surfaces) != numTriangles {
		return nil, fmt.Errorf("got %d surfaces for %d triangles", len(options.Surfaces), numTriangles)
	}

	// Apply rotation if specified
	workingVertices := vertices
	if options != nil && options.Rotation != nil {
		workingVertices = make([]core.Vec3, len(vertices))
		for i, vertex := range vertices {
			// Translate to center, rotate, then translate back
			if options.Center != nil {
				vertex = vertex.Subtract(*options.Center)
			}
			vertex = rotateVertex(vertex, *options.Rotation)
			if options.Center != nil {
				vertex = vertex.Add(*options.Center)
			}
			workingVertices[i] = vertex
		}
	}

	mesh := NewGeometries()
	for i := 0; i < numTriangles; i++ {
		i0 := faces[i*3]
		i1 := faces[i*3+1]
		i2 := faces[i*3+2]

		if i0 >= len(workingVertices) || i1 >= len(workingVertices) || i2 >= len(workingVertices) ||
			i0 < 0 || i1 < 0 || i2 < 0 {
			return nil, fmt.Errorf("face %d index out of bounds", i)
		}

		triangleSurface := surface
		if options != nil && options.Surfaces != nil {
			triangleSurface = options.Surfaces[i]
		}

		triangle, err := NewTriangle(workingVertices[i0], workingVertices[i1], workingVertices[i2], triangleSurface)
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}
		mesh.Add(triangle)
	}

	return mesh, nil
}

// rotateVertex applies rotation around X, Y, Z axes (in that order)
func rotateVertex(vertex, rotation core.Vec3) core.Vec3 {
	// Rotation around X axis
	if rotation.X != 0 {
		cos := math.Cos(rotation.X)
		sin := math.Sin(rotation.X)
		y := vertex.Y*cos - vertex.Z*sin
		z := vertex.Y*sin + vertex.Z*cos
		vertex = core.NewVec3(vertex.X, y, z)
	}

	// Rotation around Y axis
	if rotation.Y != 0 {
		cos := math.Cos(rotation.Y)
		sin := math.Sin(rotation.Y)
		x := vertex.X*cos + vertex.Z*sin
		z := -vertex.X*sin + vertex.Z*cos
		vertex = core.NewVec3(x, vertex.Y, z)
	}

	// Rotation around Z axis
	if rotation.Z != 0 {
		cos := math.Cos(rotation.Z)
		sin := math.Sin(rotation.Z)
		x := vertex.X*cos - vertex.Y*sin
		y := vertex.X*sin + vertex.Y*cos
		vertex = core.NewVec3(x, y, vertex.Z)
	}

	return vertex
}
