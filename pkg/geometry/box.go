package geometry

import (
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// boxFaces lists the 12 triangles of a box as indices into its 8 corners,
// two per face, wound so the plane normals point outward.
var boxFaces = []int{
	4, 5, 6, 4, 6, 7, // front (Z+)
	1, 0, 3, 1, 3, 2, // back (Z-)
	5, 1, 2, 5, 2, 6, // right (X+)
	0, 4, 7, 0, 7, 3, // left (X-)
	3, 7, 6, 3, 6, 2, // top (Y+)
	0, 1, 5, 0, 5, 4, // bottom (Y-)
}

// NewBox creates a box made of 12 triangles.
// Size represents half-extents (so a size of (1,1,1) creates a 2x2x2 box).
// Rotation is in radians around X, Y, Z axes (applied in that order).
func NewBox(center, size, rotation core.Vec3, surface Surface) (*Geometries, error) {
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return nil, fmt.Errorf("box half-extents must be positive, got %v", size)
	}

	// Define the 8 corners of a unit box centered at origin
	corners := []core.Vec3{
		core.NewVec3(-1, -1, -1), // 0: left-bottom-back
		core.NewVec3(1, -1, -1),  // 1: right-bottom-back
		core.NewVec3(1, 1, -1),   // 2: right-top-back
		core.NewVec3(-1, 1, -1),  // 3: left-top-back
		core.NewVec3(-1, -1, 1),  // 4: left-bottom-front
		core.NewVec3(1, -1, 1),   // 5: right-bottom-front
		core.NewVec3(1, 1, 1),    // 6: right-top-front
		core.NewVec3(-1, 1, 1),   // 7: left-top-front
	}

	// Scale by size, rotate about the box center, then translate
	for i := range corners {
		corners[i] = rotateVertex(corners[i].MultiplyVec(size), rotation).Add(center)
	}

	return NewTriangleMesh(corners, boxFaces, surface, nil)
}

// NewAxisAlignedBox creates a new axis-aligned box (no rotation)
func NewAxisAlignedBox(center, size core.Vec3, surface Surface) (*Geometries, error) {
	return NewBox(center, size, core.NewVec3(0, 0, 0), surface)
}
