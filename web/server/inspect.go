package server

import (
	"math"
	"net/http"
	"strconv"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Emission     [3]float64             `json:"emission"`
	Material     map[string]interface{} `json:"material,omitempty"`
	Geometry     map[string]interface{} `json:"geometry,omitempty"`
}

func toArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// extractMaterialInfo lists the Phong coefficients of a material
func extractMaterialInfo(mat material.Material) map[string]interface{} {
	return map[string]interface{}{
		"kd":        toArray(mat.Kd),
		"ks":        toArray(mat.Ks),
		"kr":        toArray(mat.Kr),
		"kt":        toArray(mat.Kt),
		"shininess": mat.Shininess,
		"opaque":    mat.IsOpaque(),
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(geom geometry.Geometry) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch g := geom.(type) {
	case *geometry.Sphere:
		properties["center"] = toArray(g.Center)
		properties["radius"] = g.Radius
		return "sphere", properties

	case *geometry.Plane:
		properties["point"] = toArray(g.Point)
		properties["normal"] = toArray(g.Normal)
		return "plane", properties

	case *geometry.Triangle:
		properties["vertices"] = [3][3]float64{toArray(g.V0), toArray(g.V1), toArray(g.V2)}
		return "triangle", properties

	case *geometry.Cylinder:
		axis := g.Axis()
		properties["baseCenter"] = toArray(axis.Origin)
		properties["axis"] = toArray(axis.Direction)
		properties["radius"] = g.Radius()
		properties["height"] = g.Height
		return "cylinder", properties

	case *geometry.Tube:
		properties["origin"] = toArray(g.Axis.Origin)
		properties["axis"] = toArray(g.Axis.Direction)
		properties["radius"] = g.Radius
		return "tube", properties

	default:
		return "unknown", properties
	}
}

// inspectPixel finds the closest surface seen through a pixel
func inspectPixel(sceneObj *scene.Scene, camera *geometry.Camera, width, height, x, y int) InspectResponse {
	ray := camera.ConstructRay(width, height, x, y)
	closest, ok := geometry.FindClosest(ray, sceneObj.Geometries.Intersect(ray, math.Inf(1)))
	if !ok {
		return InspectResponse{Hit: false}
	}

	geometryType, geometryProps := extractGeometryInfo(closest.Geometry)
	return InspectResponse{
		Hit:          true,
		GeometryType: geometryType,
		Point:        toArray(closest.Point),
		Normal:       toArray(closest.Geometry.NormalAt(closest.Point)),
		Distance:     closest.Point.Distance(ray.Origin),
		Emission:     toArray(closest.Geometry.Emission()),
		Material:     extractMaterialInfo(closest.Geometry.Material()),
		Geometry:     geometryProps,
	}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	sceneObj, req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	// Parse pixel coordinates
	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	// Validate pixel coordinates
	if pixelX < 0 || pixelX >= req.Width || pixelY < 0 || pixelY >= req.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	camera, err := sceneObj.NewCamera()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, camera, req.Width, req.Height, pixelX, pixelY))
}
