package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-recursive-raytracer/pkg/geometry"
)

// ErrUnknownScene is returned by Create for an id with no built-in scene
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Identifier accepted by Create
	Name        string `json:"name"`        // Display name
	Description string `json:"description"` // One-line summary
}

type builtinScene struct {
	info   SceneInfo
	create func(cameraOverrides ...geometry.CameraConfig) *Scene
}

var builtinScenes = map[string]builtinScene{
	"default": {
		info:   SceneInfo{Name: "Mirror Room", Description: "Mirrored corner with small spheres, three light types and depth of field"},
		create: NewDefaultScene,
	},
	"two-spheres": {
		info:   SceneInfo{Name: "Two Spheres", Description: "Transparent sphere around an opaque one under a spot light"},
		create: NewTwoSpheresScene,
	},
	"mirrors": {
		info:   SceneInfo{Name: "Two Spheres on Mirrors", Description: "Nested spheres reflected in two triangular mirrors"},
		create: NewMirrorsScene,
	},
	"transparent-shadow": {
		info:   SceneInfo{Name: "Transparent Shadow", Description: "Partial shadow cast by a transparent sphere onto two triangles"},
		create: NewTransparentShadowScene,
	},
	"all-effects": {
		info:   SceneInfo{Name: "All Effects", Description: "Reflection, transparency and depth of field with two lights"},
		create: NewAllEffectsScene,
	},
	"cylinders": {
		info:   SceneInfo{Name: "Cylinders", Description: "Capped cylinders on a reflective ground plane"},
		create: NewCylinderScene,
	},
	"cornell": {
		info:   SceneInfo{Name: "Cornell Box", Description: "Cornell box with a mirror sphere and a glass sphere"},
		create: NewCornellScene,
	},
}

// ListBuiltinScenes returns the built-in scenes sorted by id
func ListBuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for id, entry := range builtinScenes {
		info := entry.info
		info.ID = id
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})

	return scenes
}

// Create builds the built-in scene with the given id
func Create(id string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	entry, ok := builtinScenes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}
	return entry.create(cameraOverrides...), nil
}
