package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-cornell-pathtracer/pkg/core"
)

// ErrUnknownScene is returned by Create for names that are not registered
var ErrUnknownScene = errors.New("scene: unknown scene")

// SceneInfo describes a registered scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
}

type sceneEntry struct {
	info   SceneInfo
	create func() *Scene
}

var registry = map[string]sceneEntry{
	"cornell": {
		info:   SceneInfo{ID: "cornell", DisplayName: "Cornell Box", Description: "Red and green walls, ceiling light, two rotated boxes and a sphere"},
		create: NewCornellScene,
	},
	"cornell-smoke": {
		info:   SceneInfo{ID: "cornell-smoke", DisplayName: "Cornell Smoke", Description: "Cornell box with the boxes replaced by constant-density smoke"},
		create: NewCornellSmokeScene,
	},
	"cornell-motion": {
		info:   SceneInfo{ID: "cornell-motion", DisplayName: "Cornell Motion Blur", Description: "Cornell box with a sphere moving while the shutter is open"},
		create: NewCornellMotionScene,
	},
	"light-panel": {
		info:   SceneInfo{ID: "light-panel", DisplayName: "Light Panel", Description: "A single emitter filling the view"},
		create: func() *Scene { return NewLightPanelScene(core.NewVec3(0.5, 0.5, 0.5)) },
	},
	"empty": {
		info:   SceneInfo{ID: "empty", DisplayName: "Empty", Description: "No shapes and no light"},
		create: NewEmptyScene,
	},
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns the descriptions of all registered scenes sorted by ID
func List() []SceneInfo {
	infos := make([]SceneInfo, 0, len(registry))
	for _, name := range Names() {
		infos = append(infos, registry[name].info)
	}
	return infos
}

// Create builds a fresh, unprocessed instance of the named scene
func Create(name string) (*Scene, error) {
	entry, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return entry.create(), nil
}
