package scenes

import (
	"fmt"
	"sort"
	"strings"
)

// Default is the scene run when none is configured.
const Default = "two-triangles"

var registry = map[string]func() Scene{
	"triangle":      func() Scene { return &triangle{} },
	"two-triangles": func() Scene { return &twoTriangles{} },
	"two-programs":  func() Scene { return &twoPrograms{} },
	"rectangle":     func() Scene { return &rectangle{} },
	"textured":      func() Scene { return &textured{mix: defaultMix} },
}

// Get returns a fresh instance of the named scene.
func Get(name string) (Scene, error) {
	newScene, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return newScene(), nil
}

// Names returns the registered scene names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
