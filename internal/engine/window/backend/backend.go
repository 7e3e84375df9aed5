// Package backend names the windowing libraries. It has no cgo
// dependencies so configuration can validate names without linking them.
package backend

import (
	"fmt"
	"strings"
)

// Name names a windowing library.
type Name string

const (
	GLFW Name = "glfw"
	SDL  Name = "sdl"
)

// Parse validates a backend name. The empty string selects GLFW.
func Parse(name string) (Name, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "glfw":
		return GLFW, nil
	case "sdl", "sdl2":
		return SDL, nil
	}
	return "", fmt.Errorf("unknown window backend %q (want glfw or sdl)", name)
}
