// Package window creates a window with a current OpenGL 3.3 core context.
package window

import (
	"runtime"

	"github.com/Faultbox/learnopengl/internal/engine/window/backend"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// GL context version requested by every backend.
const (
	GLMajor = 3
	GLMinor = 3
)

// Backend names a windowing library.
type Backend = backend.Name

const (
	BackendGLFW = backend.GLFW
	BackendSDL  = backend.SDL
)

// ParseBackend validates a backend name. The empty string selects GLFW.
func ParseBackend(name string) (Backend, error) {
	return backend.Parse(name)
}

// Key is a keyboard key the scenes care about.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyTab
	KeyUp
	KeyDown
	KeyF12
)

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "escape"
	case KeySpace:
		return "space"
	case KeyTab:
		return "tab"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyF12:
		return "f12"
	default:
		return "unknown"
	}
}

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	Backend    Backend
}

// Window is a native window whose GL context is current on the calling thread.
type Window interface {
	ShouldClose() bool
	SetShouldClose(bool)
	// PollEvents processes pending events, invoking the resize callback.
	PollEvents()
	SwapBuffers()
	// Time returns seconds since the window was created.
	Time() float64
	// KeyPressed reports whether k is currently held down.
	KeyPressed(k Key) bool
	// FramebufferSize returns the drawable size in pixels.
	FramebufferSize() (width, height int)
	SetResizeCallback(fn func(width, height int))
	Close()
}

// New creates a window using the configured backend.
func New(cfg Config) (Window, error) {
	kind, err := ParseBackend(string(cfg.Backend))
	if err != nil {
		return nil, err
	}
	var (
		w   Window
		werr error
	)
	switch kind {
	case BackendSDL:
		w, werr = newSDL(cfg)
	default:
		w, werr = newGLFW(cfg)
	}
	if werr != nil {
		return nil, werr
	}
	return w, nil
}
