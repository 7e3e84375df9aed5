package window

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/learnopengl/internal/logger"
)

type glfwWindow struct {
	win      *glfw.Window
	onResize func(width, height int)
}

func newGLFW(cfg Config) (*glfwWindow, error) {
	log := logger.Named("window")

	log.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	if runtime.GOOS == "darwin" {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}
	win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &glfwWindow{win: win}
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if w.onResize != nil {
			w.onResize(width, height)
		}
	})

	log.Info("window created",
		zap.String("backend", string(BackendGLFW)),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)
	return w, nil
}

func (w *glfwWindow) ShouldClose() bool { return w.win.ShouldClose() }

func (w *glfwWindow) SetShouldClose(v bool) { w.win.SetShouldClose(v) }

func (w *glfwWindow) PollEvents() { glfw.PollEvents() }

func (w *glfwWindow) SwapBuffers() { w.win.SwapBuffers() }

func (w *glfwWindow) Time() float64 { return glfw.GetTime() }

func (w *glfwWindow) KeyPressed(k Key) bool {
	key, ok := glfwKeys[k]
	return ok && w.win.GetKey(key) == glfw.Press
}

func (w *glfwWindow) FramebufferSize() (int, int) { return w.win.GetFramebufferSize() }

func (w *glfwWindow) SetResizeCallback(fn func(width, height int)) { w.onResize = fn }

func (w *glfwWindow) Close() {
	logger.Named("window").Info("closing window")
	w.win.Destroy()
	glfw.Terminate()
}

var glfwKeys = map[Key]glfw.Key{
	KeyEscape: glfw.KeyEscape,
	KeySpace:  glfw.KeySpace,
	KeyTab:    glfw.KeyTab,
	KeyUp:     glfw.KeyUp,
	KeyDown:   glfw.KeyDown,
	KeyF12:    glfw.KeyF12,
}
