package window

import (
	"fmt"
	"runtime"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/learnopengl/internal/logger"
)

type sdlWindow struct {
	log         *zap.Logger
	win         *sdl.Window
	glContext   sdl.GLContext
	created     time.Time
	shouldClose bool
	onResize    func(width, height int)
}

func newSDL(cfg Config) (*sdlWindow, error) {
	w := &sdlWindow{log: logger.Named("window"), created: time.Now()}

	w.log.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// Attributes must be set BEFORE the window is created.
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, GLMajor)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, GLMinor)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	if runtime.GOOS == "darwin" {
		sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	}
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	var err error
	w.win, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	w.glContext, err = w.win.GLCreateContext()
	if err != nil {
		w.win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		w.log.Warn("failed to set swap interval", zap.Int("interval", interval), zap.Error(err))
	}

	w.log.Info("window created",
		zap.String("backend", string(BackendSDL)),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)
	return w, nil
}

func (w *sdlWindow) ShouldClose() bool { return w.shouldClose }

func (w *sdlWindow) SetShouldClose(v bool) { w.shouldClose = v }

// PollEvents drains the SDL event queue.
func (w *sdlWindow) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			w.shouldClose = true
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED && w.onResize != nil {
				// The drawable can be larger than the window on HiDPI displays.
				w.onResize(w.FramebufferSize())
			}
		}
	}
}

func (w *sdlWindow) SwapBuffers() { w.win.GLSwap() }

func (w *sdlWindow) Time() float64 { return time.Since(w.created).Seconds() }

func (w *sdlWindow) KeyPressed(k Key) bool {
	code, ok := sdlScancodes[k]
	if !ok {
		return false
	}
	return sdl.GetKeyboardState()[code] != 0
}

func (w *sdlWindow) FramebufferSize() (int, int) {
	width, height := w.win.GLGetDrawableSize()
	return int(width), int(height)
}

func (w *sdlWindow) SetResizeCallback(fn func(width, height int)) { w.onResize = fn }

// Close destroys the window and cleans up SDL2.
func (w *sdlWindow) Close() {
	w.log.Info("closing window")
	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.win != nil {
		w.win.Destroy()
	}
	sdl.Quit()
}

var sdlScancodes = map[Key]sdl.Scancode{
	KeyEscape: sdl.SCANCODE_ESCAPE,
	KeySpace:  sdl.SCANCODE_SPACE,
	KeyTab:    sdl.SCANCODE_TAB,
	KeyUp:     sdl.SCANCODE_UP,
	KeyDown:   sdl.SCANCODE_DOWN,
	KeyF12:    sdl.SCANCODE_F12,
}
